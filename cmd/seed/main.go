package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shiftline/roster-backend/internal/config"
	"github.com/shiftline/roster-backend/internal/database"
	"github.com/shiftline/roster-backend/internal/models"
)

// Seeds a development database with a manager, a few employees and sections.
// Profiles are normally provisioned by the identity system; this fills the
// gap for local environments.
func main() {
	var dbURLFlag string
	flag.StringVar(&dbURLFlag, "database-url", "", "PostgreSQL connection string (overrides DATABASE_URL)")
	flag.Parse()

	// Try loading .env from current working directory (optional)
	_ = godotenv.Load()

	dbURL := dbURLFlag
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set and -database-url was not provided")
	}

	dbCfg := config.DatabaseConfig{
		URL:                dbURL,
		MaxConnections:     5,
		MaxIdleConnections: 2,
	}

	db, err := database.NewConnection(dbCfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	profileRepo := database.NewProfileRepository(db)
	sectionRepo := database.NewSectionRepository(db)

	fmt.Println("Connected to database. Seeding...")

	manager := &models.Profile{
		Email:     "manager@shiftline.dev",
		FirstName: strPtr("Morgan"),
		LastName:  strPtr("Reyes"),
		Role:      models.RoleManager,
	}
	if err := profileRepo.Create(manager); err != nil {
		log.Fatalf("failed to seed manager: %v", err)
	}
	fmt.Printf("  manager: %s (%s)\n", manager.Email, manager.ID)

	sectionIDs := make(map[string]uuid.UUID)
	for _, name := range []string{"Kitchen", "Front of House", "Bar"} {
		section := &models.Section{Name: name, CreatedBy: manager.ID}
		if err := sectionRepo.Create(section); err != nil {
			log.Fatalf("failed to seed section %q: %v", name, err)
		}
		sectionIDs[name] = section.ID
		fmt.Printf("  section: %s (%s)\n", name, section.ID)
	}

	employees := []struct {
		email     string
		firstName string
		lastName  string
		jobRole   string
		section   string
	}{
		{"alice@shiftline.dev", "Alice", "Nguyen", "Barista", "Bar"},
		{"ben@shiftline.dev", "Ben", "Okafor", "Line Cook", "Kitchen"},
		{"carla@shiftline.dev", "Carla", "Silva", "Server", "Front of House"},
		{"dev@shiftline.dev", "", "", "", ""},
	}

	for _, e := range employees {
		profile := &models.Profile{
			Email: e.email,
			Role:  models.RoleEmployee,
		}
		if e.firstName != "" {
			profile.FirstName = strPtr(e.firstName)
		}
		if e.lastName != "" {
			profile.LastName = strPtr(e.lastName)
		}
		if e.jobRole != "" {
			profile.JobRole = strPtr(e.jobRole)
		}
		if e.section != "" {
			sectionID := sectionIDs[e.section]
			profile.Section = &sectionID
		}
		if err := profileRepo.Create(profile); err != nil {
			log.Fatalf("failed to seed employee %q: %v", e.email, err)
		}
		fmt.Printf("  employee: %s (%s)\n", e.email, profile.ID)
	}

	fmt.Println("Seed complete.")
}

func strPtr(s string) *string {
	return &s
}
