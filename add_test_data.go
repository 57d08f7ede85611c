//go:build ignore
// +build ignore

// Helper script to seed a local database with sample data
// Run with: go run add_test_data.go

package main

import (
	"context"
	"log"
	"time"

	"github.com/thenoetrevino/tasktracker/internal/config"
	"github.com/thenoetrevino/tasktracker/internal/database"
	"github.com/thenoetrevino/tasktracker/internal/models"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)

	project, err := repo.CreateProject(ctx, models.ProjectBody{
		Name:           "Website Redesign",
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CompletionDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:         models.ProjectActive,
		Priority:       7,
	})
	if err != nil {
		log.Fatalf("Failed to create project: %v", err)
	}
	log.Printf("Created project %d", project.ID)

	assignments := []models.AssignmentBody{
		{Name: "Draft wireframes", Status: models.AssignmentDone, Priority: 8, ParentProjectID: project.ID},
		{Name: "Build landing page", Status: models.AssignmentInProgress, Priority: 6, ParentProjectID: project.ID},
		{Name: "Collect stakeholder feedback", Status: models.AssignmentToDo, Priority: 4, ParentProjectID: project.ID},
		{Name: "File expense report", Status: models.AssignmentToDo, Priority: 2},
	}
	for _, body := range assignments {
		assignment, err := repo.CreateAssignment(ctx, body)
		if err != nil {
			log.Fatalf("Failed to create assignment: %v", err)
		}
		log.Printf("Created assignment %d: %s", assignment.ID, assignment.Name)
	}

	log.Println("Seed data added")
}
