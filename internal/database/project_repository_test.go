package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

func TestCreateProject_AssignsID(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	body := testProjectBody("Test Project")
	project := createTestProject(t, repo, body)

	if project.ID <= 0 {
		t.Errorf("Expected positive id, got %d", project.ID)
	}
	if project.Name != body.Name {
		t.Errorf("Expected name %q, got %q", body.Name, project.Name)
	}
	if !project.StartDate.Equal(body.StartDate) {
		t.Errorf("Expected start date %v, got %v", body.StartDate, project.StartDate)
	}
	if !project.CompletionDate.Equal(body.CompletionDate) {
		t.Errorf("Expected completion date %v, got %v", body.CompletionDate, project.CompletionDate)
	}
	if project.Status != body.Status {
		t.Errorf("Expected status %d, got %d", body.Status, project.Status)
	}
	if project.Priority != body.Priority {
		t.Errorf("Expected priority %d, got %d", body.Priority, project.Priority)
	}
}

func TestCreateProject_PreservesSubSecondPrecision(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	body := testProjectBody("Precise")
	body.StartDate = time.Date(2024, 1, 1, 12, 30, 45, 123456789, time.UTC)

	project := createTestProject(t, repo, body)
	stored, err := repo.GetProjectByID(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !stored.StartDate.Equal(body.StartDate) {
		t.Errorf("Expected start date %v, got %v", body.StartDate, stored.StartDate)
	}
}

func TestCreateProject_PreservesFarFutureDates(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	body := testProjectBody("Long Running")
	body.CompletionDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	project := createTestProject(t, repo, body)
	stored, err := repo.GetProjectByID(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !stored.CompletionDate.Equal(body.CompletionDate) {
		t.Errorf("Expected completion date %v, got %v", body.CompletionDate, stored.CompletionDate)
	}
	if !stored.StartDate.Before(stored.CompletionDate) {
		t.Errorf("Expected stored start %v before completion %v", stored.StartDate, stored.CompletionDate)
	}
}

func TestGetProjectByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetProjectByID(context.Background(), 999)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetAllProjects(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	createTestProject(t, repo, testProjectBody("P1"))
	createTestProject(t, repo, testProjectBody("P2"))
	createTestProject(t, repo, testProjectBody("P3"))

	projects, err := repo.GetAllProjects(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("Expected 3 projects, got %d", len(projects))
	}
}

func TestUpdateProject_FullReplacement(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))
	project := createTestProject(t, repo, testProjectBody("Before"))

	updated := models.ProjectBody{
		Name:           "After",
		StartDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CompletionDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:         models.ProjectCompleted,
		Priority:       9,
	}
	if err := repo.UpdateProject(context.Background(), project.ID, updated); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	stored, err := repo.GetProjectByID(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stored.Name != "After" {
		t.Errorf("Expected name After, got %q", stored.Name)
	}
	if stored.Status != models.ProjectCompleted {
		t.Errorf("Expected status Completed, got %d", stored.Status)
	}
	if stored.Priority != 9 {
		t.Errorf("Expected priority 9, got %d", stored.Priority)
	}
}

func TestUpdateProject_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	err := repo.UpdateProject(context.Background(), 999, testProjectBody("Ghost"))
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProject_DetachesAssignments(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))
	project := createTestProject(t, repo, testProjectBody("Doomed"))
	other := createTestProject(t, repo, testProjectBody("Survivor"))

	a1 := createTestAssignment(t, repo, testAssignmentBody("A1", project.ID))
	a2 := createTestAssignment(t, repo, testAssignmentBody("A2", project.ID))
	a3 := createTestAssignment(t, repo, testAssignmentBody("A3", other.ID))

	if err := repo.DeleteProject(context.Background(), project.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Project is gone
	if _, err := repo.GetProjectByID(context.Background(), project.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Its assignments survive but are detached
	for _, id := range []int{a1.ID, a2.ID} {
		stored, err := repo.GetAssignmentByID(context.Background(), id)
		if err != nil {
			t.Fatalf("Expected assignment %d to survive, got %v", id, err)
		}
		if stored.ParentProjectID != models.NoParentProject {
			t.Errorf("Expected assignment %d detached, got parent %d", id, stored.ParentProjectID)
		}
	}

	// Assignments of other projects are untouched
	stored, err := repo.GetAssignmentByID(context.Background(), a3.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stored.ParentProjectID != other.ID {
		t.Errorf("Expected assignment %d to keep parent %d, got %d", a3.ID, other.ID, stored.ParentProjectID)
	}
}

func TestDeleteProject_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	err := repo.DeleteProject(context.Background(), 999)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestProjectExists(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))
	project := createTestProject(t, repo, testProjectBody("Here"))

	exists, err := repo.ProjectExists(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !exists {
		t.Error("Expected project to exist")
	}

	exists, err = repo.ProjectExists(context.Background(), 999)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if exists {
		t.Error("Expected project 999 to not exist")
	}
}

// ============================================================================
// FILTER TESTS
// ============================================================================

func TestFilterProjects_EmptyFilterReturnsAll(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))
	createTestProject(t, repo, testProjectBody("P1"))
	createTestProject(t, repo, testProjectBody("P2"))

	projects, err := repo.FilterProjects(context.Background(), models.ProjectFilter{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("Expected 2 projects, got %d", len(projects))
	}
}

func TestFilterProjects_NameSubstringCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))
	createTestProject(t, repo, testProjectBody("Website Redesign"))
	createTestProject(t, repo, testProjectBody("Backend Migration"))

	name := "WEBSITE"
	projects, err := repo.FilterProjects(context.Background(), models.ProjectFilter{Name: &name})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}
	if projects[0].Name != "Website Redesign" {
		t.Errorf("Expected Website Redesign, got %q", projects[0].Name)
	}
}

func TestFilterProjects_StartDateRangeInclusive(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	early := testProjectBody("Early")
	early.StartDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := testProjectBody("Late")
	late.StartDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	createTestProject(t, repo, early)
	createTestProject(t, repo, late)

	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	projects, err := repo.FilterProjects(context.Background(), models.ProjectFilter{
		MinStartDate: &min,
		MaxStartDate: &max,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}
	if projects[0].Name != "Early" {
		t.Errorf("Expected Early, got %q", projects[0].Name)
	}
}

func TestFilterProjects_ExactDateOverridesRange(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	target := testProjectBody("Target")
	target.StartDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	createTestProject(t, repo, testProjectBody("Other"))
	createTestProject(t, repo, target)

	// Exact match is set, so the repository honors it over any range bounds
	exact := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	min := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	projects, err := repo.FilterProjects(context.Background(), models.ProjectFilter{
		StartDate:    &exact,
		MinStartDate: &min,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}
	if projects[0].Name != "Target" {
		t.Errorf("Expected Target, got %q", projects[0].Name)
	}
}

func TestFilterProjects_StatusAndPriorityCompose(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	match := testProjectBody("Match")
	match.Status = models.ProjectActive
	match.Priority = 7
	wrongStatus := testProjectBody("WrongStatus")
	wrongStatus.Status = models.ProjectCompleted
	wrongStatus.Priority = 7
	wrongPriority := testProjectBody("WrongPriority")
	wrongPriority.Status = models.ProjectActive
	wrongPriority.Priority = 2
	createTestProject(t, repo, match)
	createTestProject(t, repo, wrongStatus)
	createTestProject(t, repo, wrongPriority)

	status := models.ProjectActive
	priority := 7
	projects, err := repo.FilterProjects(context.Background(), models.ProjectFilter{
		Status:   &status,
		Priority: &priority,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}
	if projects[0].Name != "Match" {
		t.Errorf("Expected Match, got %q", projects[0].Name)
	}
}

func TestFilterProjects_PriorityRange(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))

	for i, priority := range []int{1, 5, 9} {
		body := testProjectBody(fmt.Sprintf("P%d", i+1))
		body.Priority = priority
		createTestProject(t, repo, body)
	}

	min, max := 4, 6
	projects, err := repo.FilterProjects(context.Background(), models.ProjectFilter{
		MinPriority: &min,
		MaxPriority: &max,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project, got %d", len(projects))
	}
	if projects[0].Priority != 5 {
		t.Errorf("Expected priority 5, got %d", projects[0].Priority)
	}
}

func TestFilterProjects_IsPureRead(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupTestDB(t))
	createTestProject(t, repo, testProjectBody("Untouched"))

	name := "untouched"
	if _, err := repo.FilterProjects(context.Background(), models.ProjectFilter{Name: &name}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	projects, err := repo.GetAllProjects(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "Untouched" {
		t.Errorf("Expected filtering to leave projects unchanged, got %+v", projects)
	}
}
