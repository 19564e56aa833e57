package testsupport

import (
	"context"
	"testing"

	"beatsync/internal/config"
	"beatsync/internal/project"
)

// MustOpenStore opens a project.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *project.Store {
	t.Helper()

	store, err := project.Open(cfg)
	if err != nil {
		t.Fatalf("project.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// MustCreateProject creates a named project for tests.
func MustCreateProject(t testing.TB, store *project.Store, name string) *project.Project {
	t.Helper()

	proj, err := store.CreateProject(context.Background(), name)
	if err != nil {
		t.Fatalf("store.CreateProject: %v", err)
	}
	return proj
}
