package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fentz26/jobsummary/internal/models"
	"github.com/fentz26/jobsummary/internal/summary"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestPrefs(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	_, ok, err := s.Get(summary.ExpandKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected no value in a fresh store")
	}

	if err := s.Set(summary.ExpandKey, "false"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := s.Get(summary.ExpandKey)
	if err != nil || !ok || v != "false" {
		t.Errorf("Expected stored 'false', got %q ok=%v err=%v", v, ok, err)
	}

	// Overwrite
	if err := s.Set(summary.ExpandKey, "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, _, _ = s.Get(summary.ExpandKey)
	if v != "true" {
		t.Errorf("Expected 'true' after overwrite, got %q", v)
	}

	prefs, err := s.ListPrefs()
	if err != nil {
		t.Fatalf("ListPrefs failed: %v", err)
	}
	if len(prefs) != 1 || prefs[0].Key != summary.ExpandKey {
		t.Errorf("Expected one pref, got %+v", prefs)
	}

	if err := s.DeletePref(summary.ExpandKey); err != nil {
		t.Fatalf("DeletePref failed: %v", err)
	}
	if _, ok, _ := s.Get(summary.ExpandKey); ok {
		t.Error("Expected pref to be deleted")
	}
	if err := s.DeletePref(summary.ExpandKey); err != nil {
		t.Errorf("Deleting a missing pref should not fail: %v", err)
	}
}

func TestPrefsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	c := summary.NewCollapse(s)
	c.Toggle()
	if c.Err() != nil {
		t.Fatalf("Toggle write failed: %v", c.Err())
	}
	s.Close()

	s, err = New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer s.Close()

	if summary.NewCollapse(s).Expanded() {
		t.Error("Expected collapsed state to survive reopening the store")
	}
}

func TestWorkloadCRUD(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	w := &models.Workload{
		Name:           "web",
		QueuedAllocs:   3,
		RunningAllocs:  2,
		CompleteAllocs: 1,
	}
	if err := s.UpsertWorkload(w); err != nil {
		t.Fatalf("UpsertWorkload failed: %v", err)
	}
	if w.ID == "" {
		t.Fatal("Workload ID should be generated")
	}
	if w.Type != "service" {
		t.Errorf("Expected default type service, got %s", w.Type)
	}

	got, err := s.GetWorkload(w.ID)
	if err != nil {
		t.Fatalf("GetWorkload failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected workload, got nil")
	}
	if got.QueuedAllocs != 3 || got.RunningAllocs != 2 || got.HasChildren {
		t.Errorf("Unexpected workload: %+v", got)
	}

	// Update
	w.HasChildren = true
	w.Periodic = true
	w.Type = "batch"
	w.PendingChildren = 4
	w.DeadChildren = 9
	if err := s.UpsertWorkload(w); err != nil {
		t.Fatalf("UpsertWorkload update failed: %v", err)
	}
	got, _ = s.GetWorkload(w.ID)
	if !got.HasChildren || !got.Periodic || got.PendingChildren != 4 || got.DeadChildren != 9 {
		t.Errorf("Update not persisted: %+v", got)
	}

	missing, err := s.GetWorkload("nope")
	if err != nil || missing != nil {
		t.Errorf("Expected nil, nil for missing workload, got %+v, %v", missing, err)
	}
}

func TestListWorkloads(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	for _, w := range []*models.Workload{
		{ID: "b", Name: "beta", Type: "batch"},
		{ID: "a", Name: "alpha", Type: "service"},
		{ID: "c", Name: "cron", Type: "batch", ParentID: "b"},
	} {
		if err := s.UpsertWorkload(w); err != nil {
			t.Fatalf("UpsertWorkload failed: %v", err)
		}
	}

	all, err := s.ListWorkloads("")
	if err != nil {
		t.Fatalf("ListWorkloads failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 workloads, got %d", len(all))
	}
	if all[0].Name != "alpha" {
		t.Errorf("Expected ordering by name, got %s first", all[0].Name)
	}
	if all[2].ParentID != "b" {
		t.Errorf("Expected parent ID to round-trip, got %q", all[2].ParentID)
	}

	batch, err := s.ListWorkloads("batch")
	if err != nil {
		t.Fatalf("ListWorkloads with filter failed: %v", err)
	}
	if len(batch) != 2 {
		t.Errorf("Expected 2 batch workloads, got %d", len(batch))
	}
}

func TestDeleteWorkload(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	w := &models.Workload{ID: "gone", Name: "gone"}
	if err := s.UpsertWorkload(w); err != nil {
		t.Fatalf("UpsertWorkload failed: %v", err)
	}
	if err := s.DeleteWorkload("gone"); err != nil {
		t.Fatalf("DeleteWorkload failed: %v", err)
	}
	if err := s.DeleteWorkload("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func newTestStore(t *testing.T) *Store {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}
