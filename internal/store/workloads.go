package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fentz26/jobsummary/internal/models"
	"github.com/google/uuid"
)

const workloadColumns = `id, name, type, parent_id, periodic, parameterized, has_children,
	queued_allocs, starting_allocs, running_allocs, complete_allocs, failed_allocs, lost_allocs,
	pending_children, running_children, dead_children, updated_at`

// UpsertWorkload inserts w or replaces the stored copy with the same ID.
// An empty ID is filled with a new UUID.
func (s *Store) UpsertWorkload(w *models.Workload) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.Type == "" {
		w.Type = "service"
	}
	w.UpdatedAt = time.Now().UTC()

	var parentID sql.NullString
	if w.ParentID != "" {
		parentID = sql.NullString{String: w.ParentID, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO workloads (`+workloadColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			parent_id = excluded.parent_id,
			periodic = excluded.periodic,
			parameterized = excluded.parameterized,
			has_children = excluded.has_children,
			queued_allocs = excluded.queued_allocs,
			starting_allocs = excluded.starting_allocs,
			running_allocs = excluded.running_allocs,
			complete_allocs = excluded.complete_allocs,
			failed_allocs = excluded.failed_allocs,
			lost_allocs = excluded.lost_allocs,
			pending_children = excluded.pending_children,
			running_children = excluded.running_children,
			dead_children = excluded.dead_children,
			updated_at = excluded.updated_at`,
		w.ID, w.DisplayName(), w.Type, parentID, w.Periodic, w.Parameterized, w.HasChildren,
		w.QueuedAllocs, w.StartingAllocs, w.RunningAllocs, w.CompleteAllocs, w.FailedAllocs, w.LostAllocs,
		w.PendingChildren, w.RunningChildren, w.DeadChildren, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert workload: %w", err)
	}
	return nil
}

// GetWorkload retrieves a workload by ID. It returns nil, nil when missing.
func (s *Store) GetWorkload(id string) (*models.Workload, error) {
	row := s.db.QueryRow(`SELECT `+workloadColumns+` FROM workloads WHERE id = ?`, id)
	w, err := scanWorkload(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query workload: %w", err)
	}
	return w, nil
}

// ListWorkloads returns all workloads ordered by name, optionally filtered
// by job type.
func (s *Store) ListWorkloads(jobType string) ([]models.Workload, error) {
	query := `SELECT ` + workloadColumns + ` FROM workloads`
	var args []interface{}

	if jobType != "" {
		query += ` WHERE type = ?`
		args = append(args, jobType)
	}
	query += ` ORDER BY name, id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workloads: %w", err)
	}
	defer rows.Close()

	var workloads []models.Workload
	for rows.Next() {
		w, err := scanWorkload(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workload: %w", err)
		}
		workloads = append(workloads, *w)
	}
	return workloads, rows.Err()
}

// DeleteWorkload removes a workload. It returns ErrNotFound if none matched.
func (s *Store) DeleteWorkload(id string) error {
	res, err := s.db.Exec(`DELETE FROM workloads WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete workload: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("workload %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkload(r rowScanner) (*models.Workload, error) {
	var w models.Workload
	var parentID sql.NullString
	err := r.Scan(
		&w.ID, &w.Name, &w.Type, &parentID, &w.Periodic, &w.Parameterized, &w.HasChildren,
		&w.QueuedAllocs, &w.StartingAllocs, &w.RunningAllocs, &w.CompleteAllocs, &w.FailedAllocs, &w.LostAllocs,
		&w.PendingChildren, &w.RunningChildren, &w.DeadChildren, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		w.ParentID = parentID.String
	}
	return &w, nil
}
