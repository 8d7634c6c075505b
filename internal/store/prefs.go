package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Pref is a persisted UI preference.
type Pref struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Get returns the preference stored under key and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM ui_prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query pref: %w", err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO ui_prefs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert pref: %w", err)
	}
	return nil
}

// DeletePref removes key. Deleting a missing key is not an error.
func (s *Store) DeletePref(key string) error {
	_, err := s.db.Exec(`DELETE FROM ui_prefs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete pref: %w", err)
	}
	return nil
}

// ListPrefs returns every stored preference ordered by key.
func (s *Store) ListPrefs() ([]Pref, error) {
	rows, err := s.db.Query(`SELECT key, value, updated_at FROM ui_prefs ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("query prefs: %w", err)
	}
	defer rows.Close()

	var prefs []Pref
	for rows.Next() {
		var p Pref
		if err := rows.Scan(&p.Key, &p.Value, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pref: %w", err)
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}
