package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/care-atlas/pkg/models/store"
)

// Store holds patient profiles: the ZIP code and insurance provider the
// estimator reads through the profile explorer.
type Store interface {
	// Get returns nil with no error when the patient is unknown.
	Get(ctx context.Context, patientID string) (*store.ProfileRecord, error)
	// Seed inserts or replaces profiles. Used at startup for demo data and
	// by tests to arrange fixtures.
	Seed(ctx context.Context, records []store.ProfileRecord) error
}

type profileStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &profileStore{db: db}, nil
}

func (p *profileStore) Get(ctx context.Context, patientID string) (*store.ProfileRecord, error) {
	query := `SELECT patient_id, zip_code, provider FROM patient_profiles WHERE patient_id = ?`

	var (
		record   store.ProfileRecord
		provider sql.NullString
	)
	err := p.db.QueryRowContext(ctx, query, patientID).Scan(&record.PatientID, &record.ZipCode, &provider)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile %s: %w", patientID, err)
	}
	record.Provider = provider.String

	return &record, nil
}

func (p *profileStore) Seed(ctx context.Context, records []store.ProfileRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `INSERT OR REPLACE INTO patient_profiles (patient_id, zip_code, provider) VALUES (?, ?, ?)`
	stmt, err := p.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if _, err := stmt.ExecContext(ctx, record.PatientID, record.ZipCode, record.Provider); err != nil {
			return fmt.Errorf("seed profile %s: %w", record.PatientID, err)
		}
	}

	return nil
}
