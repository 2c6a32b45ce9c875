package breakdown

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/de-tools/care-atlas/pkg/models/store"
	"github.com/de-tools/care-atlas/pkg/store/duckdb"
)

// Store persists computed cost breakdowns. Records are write-once: Add never
// updates an existing row, and readers get exactly what the estimator wrote.
type Store interface {
	Add(ctx context.Context, record store.BreakdownRecord) error
	// Get returns nil with no error when the id is unknown.
	Get(ctx context.Context, id string) (*store.BreakdownRecord, error)
}

type breakdownStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &breakdownStore{db: db}, nil
}

func (b *breakdownStore) Add(ctx context.Context, record store.BreakdownRecord) error {
	plans, err := json.Marshal(record.PaymentPlans)
	if err != nil {
		return fmt.Errorf("marshal payment plans: %w", err)
	}
	sources, err := json.Marshal(record.DataSources)
	if err != nil {
		return fmt.Errorf("marshal data sources: %w", err)
	}

	query := `
		INSERT INTO cost_breakdowns (
			id, procedure_id, patient_id,
			surgeon_fee, facility_fee, anesthesia_fee, post_op_care, total_cost,
			coverage_status, insurance_coverage, patient_responsibility,
			deductible, copay, out_of_pocket_max,
			payment_plans, data_sources, region, provider, calculated_at
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	args := []interface{}{
		record.ID,
		record.ProcedureID,
		record.PatientID,
		record.SurgeonFee,
		record.FacilityFee,
		record.AnesthesiaFee,
		record.PostOpCare,
		record.TotalCost,
		record.CoverageStatus,
		record.InsuranceCoverage,
		record.PatientResponsibility,
		record.Deductible,
		record.Copay,
		record.OutOfPocketMax,
		plans,
		sources,
		record.Region,
		record.Provider,
		record.CalculatedAt,
	}

	tx := duckdb.GetTransaction(ctx)
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = b.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		return fmt.Errorf("insert breakdown: %w", err)
	}

	return nil
}

func (b *breakdownStore) Get(ctx context.Context, id string) (*store.BreakdownRecord, error) {
	query := `
		SELECT id, procedure_id, patient_id,
			surgeon_fee, facility_fee, anesthesia_fee, post_op_care, total_cost,
			coverage_status, insurance_coverage, patient_responsibility,
			deductible, copay, out_of_pocket_max,
			payment_plans, data_sources, region, provider, calculated_at
		FROM cost_breakdowns
		WHERE id = ?
	`

	var (
		record     store.BreakdownRecord
		plansRaw   []byte
		sourcesRaw []byte
		provider   sql.NullString
	)

	err := b.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.ProcedureID,
		&record.PatientID,
		&record.SurgeonFee,
		&record.FacilityFee,
		&record.AnesthesiaFee,
		&record.PostOpCare,
		&record.TotalCost,
		&record.CoverageStatus,
		&record.InsuranceCoverage,
		&record.PatientResponsibility,
		&record.Deductible,
		&record.Copay,
		&record.OutOfPocketMax,
		&plansRaw,
		&sourcesRaw,
		&record.Region,
		&provider,
		&record.CalculatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query breakdown %s: %w", id, err)
	}

	if err := json.Unmarshal(plansRaw, &record.PaymentPlans); err != nil {
		return nil, fmt.Errorf("unmarshal payment plans: %w", err)
	}
	if err := json.Unmarshal(sourcesRaw, &record.DataSources); err != nil {
		return nil, fmt.Errorf("unmarshal data sources: %w", err)
	}
	record.Provider = provider.String

	return &record, nil
}
