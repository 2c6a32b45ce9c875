package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const BreakdownTableSchema = `
	CREATE TABLE IF NOT EXISTS cost_breakdowns (
		id VARCHAR PRIMARY KEY,
		procedure_id VARCHAR NOT NULL,
		patient_id VARCHAR NOT NULL,
		surgeon_fee VARCHAR NOT NULL,
		facility_fee VARCHAR NOT NULL,
		anesthesia_fee VARCHAR NOT NULL,
		post_op_care VARCHAR NOT NULL,
		total_cost VARCHAR NOT NULL,
		coverage_status VARCHAR NOT NULL,
		insurance_coverage VARCHAR NOT NULL,
		patient_responsibility VARCHAR NOT NULL,
		deductible VARCHAR NOT NULL,
		copay VARCHAR NOT NULL,
		out_of_pocket_max VARCHAR NOT NULL,
		payment_plans JSON,
		data_sources JSON,
		region VARCHAR NOT NULL,
		provider VARCHAR,
		calculated_at TIMESTAMP NOT NULL
	);
`

const ProfileTableSchema = `
	CREATE TABLE IF NOT EXISTS patient_profiles (
		patient_id VARCHAR PRIMARY KEY,
		zip_code VARCHAR NOT NULL,
		provider VARCHAR
	);
`

var bootQueries = []string{
	BreakdownTableSchema,
	ProfileTableSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) the DuckDB database and runs the boot queries.
// Monetary columns are decimal strings so stored amounts round-trip exactly.
func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
