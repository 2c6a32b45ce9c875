package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/care-atlas/pkg/adapters"
	"github.com/de-tools/care-atlas/pkg/models/domain"
	profilestore "github.com/de-tools/care-atlas/pkg/store/duckdb/profile"
)

var ErrProfileNotFound = errors.New("patient profile not found")

// Explorer is the patient-profile lookup collaborator. The estimator only
// needs the patient's ZIP code and insurance provider from it.
type Explorer interface {
	GetProfile(ctx context.Context, patientID string) (domain.PatientProfile, error)
}

type explorer struct {
	store profilestore.Store
}

func NewExplorer(store profilestore.Store) Explorer {
	return &explorer{store: store}
}

func (e *explorer) GetProfile(ctx context.Context, patientID string) (domain.PatientProfile, error) {
	record, err := e.store.Get(ctx, patientID)
	if err != nil {
		return domain.PatientProfile{}, fmt.Errorf("get profile %s: %w", patientID, err)
	}
	if record == nil {
		return domain.PatientProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, patientID)
	}
	return adapters.MapProfileStoreToDomain(*record), nil
}

// StaticExplorer serves profiles from a fixed in-memory set. Used by the CLI
// and by callers that already hold the profile data.
type StaticExplorer struct {
	profiles map[string]domain.PatientProfile
}

func NewStaticExplorer(profiles ...domain.PatientProfile) *StaticExplorer {
	table := make(map[string]domain.PatientProfile, len(profiles))
	for _, p := range profiles {
		table[p.PatientID] = p
	}
	return &StaticExplorer{profiles: table}
}

func (s *StaticExplorer) GetProfile(_ context.Context, patientID string) (domain.PatientProfile, error) {
	p, ok := s.profiles[patientID]
	if !ok {
		return domain.PatientProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, patientID)
	}
	return p, nil
}
