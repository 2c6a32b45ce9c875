package estimate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/care-atlas/pkg/adapters"
	"github.com/de-tools/care-atlas/pkg/models/api"
	"github.com/de-tools/care-atlas/pkg/services/catalog"
	"github.com/de-tools/care-atlas/pkg/services/estimate"
	"github.com/de-tools/care-atlas/pkg/services/profile"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	estimates estimate.Service
	pricing   catalog.Pricing
	policies  catalog.Policies
}

func NewHandler(estimates estimate.Service, pricing catalog.Pricing, policies catalog.Policies) *Handler {
	return &Handler{
		estimates: estimates,
		pricing:   pricing,
		policies:  policies,
	}
}

func (h *Handler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProcedureID == "" || req.PatientID == "" {
		http.Error(w, "procedure_id and patient_id are required", http.StatusBadRequest)
		return
	}

	breakdown, err := h.estimates.CalculateCostBreakdown(ctx, req.ProcedureID, req.PatientID)
	switch {
	case errors.Is(err, estimate.ErrPricingNotFound):
		http.Error(w, "unknown procedure: "+req.ProcedureID, http.StatusNotFound)
		return
	case errors.Is(err, profile.ErrProfileNotFound):
		http.Error(w, "unknown patient: "+req.PatientID, http.StatusNotFound)
		return
	case err != nil:
		logger.Error().
			Err(err).
			Str("procedure_id", req.ProcedureID).
			Str("patient_id", req.PatientID).
			Msg("failed to calculate cost breakdown")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(adapters.MapBreakdownDomainToApi(breakdown)); err != nil {
		logger.Error().
			Err(err).
			Str("breakdown_id", breakdown.ID).
			Msg("failed to encode cost breakdown")
	}
}

func (h *Handler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	breakdown, err := h.estimates.GetCostBreakdown(ctx, id)
	if err != nil {
		logger.Error().
			Err(err).
			Str("breakdown_id", id).
			Msg("failed to load cost breakdown")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if breakdown == nil {
		http.Error(w, "estimate not found: "+id, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapBreakdownDomainToApi(*breakdown)); err != nil {
		logger.Error().
			Err(err).
			Str("breakdown_id", id).
			Msg("failed to encode cost breakdown")
	}
}

func (h *Handler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := make([]api.Procedure, 0)
	for _, id := range h.pricing.Procedures() {
		response = append(response, api.Procedure{ID: id})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode procedures")
	}
}

func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := make([]api.InsuranceProvider, 0)
	for _, name := range h.policies.Providers() {
		response = append(response, api.InsuranceProvider{Name: name})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode providers")
	}
}
