package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harisblablabla/go-bank-system/internal/adapter/http/dto"
	"github.com/harisblablabla/go-bank-system/internal/domain"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
)

// DepositoTypeService is the slice of the deposito type use case the HTTP
// layer depends on.
type DepositoTypeService interface {
	CreateDepositoType(ctx context.Context, input usecase.CreateDepositoTypeInput) (*domain.DepositoType, error)
	GetDepositoType(ctx context.Context, id string) (*domain.DepositoType, error)
	ListDepositoTypes(ctx context.Context, limit, offset int) ([]*domain.DepositoType, error)
	UpdateDepositoType(ctx context.Context, id string, input usecase.UpdateDepositoTypeInput) (*domain.DepositoType, error)
	DeleteDepositoType(ctx context.Context, id string) error
}

// DepositoTypeHandler handles deposito type HTTP requests.
type DepositoTypeHandler struct {
	depositoTypeUC DepositoTypeService
}

// NewDepositoTypeHandler creates a new DepositoTypeHandler.
func NewDepositoTypeHandler(depositoTypeUC DepositoTypeService) *DepositoTypeHandler {
	return &DepositoTypeHandler{depositoTypeUC: depositoTypeUC}
}

// Create creates a new deposito type.
func (h *DepositoTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepositoTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	depositoType, err := h.depositoTypeUC.CreateDepositoType(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create deposito type", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.DepositoTypeFromDomain(depositoType))
}

// Get retrieves a deposito type by ID.
func (h *DepositoTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing deposito type ID", "")
		return
	}

	depositoType, err := h.depositoTypeUC.GetDepositoType(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get deposito type", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.DepositoTypeFromDomain(depositoType))
}

// List lists deposito types with pagination.
func (h *DepositoTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	depositoTypes, err := h.depositoTypeUC.ListDepositoTypes(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list deposito types", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepositoTypesFromDomain(depositoTypes))
}

// Update updates a deposito type.
func (h *DepositoTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing deposito type ID", "")
		return
	}

	var req dto.UpdateDepositoTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	depositoType, err := h.depositoTypeUC.UpdateDepositoType(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update deposito type", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.DepositoTypeFromDomain(depositoType))
}

// Delete deletes a deposito type.
func (h *DepositoTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing deposito type ID", "")
		return
	}

	if err := h.depositoTypeUC.DeleteDepositoType(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete deposito type", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
