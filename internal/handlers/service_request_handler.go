package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"transfer-backend/internal/middleware"
	"transfer-backend/internal/models"
	"transfer-backend/internal/services"
	"transfer-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ServiceRequestHandler struct {
	Service *services.RequestService
}

func NewServiceRequestHandler(s *services.RequestService) *ServiceRequestHandler {
	return &ServiceRequestHandler{Service: s}
}

func (h *ServiceRequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreateServiceRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sr, err := h.Service.Create(r.Context(), actor, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, sr)
}

func (h *ServiceRequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	sr, err := h.Service.Get(r.Context(), actor, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, sr)
}

func (h *ServiceRequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	requests, err := h.Service.List(r.Context(), actor)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, requests)
}

// ApproveRequest records the caller's approval on a service request.
// The response bodies are fixed strings consumed by the mobile client.
func (h *ServiceRequestHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if _, err := h.Service.Approve(r.Context(), actor, id); err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			utils.RespondJSON(w, http.StatusForbidden, map[string]string{"status": "permission denied"})
			return
		}
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "approval status updated"})
}
