package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"transfer-backend/internal/models"
	"transfer-backend/internal/services"
	"transfer-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PriceListHandler struct {
	Service *services.PriceListService
}

func NewPriceListHandler(s *services.PriceListService) *PriceListHandler {
	return &PriceListHandler{Service: s}
}

func (h *PriceListHandler) CreatePriceList(w http.ResponseWriter, r *http.Request) {
	var p models.PriceList
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.CreatePriceList(r.Context(), &p); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, p)
}

func (h *PriceListHandler) GetPriceList(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid price list id")
		return
	}

	p, err := h.Service.GetPriceList(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, p)
}

func (h *PriceListHandler) ListPriceLists(w http.ResponseWriter, r *http.Request) {
	prices, err := h.Service.ListPriceLists(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, prices)
}

func (h *PriceListHandler) UpdatePriceList(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid price list id")
		return
	}

	var p models.PriceList
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id

	if err := h.Service.UpdatePriceList(r.Context(), &p); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, p)
}

func (h *PriceListHandler) DeletePriceList(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid price list id")
		return
	}

	if err := h.Service.DeletePriceList(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
