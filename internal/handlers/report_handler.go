package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"transfer-backend/internal/models"
	"transfer-backend/internal/services"
	"transfer-backend/internal/timeutil"
	"transfer-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// GenerateReport triggers the daily rollup for a given date, or for
// yesterday when the body names no date. Rerunning for an existing
// date returns the stored report unchanged.
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateReportRequest
	if r.Body != nil {
		// An empty body means "yesterday"
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var target time.Time
	if req.Date == "" {
		target = timeutil.Now().AddDate(0, 0, -1)
	} else {
		parsed, err := timeutil.ParseDate(req.Date)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		target = parsed
	}

	report, generated, err := h.Service.GenerateForDate(r.Context(), target)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	status := http.StatusOK
	if generated {
		status = http.StatusCreated
	}
	utils.RespondJSON(w, status, report)
}

func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := h.Service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Service.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, reports)
}

// DownloadReportPDF streams the report as a PDF attachment
func (h *ReportHandler) DownloadReportPDF(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := h.Service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	pdfBytes, err := h.Service.RenderPDF(r.Context(), report)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("daily-report-%s.pdf", report.ReportDate.Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
