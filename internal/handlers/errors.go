package handlers

import (
	"errors"
	"net/http"

	"transfer-backend/internal/services"
	"transfer-backend/pkg/utils"
)

// respondServiceError maps the service sentinel errors to HTTP status
// codes. Anything unrecognized is a 500 with a generic body so DB
// details never leak to clients.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrPermissionDenied):
		utils.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicate):
		utils.RespondError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
