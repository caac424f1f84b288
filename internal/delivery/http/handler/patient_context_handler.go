package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/internal/gateway/hms"
	"hospital-ipd-engine/internal/usecase"
	"hospital-ipd-engine/pkg/response"

	"github.com/gorilla/mux"
)

type PatientContextHandler struct {
	contextUsecase usecase.PatientContextUsecase
}

func NewPatientContextHandler(contextUsecase usecase.PatientContextUsecase) *PatientContextHandler {
	return &PatientContextHandler{
		contextUsecase: contextUsecase,
	}
}

// ListContextOptions serves GET /patients/{id}/contexts?type=OPD. The form
// calls it after every patient-type switch to repopulate the secondary
// dropdown.
func (h *PatientContextHandler) ListContextOptions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patientType := entity.PatientType(r.URL.Query().Get("type"))

	options, err := h.contextUsecase.ListContextOptions(r.Context(), patientID, patientType)
	if err != nil {
		var upstreamErr *hms.UpstreamError
		switch {
		case errors.Is(err, usecase.ErrInvalidPatientType):
			response.Error(w, http.StatusBadRequest, "type must be one of: OPD, IPD, Emergency, Direct", nil)
		case errors.Is(err, usecase.ErrMissingPatient):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.As(err, &upstreamErr):
			response.BadGateway(w, upstreamErr.Error())
		default:
			response.BadGateway(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Context options retrieved successfully", options)
}
