package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-ipd-engine/internal/converter"
	"hospital-ipd-engine/internal/service"
	"hospital-ipd-engine/internal/usecase"
	"hospital-ipd-engine/pkg/response"

	"github.com/gorilla/mux"
)

// DashboardHandler serves the read-only admin surface: room-capacity counts,
// the local audit trail, and per-patient admission history.
type DashboardHandler struct {
	capacityService service.CapacityService
	auditUsecase    usecase.AuditLogUsecase
	historyUsecase  usecase.AdmissionHistoryUsecase
}

func NewDashboardHandler(
	capacityService service.CapacityService,
	auditUsecase usecase.AuditLogUsecase,
	historyUsecase usecase.AdmissionHistoryUsecase,
) *DashboardHandler {
	return &DashboardHandler{
		capacityService: capacityService,
		auditUsecase:    auditUsecase,
		historyUsecase:  historyUsecase,
	}
}

func (h *DashboardHandler) GetCapacityOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.capacityService.Overview(r.Context())
	if err != nil {
		response.BadGateway(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Capacity overview retrieved successfully", converter.CapacityToResponse(overview))
}

func (h *DashboardHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	action := r.URL.Query().Get("action")

	logs, err := h.auditUsecase.GetRecentAuditLogs(r.Context(), action, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

// GetPatientAdmissionHistory serves GET /patients/{id}/admissions from the
// local snapshot read-model.
func (h *DashboardHandler) GetPatientAdmissionHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	history, err := h.historyUsecase.GetPatientAdmissionHistory(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingPatient) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to get admission history")
		return
	}

	response.Success(w, http.StatusOK, "Admission history retrieved successfully", history)
}
