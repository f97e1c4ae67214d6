package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/healthdesk/patient-registry/internal/domain/patient"
	"github.com/healthdesk/patient-registry/internal/service"
	"github.com/healthdesk/patient-registry/pkg/metrics"
)

type PatientHandler struct {
	svc       *service.PatientService
	recordSvc *service.MedicalRecordService
	collector *metrics.Collector
}

func NewPatientHandler(svc *service.PatientService, recordSvc *service.MedicalRecordService, collector *metrics.Collector) *PatientHandler {
	return &PatientHandler{svc: svc, recordSvc: recordSvc, collector: collector}
}

func (h *PatientHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/patients")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/:id/medical-records", h.listRecords)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *PatientHandler) list(c *gin.Context) {
	page := parseQueryInt(c, "page_number", 1)
	pageSize := parseQueryInt(c, "page_size", 0)

	paged, err := h.svc.ListPatients(c.Request.Context(), page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := PagedPatientsResponse{
		Patients:   make([]PatientResponse, 0, len(paged.Patients)),
		Pagination: toPaginationResponse(paged.Window),
	}
	for _, p := range paged.Patients {
		resp.Patients = append(resp.Patients, toPatientResponse(p))
	}
	respondOK(c, resp)
}

func (h *PatientHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, toPatientResponse(p))
}

func (h *PatientHandler) listRecords(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	records, err := h.recordSvc.ListRecordsByPatient(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]MedicalRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, toMedicalRecordResponse(r))
	}
	respondOK(c, resp)
}

func (h *PatientHandler) create(c *gin.Context) {
	var req PatientRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.svc.CreatePatient(c.Request.Context(), &patient.CreatePatientCommand{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		PolicyNumber: req.PolicyNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if h.collector != nil {
		h.collector.PatientsCreatedTotal.Inc()
	}
	respondCreated(c, toPatientResponse(p))
}

func (h *PatientHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req PatientRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.svc.UpdatePatient(c.Request.Context(), id, &patient.UpdatePatientCommand{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		PolicyNumber: req.PolicyNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondAck(c, "patient updated")
}

func (h *PatientHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeletePatient(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondAck(c, "patient deleted")
}
