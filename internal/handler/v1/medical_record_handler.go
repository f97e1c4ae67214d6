package v1

import (
	"github.com/gin-gonic/gin"

	mr "github.com/healthdesk/patient-registry/internal/domain/medical_record"
	"github.com/healthdesk/patient-registry/internal/service"
	"github.com/healthdesk/patient-registry/pkg/metrics"
)

type MedicalRecordHandler struct {
	svc       *service.MedicalRecordService
	collector *metrics.Collector
}

func NewMedicalRecordHandler(svc *service.MedicalRecordService, collector *metrics.Collector) *MedicalRecordHandler {
	return &MedicalRecordHandler{svc: svc, collector: collector}
}

func (h *MedicalRecordHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/medical-records")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *MedicalRecordHandler) list(c *gin.Context) {
	page := parseQueryInt(c, "page_number", 1)
	pageSize := parseQueryInt(c, "page_size", 0)

	paged, err := h.svc.ListRecords(c.Request.Context(), page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := PagedRecordsResponse{
		MedicalRecords: make([]MedicalRecordResponse, 0, len(paged.Records)),
		Pagination:     toPaginationResponse(paged.Window),
	}
	for _, r := range paged.Records {
		resp.MedicalRecords = append(resp.MedicalRecords, toMedicalRecordResponse(r))
	}
	respondOK(c, resp)
}

func (h *MedicalRecordHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	r, err := h.svc.GetRecord(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, toMedicalRecordResponse(r))
}

func (h *MedicalRecordHandler) create(c *gin.Context) {
	var req MedicalRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.svc.CreateRecord(c.Request.Context(), &mr.CreateRecordCommand{
		RecordDate:      req.RecordDate,
		Diagnosis:       req.Diagnosis,
		DoctorName:      req.DoctorName,
		Recommendations: req.Recommendations,
		PatientID:       req.PatientID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if h.collector != nil {
		h.collector.RecordsCreatedTotal.Inc()
	}
	respondCreated(c, toMedicalRecordResponse(r))
}

func (h *MedicalRecordHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req MedicalRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.svc.UpdateRecord(c.Request.Context(), id, &mr.UpdateRecordCommand{
		RecordDate:      req.RecordDate,
		Diagnosis:       req.Diagnosis,
		DoctorName:      req.DoctorName,
		Recommendations: req.Recommendations,
		PatientID:       req.PatientID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondAck(c, "medical record updated")
}

func (h *MedicalRecordHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteRecord(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondAck(c, "medical record deleted")
}
