package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mr "github.com/healthdesk/patient-registry/internal/domain/medical_record"
	"github.com/healthdesk/patient-registry/internal/domain/patient"
	"github.com/healthdesk/patient-registry/internal/service"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondAck(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse[any]{Message: message})
}

// respondServiceError maps domain error kinds to HTTP statuses. Anything the
// taxonomy does not name is an internal failure and must surface as 500, not
// get swallowed.
func respondServiceError(c *gin.Context, err error) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validErr.Fields,
		})
		return
	}

	var (
		dateErr     *service.MalformedDateError
		dupErr      *patient.DuplicatePolicyError
		danglingErr *mr.DanglingReferenceError
		depErr      *patient.HasDependentsError
	)

	switch {
	case errors.As(err, &dateErr), errors.As(err, &danglingErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.As(err, &dupErr), errors.As(err, &depErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, patient.ErrNoPatients),
		errors.Is(err, mr.ErrRecordNotFound),
		errors.Is(err, mr.ErrNoRecords),
		errors.Is(err, mr.ErrNoPatientRecords):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, param string) (int64, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be an integer"})
		return 0, false
	}
	return id, true
}

// parseQueryInt returns the raw query value without clamping; the pagination
// engine owns the defensive coercion.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return defaultVal
}
