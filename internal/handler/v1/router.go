package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/healthdesk/patient-registry/internal/config"
	"github.com/healthdesk/patient-registry/pkg/metrics"
)

type RouterDeps struct {
	Config    *config.Config
	Log       *zap.Logger
	Collector *metrics.Collector
	Patients  *PatientHandler
	Records   *MedicalRecordHandler
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		RequestID(),
		RequestLogger(deps.Log),
		Metrics(deps.Collector),
		gin.Recovery(),
		CORS(deps.Config.CORS),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": deps.Config.App.Version})
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := r.Group("/api/v1")
	deps.Patients.Register(api)
	deps.Records.Register(api)

	return r
}
