package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logscope/backend/internal/model"
	"github.com/logscope/backend/internal/service"
)

// 장애 시뮬레이션용 샘플 로그. 배포/웹/시스템 유형을 섞어 분류기와
// 추천 엔진의 전체 경로를 태운다.
var simulationLogs = []string{
	"2024-01-15 10:30:15 INFO Starting deployment process",
	"2024-01-15 10:30:16 INFO Pulling image: myapp:latest",
	"2024-01-15 10:30:45 INFO Image pulled successfully",
	"2024-01-15 10:30:46 INFO Starting container",
	"2024-01-15 10:30:47 ERROR Container failed to start",
	"2024-01-15 10:30:47 CRITICAL Port 8080 already in use by process 1234",
	"2024-01-15 10:30:48 ERROR Failed to bind to 0.0.0.0:8080",
	"2024-01-15 10:30:49 WARNING Force killing container after timeout",
	"2024-01-15 10:30:50 INFO Rolling back deployment",
	"[ERROR] Database connection timeout after 30 seconds",
	"[WARNING] High response time detected: 5.2 seconds",
	"[CRITICAL] Service unavailable - database down",
	"Jan 15 10:30:05 server kernel: Out of memory: Kill process 1234 (java) score 900",
	"Jan 15 10:30:10 server systemd[1]: Failed to start Apache HTTP Server",
}

type SimulateHandler struct {
	svc *service.AnalysisService
}

func NewSimulateHandler(svc *service.AnalysisService) *SimulateHandler {
	return &SimulateHandler{svc: svc}
}

// SimulateFailure - POST /simulate-failure
func (h *SimulateHandler) SimulateFailure(c *gin.Context) {
	req := model.AnalysisRequest{
		Logs:    simulationLogs,
		Context: "Multi-type failure simulation",
		Service: "simulation",
	}

	result, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.SimulationResponse{
		Simulation: "multi_type_failure",
		Logs:       simulationLogs,
		Analysis:   result.Response(req.Service),
	})
}
