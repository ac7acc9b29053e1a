package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logscope/backend/internal/model"
	"github.com/logscope/backend/internal/service"
)

const version = "1.0.0"

// 헬스체크 엔드포인트
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// 루트 엔드포인트
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{
		Status:  "ok",
		Message: "Log analysis API server is running",
	})
}

type StatusHandler struct {
	svc     *service.AnalysisService
	store   *service.LogStore
	aiModel string
}

func NewStatusHandler(svc *service.AnalysisService, store *service.LogStore, aiModel string) *StatusHandler {
	return &StatusHandler{svc: svc, store: store, aiModel: aiModel}
}

// Health - GET /health
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:       "healthy",
		AnalysisMode: h.analysisMode(),
		Version:      version,
	})
}

// SystemStatus - GET /system/status
func (h *StatusHandler) SystemStatus(c *gin.Context) {
	resp := model.SystemStatusResponse{
		APIStatus:       "running",
		AIConfigured:    h.svc.AIEnabled(),
		AnalysisMode:    h.analysisMode(),
		Version:         version,
		BufferedEntries: h.store.Len(),
	}
	if h.svc.AIEnabled() {
		resp.Model = h.aiModel
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatusHandler) analysisMode() string {
	if h.svc.AIEnabled() {
		return "ai"
	}
	return "pattern"
}
