package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logscope/backend/internal/model"
	"github.com/logscope/backend/internal/service"
)

type AnalysisHandler struct {
	svc *service.AnalysisService
}

func NewAnalysisHandler(svc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// AnalyzeLogs - POST /logs/analyze
//
// 빈 logs 배열은 엔진에 도달하기 전에 400으로 거절한다.
func (h *AnalysisHandler) AnalyzeLogs(c *gin.Context) {
	var req model.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	if len(req.Logs) == 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "logs is required and must not be empty"})
		return
	}

	result, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAnalysisRequest) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result.Response(req.Service))
}
