package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/logscope/backend/internal/model"
	"github.com/logscope/backend/internal/service"
)

type LogsHandler struct {
	store *service.LogStore
}

func NewLogsHandler(store *service.LogStore) *LogsHandler {
	return &LogsHandler{store: store}
}

// RecentLogs - GET /logs/recent?limit=50&level=ERROR
func (h *LogsHandler) RecentLogs(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	level := c.Query("level")

	logs, total := h.store.Recent(limit, level)
	c.JSON(http.StatusOK, model.RecentLogsResponse{
		Logs:       logs,
		TotalCount: total,
		Showing:    len(logs),
		Level:      level,
	})
}

// SearchLogs - GET /logs/search?query=timeout&limit=20
func (h *LogsHandler) SearchLogs(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "query is required"})
		return
	}

	limit := queryInt(c, "limit", 20)
	results, matches := h.store.Search(query, limit)
	c.JSON(http.StatusOK, model.SearchLogsResponse{
		Query:        query,
		Results:      results,
		TotalMatches: matches,
		Showing:      len(results),
	})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
