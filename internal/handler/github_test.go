package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/logscope/backend/internal/client"
	"github.com/logscope/backend/internal/config"
	"github.com/logscope/backend/internal/model"
	"github.com/logscope/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGitHubRouter(t *testing.T, apiHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := httptest.NewServer(apiHandler)
	t.Cleanup(api.Close)

	gh := client.NewGitHubClient(config.GitHubConfig{BaseURL: api.URL})
	svc := service.NewAnalysisService(service.DefaultRuleConfig(), nil, nil, nil)

	router := gin.New()
	router.POST("/github/analyze", NewGitHubHandler(svc, gh).AnalyzeRepository)
	return router
}

func TestAnalyzeRepositoryWithFileContext(t *testing.T) {
	router := newGitHubRouter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/widgets/git/trees/HEAD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tree": [
			{"path": "main.go", "type": "blob", "size": 120},
			{"path": "internal", "type": "tree", "size": 0},
			{"path": "go.mod", "type": "blob", "size": 40}
		]}`))
	})

	rec := postJSON(t, router, "/github/analyze", model.RepoAnalysisRequest{
		RepoURL: "https://github.com/acme/widgets",
		Logs:    []string{"2024-01-15 10:30:47 ERROR Database connection failed"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.RepoAnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "acme/widgets", resp.Repository)
	assert.Equal(t, 2, resp.FileCount, "tree entries must be excluded")
	assert.Equal(t, model.StatusError, resp.Analysis.Status)
	assert.Equal(t, "acme/widgets", resp.Analysis.Service)
}

func TestAnalyzeRepositoryDegradesWhenFetchFails(t *testing.T) {
	router := newGitHubRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	rec := postJSON(t, router, "/github/analyze", model.RepoAnalysisRequest{
		RepoURL: "https://github.com/acme/widgets",
		Logs:    []string{"2024-01-15 10:30:47 ERROR Database connection failed"},
	})

	// 저장소 조회 실패는 로그 단독 분석으로 degrade, 요청은 성공
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.RepoAnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 0, resp.FileCount)
	assert.Equal(t, model.StatusError, resp.Analysis.Status)
	assert.Contains(t, resp.Analysis.Recommendations, service.RecInvestigateDatabase)
}

func TestAnalyzeRepositoryRejectsBadURL(t *testing.T) {
	router := newGitHubRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("API must not be called for an invalid repo URL")
	})

	rec := postJSON(t, router, "/github/analyze", model.RepoAnalysisRequest{
		RepoURL: "https://gitlab.com/acme/widgets",
		Logs:    []string{"INFO ok"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeRepositoryRequiresLogs(t *testing.T) {
	router := newGitHubRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("API must not be called without logs")
	})

	rec := postJSON(t, router, "/github/analyze", model.RepoAnalysisRequest{
		RepoURL: "https://github.com/acme/widgets",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
