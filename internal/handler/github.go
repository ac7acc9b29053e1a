package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/logscope/backend/internal/client"
	"github.com/logscope/backend/internal/model"
	"github.com/logscope/backend/internal/service"
)

// maxContextFiles - 분석 컨텍스트에 포함할 저장소 파일 수 상한
const maxContextFiles = 30

type GitHubHandler struct {
	svc *service.AnalysisService
	gh  *client.GitHubClient
}

func NewGitHubHandler(svc *service.AnalysisService, gh *client.GitHubClient) *GitHubHandler {
	return &GitHubHandler{svc: svc, gh: gh}
}

// AnalyzeRepository - POST /github/analyze
//
// 저장소 파일 목록을 조회해 로그 분석 컨텍스트에 덧붙인다. 저장소 조회에
// 실패하면 로그 단독 분석으로 degrade한다 (요청 실패 아님).
func (h *GitHubHandler) AnalyzeRepository(c *gin.Context) {
	var req model.RepoAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	if req.RepoURL == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "repo_url is required"})
		return
	}
	if len(req.Logs) == 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "logs is required and must not be empty"})
		return
	}

	owner, repo, err := client.ParseRepoURL(req.RepoURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	repository := owner + "/" + repo

	contextText := req.Context
	fileCount := 0
	files, err := h.gh.ListRepositoryFiles(c.Request.Context(), req.RepoURL)
	if err != nil {
		log.Printf("Failed to list repository files for %s: %v", repository, err)
	} else {
		fileCount = len(files)
		contextText = appendFileContext(contextText, repository, files)
	}

	result, err := h.svc.Analyze(c.Request.Context(), model.AnalysisRequest{
		Logs:    req.Logs,
		Context: contextText,
		Service: repository,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAnalysisRequest) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.RepoAnalysisResponse{
		Repository: repository,
		FileCount:  fileCount,
		Analysis:   result.Response(repository),
	})
}

func appendFileContext(contextText, repository string, files []client.RepoFile) string {
	paths := make([]string, 0, maxContextFiles)
	for _, f := range files {
		if len(paths) >= maxContextFiles {
			break
		}
		paths = append(paths, f.Path)
	}

	fileContext := fmt.Sprintf("Repository %s contains %d files, including: %s",
		repository, len(files), strings.Join(paths, ", "))
	if contextText == "" {
		return fileContext
	}
	return contextText + "\n" + fileContext
}
