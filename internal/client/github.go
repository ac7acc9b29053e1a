// 외부 GitHub REST API와 통신하는 클라이언트 정의
//
// 환경변수:
//   - GITHUB_TOKEN: 비공개 저장소 접근용 토큰 (공개 저장소는 불필요)
//   - GITHUB_API_URL: 기본 https://api.github.com

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/logscope/backend/internal/config"
)

// GitHubClient 구조체 정의
type GitHubClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// RepoFile - 저장소 트리의 파일 한 건
type RepoFile struct {
	Path string `json:"path"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

type repoTreeResponse struct {
	Tree      []RepoFile `json:"tree"`
	Truncated bool       `json:"truncated"`
}

// GitHubClient 객체 생성
func NewGitHubClient(cfg config.GitHubConfig) *GitHubClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &GitHubClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListRepositoryFiles returns the blob entries of the repository's default
// branch tree, recursively.
func (c *GitHubClient) ListRepositoryFiles(ctx context.Context, repoURL string) ([]RepoFile, error) {
	owner, repo, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/HEAD?recursive=1", c.baseURL, owner, repo)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to GitHub: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GitHub returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var tree repoTreeResponse
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	files := make([]RepoFile, 0, len(tree.Tree))
	for _, entry := range tree.Tree {
		if entry.Type == "blob" {
			files = append(files, entry)
		}
	}
	return files, nil
}

// ParseRepoURL - https://github.com/{owner}/{repo}(.git) 형식에서 owner/repo 추출
func ParseRepoURL(repoURL string) (owner, repo string, err error) {
	trimmed := strings.TrimSuffix(strings.TrimRight(strings.TrimSpace(repoURL), "/"), ".git")

	const marker = "github.com/"
	idx := strings.Index(trimmed, marker)
	if idx < 0 {
		return "", "", fmt.Errorf("invalid GitHub repository URL: %q", repoURL)
	}

	parts := strings.Split(trimmed[idx+len(marker):], "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GitHub repository URL: %q", repoURL)
	}
	return parts[0], parts[1], nil
}
