package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	AnalysisMode string `json:"analysis_mode"`
	Version      string `json:"version"`
}

type SystemStatusResponse struct {
	APIStatus       string `json:"api_status"`
	AIConfigured    bool   `json:"ai_configured"`
	AnalysisMode    string `json:"analysis_mode"`
	Model           string `json:"model,omitempty"`
	Version         string `json:"version"`
	BufferedEntries int    `json:"buffered_entries"`
}

type RecentLogsResponse struct {
	Logs       []LogRecord `json:"logs"`
	TotalCount int         `json:"total_count"`
	Showing    int         `json:"showing"`
	Level      string      `json:"level,omitempty"`
}

type SearchLogsResponse struct {
	Query        string      `json:"query"`
	Results      []LogRecord `json:"results"`
	TotalMatches int         `json:"total_matches"`
	Showing      int         `json:"showing"`
}

type RepoAnalysisResponse struct {
	Repository string           `json:"repository"`
	FileCount  int              `json:"file_count"`
	Analysis   AnalysisResponse `json:"analysis"`
}

type SimulationResponse struct {
	Simulation string           `json:"simulation"`
	Logs       []string         `json:"logs"`
	Analysis   AnalysisResponse `json:"analysis"`
}
