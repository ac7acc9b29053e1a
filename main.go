package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/logscope/backend/internal/client"
	"github.com/logscope/backend/internal/config"
	"github.com/logscope/backend/internal/handler"
	"github.com/logscope/backend/internal/notify"
	"github.com/logscope/backend/internal/service"
)

func main() {
	// .env가 있으면 로드 (없어도 무시)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	// AI 클라이언트는 선택 사항: 키가 없으면 패턴 분석 모드로만 동작
	var aiClient service.AIAnalyzer
	if ai, err := client.NewAIClient(cfg.AI); err != nil {
		log.Printf("AI client disabled, running in pattern mode: %v", err)
	} else {
		log.Printf("AI client initialized (model=%s)", cfg.AI.Model)
		aiClient = ai
	}

	githubClient := client.NewGitHubClient(cfg.GitHub)

	logStore := service.NewLogStore(cfg.Logs.MaxEntries)
	hub := notify.NewHub()
	analysisService := service.NewAnalysisService(service.DefaultRuleConfig(), aiClient, logStore, hub)

	analysisHandler := handler.NewAnalysisHandler(analysisService)
	statusHandler := handler.NewStatusHandler(analysisService, logStore, cfg.AI.Model)
	logsHandler := handler.NewLogsHandler(logStore)
	simulateHandler := handler.NewSimulateHandler(analysisService)
	githubHandler := handler.NewGitHubHandler(analysisService, githubClient)

	// Gin의 기본 라우터 생성
	router := gin.Default()
	router.Use(handler.RequestIDMiddleware())
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/health", statusHandler.Health)
	router.GET("/system/status", statusHandler.SystemStatus)

	router.POST("/logs/analyze", analysisHandler.AnalyzeLogs)
	router.GET("/logs/recent", logsHandler.RecentLogs)
	router.GET("/logs/search", logsHandler.SearchLogs)

	router.POST("/simulate-failure", simulateHandler.SimulateFailure)
	router.POST("/github/analyze", githubHandler.AnalyzeRepository)

	router.GET("/ws/dashboard", handler.DashboardWS(hub))

	// 기본 포트 :8080 으로 서버 시작
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		panic(err)
	}
}
