package main

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"

	"github.com/resumatch/resumatch/internal/ai/analyzer"
	"github.com/resumatch/resumatch/pkg/fsx"
	"github.com/resumatch/resumatch/pkg/fsx/fsxlocal"
	"github.com/resumatch/resumatch/pkg/fsx/fsxs3"
	"github.com/resumatch/resumatch/pkg/logx"
	"github.com/resumatch/resumatch/screening/match/matchapi"
	"github.com/resumatch/resumatch/screening/match/matchsrv"
	"github.com/resumatch/resumatch/screening/resume"
	"github.com/resumatch/resumatch/screening/resume/resumeapi"
	"github.com/resumatch/resumatch/screening/resume/resumeinfra"
	"github.com/resumatch/resumatch/screening/resume/resumesrv"
	"github.com/resumatch/resumatch/screening/resume/worker"
)

const reportQueueName = "resumatch:reports"

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	Redis       *redis.Client
	ReportStore fsx.FileSystem // nil when report persistence is off
	ReportQueue resume.ReportQueue

	// Services
	ResumeService *resumesrv.Service
	MatchService  *matchsrv.Service
	Analyzer      *analyzer.Analyzer // nil without an API key

	// Background workers
	ReportWorker *worker.ReportWorker

	// API Handlers
	ResumeHandlers   *resumeapi.ResumeHandlers
	AnalysisHandlers *matchapi.AnalysisHandlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 2. Report Storage
	switch store := os.Getenv("REPORT_STORE"); store {
	case "off":
		logx.Info("Report persistence disabled")
	case "s3":
		awsRegion := os.Getenv("AWS_REGION")
		awsBucket := os.Getenv("AWS_BUCKET")
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.ReportStore = fsxs3.NewS3FileSystem(s3.NewFromConfig(cfg), awsBucket, "resumatch")
	default:
		reportDir := os.Getenv("REPORT_DIR")
		if reportDir == "" {
			reportDir = "results"
		}
		c.ReportStore = fsxlocal.NewLocalFileSystem(reportDir)
	}

	if c.ReportStore != nil {
		c.ReportQueue = resumeinfra.NewRedisReportQueue(c.Redis, reportQueueName)
	}
}

func (c *Container) initServices() {
	// Domain Services
	c.ResumeService = resumesrv.NewService(c.ReportQueue)
	c.MatchService = matchsrv.New()

	// AI Analyzer (optional)
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		model := os.Getenv("LLM_MODEL")
		if model == "" {
			model = "llama-3.1-8b-instant"
		}
		c.Analyzer = analyzer.NewAnalyzer(apiKey, os.Getenv("LLM_BASE_URL"), model)
		logx.Infof("AI analyzer enabled with model %s", model)
	} else {
		logx.Warn("LLM_API_KEY is not set, AI analysis disabled")
	}

	// Background report writer
	if c.ReportStore != nil {
		workers := 2
		if v := os.Getenv("REPORT_WORKERS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				workers = n
			}
		}
		c.ReportWorker = worker.NewReportWorker(c.ReportQueue, c.ReportStore, workers)
	}

	// Handlers
	c.ResumeHandlers = resumeapi.NewResumeHandlers(c.ResumeService, c.MatchService, c.Analyzer)
	c.AnalysisHandlers = matchapi.NewAnalysisHandlers(c.MatchService)
}
