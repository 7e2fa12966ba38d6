package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/generate"
	"jobsearch-backend/internal/llm"
	"jobsearch-backend/internal/llm/gemini"
	openai "jobsearch-backend/internal/llm/openai"
	"jobsearch-backend/internal/resumes"
	"jobsearch-backend/internal/services/health"
	"jobsearch-backend/internal/session"
	"jobsearch-backend/internal/shared/config"
	"jobsearch-backend/internal/shared/server"
	"jobsearch-backend/internal/shared/storage/object"
	localstore "jobsearch-backend/internal/shared/storage/object/local"
	s3store "jobsearch-backend/internal/shared/storage/object/s3"
)

// App holds the wired application dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Store           object.ObjectStore
	Sessions        session.Repo
	LLM             llm.Client
	ResumeService   *resumes.Service
	GenerateService *generate.Service
	ResumeHandler   *resumes.Handler
	GenerateHandler *generate.Handler
	Health          *health.Service
}

// Option customizes bootstrap wiring.
type Option func(*App)

// WithLLMClient overrides the model client, primarily for tests.
func WithLLMClient(c llm.Client) Option {
	return func(a *App) { a.LLM = c }
}

// Build prepares all dependencies and the router.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Store:    store,
		Sessions: session.NewMemoryRepo(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.LLM == nil {
		client, err := buildLLM(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.LLM = client
	}

	app.ResumeService = &resumes.Service{Store: app.Store, Sessions: app.Sessions}
	app.GenerateService = &generate.Service{Sessions: app.Sessions, LLM: app.LLM, Store: app.Store}
	app.ResumeHandler = resumes.NewHandler(app.ResumeService)
	app.GenerateHandler = generate.NewHandler(app.GenerateService)
	app.Health = health.NewService(cfg.LLMProvider, cfg.LLMModel)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ResumeHandler:   app.ResumeHandler,
		GenerateHandler: app.GenerateHandler,
		Health:          app.Health,
	})

	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	key, err := cfg.Credential()
	if err != nil {
		return nil, err
	}
	switch cfg.LLMProvider {
	case "gemini":
		return gemini.NewClient(ctx, key, cfg.LLMModel)
	default:
		return openai.NewClient(key, cfg.LLMModel)
	}
}
