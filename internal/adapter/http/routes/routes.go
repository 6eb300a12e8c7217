package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "survey_tracker/docs" // registers the swagger docs
	"survey_tracker/internal/adapter/http/handlers"
	"survey_tracker/internal/adapter/http/middleware"
	"survey_tracker/internal/adapter/persistence/repository"
	"survey_tracker/internal/config"
	"survey_tracker/internal/infrastructure/database"
	"survey_tracker/internal/infrastructure/export"
	"survey_tracker/internal/usecase"
	"survey_tracker/pkg/logger"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run serves the API on cfg.HTTPAddr until SIGINT or SIGTERM, then drains in-flight requests.
func Run(cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, err := NewRouter(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("[http] server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.L().Info("[http] shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("failed to start the application: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.L().Info("[http] server exited gracefully")
	return nil
}

// NewRouter builds a router over a fresh in-memory store. ctx bounds sample data seeding.
func NewRouter(ctx context.Context, cfg *config.Config) (*gin.Engine, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("calendar timezone: %w", err)
	}

	app := newApp(loc)
	if cfg.SeedSampleData {
		today := civil.DateOf(time.Now().In(loc))
		if err := usecase.SeedSampleQuotes(ctx, app.quotes, today); err != nil {
			return nil, err
		}
		logger.L().Info("[http] sample quotes loaded")
	}

	router := gin.New()
	setMiddlewares(router)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	getRoutes(router, app)
	return router, nil
}

type app struct {
	quotes   *usecase.QuoteUseCase
	projects *usecase.ProjectUseCase
	calendar *usecase.CalendarUseCase
	reviews  *usecase.ReviewUseCase
	exporter *export.ExcelScheduleExporter
}

func newApp(loc *time.Location) app {
	store := database.NewMemoryStore()

	quoteRepo := repository.NewQuoteMemoryRepository(store)
	projectRepo := repository.NewProjectMemoryRepository(store)
	noteRepo := repository.NewCalendarNoteMemoryRepository(store)
	reviewRepo := repository.NewReviewMemoryRepository(store)

	exporter := export.NewExcelScheduleExporter("")

	return app{
		quotes:   usecase.NewQuoteUseCase(store, quoteRepo, projectRepo, reviewRepo),
		projects: usecase.NewProjectUseCase(store, projectRepo, reviewRepo, exporter),
		calendar: usecase.NewCalendarUseCase(store, projectRepo, noteRepo, usecase.WithLocation(loc)),
		reviews:  usecase.NewReviewUseCase(store, reviewRepo),
		exporter: exporter,
	}
}

func getRoutes(router *gin.Engine, a app) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1)
	addQuoteRoutes(v1, handlers.NewQuoteHandler(a.quotes))
	addProjectRoutes(v1, handlers.NewProjectHandler(a.projects, a.exporter))
	addCalendarRoutes(v1, handlers.NewCalendarHandler(a.calendar))
	addReviewRoutes(v1, handlers.NewReviewHandler(a.reviews))
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.Recovery())
}
