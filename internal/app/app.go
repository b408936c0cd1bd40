package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/config"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/controller"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/repository"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/service"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/database"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/logger"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/monitoring"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/security"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Store           repository.Store
	Repo            *repository.ProgressRepository
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	progress  *service.ProgressService
	insights  *service.InsightsService
	session   *service.SessionService
	export    *service.ExportService
	highscore *service.HighScoreService
	scheduler *service.ReviewScheduler
}

type controllers struct {
	progress  *controller.ProgressController
	rewards   *controller.RewardsController
	insights  *controller.InsightsController
	session   *controller.SessionController
	export    *controller.ExportController
	highscore *controller.HighScoreController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a reloaded config and fans it out to the
// registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// newStore picks the slot backend. The file store is the default and
// needs no external services; redis and mysql reuse the same whole-slot
// contract over their respective clients.
func newStore(cfg *config.Config) (repository.Store, error) {
	switch cfg.Store.Backend {
	case util.StoreRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisStore(rdb), nil
	case util.StoreMySQL:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(db), nil
	default:
		dir := cfg.Store.Path
		if dir == "" {
			dir = "data"
		}
		return repository.NewFileStore(dir)
	}
}

func (a *App) initServices(repo *repository.ProgressRepository, cfg *config.Config) (*services, error) {
	catalog := model.DefaultCatalog()

	s := &services{}
	s.progress = service.NewProgressService(repo, catalog)
	s.insights = service.NewInsightsService(repo, catalog)
	s.session = service.NewSessionService(repo)
	s.highscore = service.NewHighScoreService(repo)

	archive, err := service.NewArchiveProvider(&cfg.Archive)
	if err != nil {
		return nil, err
	}
	s.export = service.NewExportService(repo, s.session, s.progress, archive)

	if cfg.Scheduler.Enabled {
		s.scheduler = service.NewReviewScheduler(s.insights, cfg.Scheduler.ReviewAt)
	}

	return s, nil
}

func (a *App) initControllers(s *services, store repository.Store) *controllers {
	return &controllers{
		progress:  controller.NewProgressController(s.progress),
		rewards:   controller.NewRewardsController(s.progress),
		insights:  controller.NewInsightsController(s.insights, s.progress),
		session:   controller.NewSessionController(s.session, s.progress),
		export:    controller.NewExportController(s.export),
		highscore: controller.NewHighScoreController(s.highscore),
		health:    controller.NewHealthController(store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	store, err := newStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize store", zap.Error(err))
	}

	cache := repository.NewWriteCache(store, cfg.Store.Freshness(), cfg.Store.Debounce())
	repo := repository.NewProgressRepository(cache)

	app := &App{
		Config: cfg,
		Store:  store,
		Repo:   repo,
	}

	services, err := app.initServices(repo, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, store)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("snake-scholars", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	if services.scheduler != nil {
		if err := services.scheduler.Start(); err != nil {
			logger.Log.Error("Failed to start review scheduler", zap.Error(err))
		}
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.services != nil && a.services.scheduler != nil {
		a.services.scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	// The debounced slot write must land before exit or the last
	// mutations are lost.
	if err := a.Repo.Flush(ctx); err != nil {
		logger.Log.Error("Final flush failed", zap.Error(err))
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
