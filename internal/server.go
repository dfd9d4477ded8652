package internal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/gymlog/api"
	"github.com/2beens/gymlog/internal/gymlog/notify"
	"github.com/2beens/gymlog/internal/gymlog/repo"
	"github.com/2beens/gymlog/internal/gymlog/resttimer"
	"github.com/2beens/gymlog/internal/gymlog/session"
	"github.com/2beens/gymlog/internal/gymlog/tracker"
	"github.com/2beens/gymlog/internal/middleware"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

type alarmMirror interface {
	Current(ctx context.Context) (*resttimer.RestAlarm, error)
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	authTokenHash     string // bcrypt hash of the API token, auth is off when empty

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	// workout engine
	tracker        *tracker.Tracker
	restTimer      *resttimer.Coordinator
	alarms         alarmMirror
	catalogHandler *api.CatalogHandler
	workoutHandler *api.WorkoutHandler

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AuthTokenHash           string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		MaxConns:       cfg.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.NewRegistry("gymlog", params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("gymlog", "main", promRegistry)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymlog", rdb)
	if err != nil {
		return nil, err
	}

	store := repo.NewCachedRepo(
		repo.NewRepo(dbPool),
		cfg.ExerciseCacheSizeMB*1024*1024,
		cfg.ExerciseCacheTTL.Duration,
	)
	notifier := notify.NewRedisNotifier(rdb)
	restTimer := resttimer.NewCoordinator(notifier, notifier, metricsManager, resttimer.Config{
		ExpiredDisplay: cfg.ExpiredDisplay.Duration,
	})
	lifecycle := session.NewLifecycle(store, metricsManager, time.Now)
	workoutTracker := tracker.New(lifecycle, restTimer, cfg.RestSeconds)

	s := &Server{
		config:        cfg,
		versionInfo:   params.VersionInfo,
		authTokenHash: params.AuthTokenHash,

		dbPool:      dbPool,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),

		tracker:        workoutTracker,
		restTimer:      restTimer,
		alarms:         notifier,
		catalogHandler: api.NewCatalogHandler(store),
		workoutHandler: api.NewWorkoutHandler(workoutTracker, cfg.WatchTimeout.Duration),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	s.resumeActiveWorkout(ctx)

	return s, nil
}

// resumeActiveWorkout picks up a session left in progress by a previous run,
// together with its rest countdown if the device mirror still holds one.
func (s *Server) resumeActiveWorkout(ctx context.Context) {
	snap, err := s.tracker.Resume(ctx, 0)
	if errors.Is(err, tracker.ErrNoActiveWorkout) {
		log.Debugln("no workout in progress")
		return
	}
	if err != nil {
		log.Errorf("resume workout in progress: %s", err)
		return
	}
	log.Infof("resumed workout session %d from %s", snap.Session.ID, snap.Session.Date.Format(time.DateOnly))

	alarm, err := s.alarms.Current(ctx)
	if err != nil {
		log.Warnf("get mirrored rest countdown: %s", err)
		return
	}
	if alarm == nil || alarm.SessionID != snap.Session.ID {
		return
	}

	remaining := int(math.Ceil(time.Until(alarm.EndsAt).Seconds()))
	if remaining <= 0 {
		return
	}
	log.Debugf("restoring rest countdown for session %d: %ds left", alarm.SessionID, remaining)
	s.restTimer.Start(alarm.SessionID, remaining)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymlog-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	gymlogRouter := api.RegisterRoutes(r, s.catalogHandler, s.workoutHandler)
	gymlogRouter.Use(middleware.RateLimit(s.rateLimiter, s.metricsManager, "gymlog", s.config.WorkoutWritesPerMin))

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins...))
	if s.authTokenHash != "" {
		r.Use(middleware.NewAuthMiddlewareHandler(s.authTokenHash).AuthCheck())
	} else {
		log.Warnln("API token hash not set, requests are not authenticated")
	}
	r.Use(middleware.LimitBody(middleware.DefaultMaxBodyBytes))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]any{
		"version": s.versionInfo,
		"timer":   s.restTimer.Snapshot().State,
	}, http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: otelhttp.NewHandler(metricsRouter, "gymlog-metrics"),
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("gymlog service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	// the countdown stays mirrored in redis, a restart picks it up again
	s.restTimer.Close()
	log.Trace("rest timer stopped ...")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); !ok {
		log.Warnln("sentry flush timed out")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}
}
