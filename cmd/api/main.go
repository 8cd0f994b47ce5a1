// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/auth"
	"github.com/dangerclosesec/orgadmin/internal/cache"
	"github.com/dangerclosesec/orgadmin/internal/config"
	"github.com/dangerclosesec/orgadmin/internal/extract"
	"github.com/dangerclosesec/orgadmin/internal/handler"
	"github.com/dangerclosesec/orgadmin/internal/middleware"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/dangerclosesec/orgadmin/internal/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := setupDatabase(ctx, cfg.DSN(), cfg.Debug)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting database instance: %w", err)
	}
	defer sqlDB.Close()

	// Repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	affiliateRepo := repository.NewAffiliateRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	officerRepo := repository.NewOfficerRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	domainRepo := repository.NewDomainRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	// Dashboard cache: Redis when configured, process memory otherwise
	checks := map[string]handler.Pinger{"database": sqlDB}
	var store cache.Store = cache.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		redisStore, err := cache.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, "orgadmin:")
		if err != nil {
			logger.Warn("Redis unavailable, using in-memory cache", "addr", cfg.Redis.Addr, "error", err)
		} else {
			defer redisStore.Close()
			store = redisStore
			checks["redis"] = redisStore
		}
	}
	cacheService := service.NewCacheService(store, service.CacheConfig{TTL: cfg.Redis.DashboardTTL})

	blobs, err := storage.NewMinioStore(ctx, storage.MinioConfig{
		Endpoint:  cfg.Minio.Endpoint,
		AccessKey: cfg.Minio.AccessKey,
		SecretKey: cfg.Minio.SecretKey,
		Bucket:    cfg.Minio.Bucket,
		Region:    cfg.Minio.Region,
		Secure:    cfg.Minio.Secure,
	})
	if err != nil {
		return fmt.Errorf("setting up object storage: %w", err)
	}

	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Services
	auditService := service.NewAuditService(activityRepo)
	domainService := service.NewDomainService(txManager, domainRepo)
	authService := service.NewAuthService(userRepo, memberRepo, roleRepo, domainService)
	roleService := service.NewRoleService(txManager, roleRepo, userRepo, officerRepo, historyRepo, auditService, cacheService)
	officerService := service.NewOfficerService(txManager, officerRepo, memberRepo, affiliateRepo, historyRepo, auditService, cacheService)
	documentService := service.NewDocumentService(txManager, documentRepo, auditService, blobs, extract.NewTextExtractor(cfg.Upload.MaxExtractRunes))
	dashboardService := service.NewDashboardService(memberRepo, userRepo, officerRepo, documentRepo, activityRepo, cacheService)
	memberService := service.NewMemberService(memberRepo)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	middleware.RegisterMetrics(registry)
	service.RegisterMetrics(registry)

	// Handlers
	rs := handler.Responder{Debug: cfg.Debug}
	healthHandler := handler.NewHealthHandler(checks, rs)
	authHandler := handler.NewAuthHandler(authService, rs)
	auditLogHandler := handler.NewAuditLogHandler(auditService, rs)
	domainHandler := handler.NewDomainHandler(domainService, rs)
	documentHandler := handler.NewDocumentHandler(documentService, cfg.Upload.MaxBytes, rs)
	roleHandler := handler.NewRoleHandler(roleService, rs)
	officerHandler := handler.NewOfficerHandler(officerService, rs)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, rs)
	memberHandler := handler.NewMemberHandler(memberService, rs)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.AuditMetadata)

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(60 * time.Second))

		// Public routes
		r.With(chimw.AllowContentType("application/json")).Post("/auth/check-user", authHandler.CheckUser)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Get("/auth/roles-permissions", authHandler.RolesPermissions)
			r.Get("/dashboard", dashboardHandler.Summary)
			r.Get("/documents", documentHandler.List)
			r.Get("/documents/{id}", documentHandler.Get)
			r.Get("/affiliates/{affiliateID}/leaders", officerHandler.Leaders)
			r.Get("/roles/tree", roleHandler.Tree)
			r.Get("/roles/selectable", roleHandler.Selectable)

			// National administration
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(userRepo, model.RoleSuperAdmin, model.RoleNationalAdmin))

				r.Route("/audit/logs", func(r chi.Router) {
					r.Get("/", auditLogHandler.GetAuditLogs)
					r.Get("/export", auditLogHandler.ExportAuditLogs)
					r.Get("/{id}", auditLogHandler.GetAuditLog)
				})

				r.Route("/domains", func(r chi.Router) {
					r.Use(chimw.AllowContentType("application/json"))
					r.Get("/", domainHandler.List)
					r.Post("/", domainHandler.Create)
					r.Post("/block", domainHandler.Block)
					r.Delete("/", domainHandler.Delete)
				})

				r.Post("/documents", documentHandler.Create)
				r.Patch("/documents/{id}", documentHandler.Update)
				r.Delete("/documents/{id}", documentHandler.Delete)

				r.Post("/roles/assign", roleHandler.AssignFromBody)
				r.Post("/roles/detach", roleHandler.DetachFromBody)
				r.Route("/roles/{id}", func(r chi.Router) {
					r.Get("/history", roleHandler.History)
					r.Post("/users", roleHandler.Assign)
					r.Delete("/users/{userID}", roleHandler.Detach)
				})

				r.Post("/affiliates/{affiliateID}/officers", officerHandler.Assign)
				r.Delete("/affiliates/{affiliateID}/officers/{id}", officerHandler.End)

				r.Get("/members", memberHandler.List)
			})
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutdown started")

		// Give outstanding requests a deadline for completion
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(ctx context.Context, dsn string, verbose bool) (*gorm.DB, error) {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"message":"Internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
