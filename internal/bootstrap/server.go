package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Blawness/pkp-studio/internal/config"
	"github.com/Blawness/pkp-studio/internal/infra/persistence"
	"github.com/Blawness/pkp-studio/internal/infra/security"
	"github.com/Blawness/pkp-studio/internal/transport/http/handlers"
	"github.com/Blawness/pkp-studio/internal/transport/http/middleware"
	"github.com/Blawness/pkp-studio/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Run(ctx context.Context, cfg config.Config) error {
	start := time.Now()
	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	conn, err := persistence.New(ctx, persistence.Config{
		WriteDSN:          cfg.Database.WriteDSN,
		ReadDSN:           cfg.Database.ReadDSN,
		MaxConns:          cfg.Database.MaxConns,
		MinConns:          cfg.Database.MinConns,
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
	})
	if err != nil {
		return err
	}
	log.Infof("bootstrap: db init in %s", time.Since(start))
	defer conn.Close()

	pingCtx := ctx
	if cfg.Database.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
		defer cancel()
	}
	if err := conn.Ping(pingCtx); err != nil {
		return err
	}
	log.Infof("bootstrap: db ping in %s", time.Since(start))

	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth: jwt_secret is required")
	}

	certRepo := persistence.NewCertificateRepository(conn)
	userRepo := persistence.NewUserRepository(conn)
	garapanRepo := persistence.NewTanahGarapanRepository(conn)
	attendanceRepo := persistence.NewAttendanceRepository(conn)
	logRepo := persistence.NewActivityLogRepository(conn)
	outboxRepo := persistence.NewOutboxRepository(conn)

	hasher := security.NewHasher(cfg.Auth.BcryptCost)
	tokens := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authUC := usecase.NewAuth(userRepo, hasher, tokens, log)
	certUC := usecase.NewCertificate(conn, certRepo, logRepo, outboxRepo, log)
	userUC := usecase.NewUser(conn, userRepo, hasher, logRepo, outboxRepo, log)
	garapanUC := usecase.NewTanahGarapan(conn, garapanRepo, logRepo, outboxRepo, log)
	attendanceUC := usecase.NewAttendance(conn, attendanceRepo, userRepo, logRepo, outboxRepo, log)
	logUC := usecase.NewActivityLog(conn, logRepo, certRepo, userRepo, garapanRepo, attendanceRepo, hasher, cfg.Auth.TempPasswordLength, outboxRepo, log)
	dashboardUC := usecase.NewDashboard(certRepo, userRepo, logRepo, log)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery())
	handler := handlers.NewHandler(authUC, certUC, userUC, garapanUC, attendanceUC, logUC, dashboardUC, conn)
	routerBuilder := handlers.NewRouter(handler)
	routerBuilder.RegisterRoutes(router, middleware.Auth(tokens))

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("bootstrap: server listening on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		log.WithError(err).Error("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown error")
	}

	return nil
}

func buildLogger(cfg config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	switch cfg.Log.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case "console", "":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		return nil, errors.New("log format error: supported values are console or json")
	}
	return log, nil
}
