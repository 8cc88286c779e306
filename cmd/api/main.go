package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pet-registry/internal/adapters/auth/jwtauth"
	"pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/config"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/auth"
	"pet-registry/internal/router"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		// todavía sin logger configurado
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	// Verifier opcional: sin secreto => modo dev (X-Debug-User-ID)
	var verifier auth.AuthVerifier
	if cfg.Auth.JWTSecret != "" {
		v, err := jwtauth.New(jwtauth.Config{
			Secret: cfg.Auth.JWTSecret,
			Issuer: cfg.Auth.Issuer,
		})
		if err != nil {
			log.Error("jwt verifier init failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		verifier = v
	} else {
		log.Warn("auth verifier disabled (dev mode)", nil)
	}

	opts := router.Options{
		AuthVerifier: verifier,
		Logger:       log,
	}
	if cfg.DB.DSN != "" {
		db, err := postgres.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr})
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("server error", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	case sig := <-stop:
		log.Info("shutting down", map[string]any{"signal": sig.String()})
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown error", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	}
}
