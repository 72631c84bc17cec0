package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"lunaphase/internal/app"
	"lunaphase/internal/logging"
	"lunaphase/internal/server"
)

const shutdownTimeout = 10 * time.Second

var cfgFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lunaserver",
		Short:        "Serve moon phases over HTTP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()
			if err := app.ReadConfigFile(v, cfgFile); err != nil {
				return err
			}
			cfg, err := app.Load(v)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default ./lunaphase.yaml or ~/lunaphase.yaml)")
	f.String("listen", ":8080", "listen address")
	f.String("image-dir", "./static/images", "directory of static and generated images")
	f.String("log-level", "info", "debug, info, warn or error")
	_ = viper.BindPFlag("listen_addr", f.Lookup("listen"))
	_ = viper.BindPFlag("image_dir", f.Lookup("image-dir"))
	_ = viper.BindPFlag("log_level", f.Lookup("log-level"))
	return cmd
}

func run(ctx context.Context, cfg app.Config, log *zap.Logger) error {
	w, err := app.NewWire(cfg, log)
	if err != nil {
		return err
	}

	handler := server.New(w.App, server.Options{
		CacheMaxAge:  cfg.CacheMaxAge,
		HSTS:         cfg.Security.HSTS,
		CSP:          cfg.Security.CSP,
		FrameOptions: cfg.Security.FrameOptions,
	}, log.Named("http"))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("lunaserver listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("image_dir", cfg.ImageDir),
		)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
