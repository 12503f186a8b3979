package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Totarae/TranslateApp/internal/app"
	"github.com/Totarae/TranslateApp/internal/config"
	v2 "github.com/Totarae/TranslateApp/internal/grpc/v2"
	"github.com/Totarae/TranslateApp/internal/handlers"
	"github.com/Totarae/TranslateApp/internal/logger"
	"github.com/Totarae/TranslateApp/internal/router"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the translate API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
	if err := config.BindFlags(cmd.Flags(), v); err != nil {
		panic(err)
	}
	return cmd
}

// serve запускает HTTP и, если задан адрес, gRPC сервер до отмены ctx.
func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	svc := app.NewTranslationService(cfg, log)

	httpSrv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router.NewRouter(handlers.NewHandler(svc, log), log, cfg.EnableGzip),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var lis net.Listener
	if cfg.GRPCAddress != "" {
		var err error
		if lis, err = net.Listen("tcp", cfg.GRPCAddress); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Сервер запущен", zap.String("address", cfg.ServerAddress))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if lis != nil {
		grpcSrv := v2.NewServer(svc, log)
		g.Go(func() error {
			log.Info("gRPC сервер запущен", zap.String("address", cfg.GRPCAddress))
			if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			grpcSrv.GracefulStop()
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("Остановка сервера")
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
