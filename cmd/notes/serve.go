package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"notes-screen/internal/config"
	"notes-screen/internal/logger"
	"notes-screen/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve note sessions over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		appConfig, err := config.Load(configFile)
		if err != nil {
			fatal("Error initializing config", err)
		}

		log, err := logger.New(appConfig.Logger.Level)
		if err != nil {
			fatal("Error initializing logger", err)
		}
		defer func() { _ = log.Sync() }()

		srv, err := server.NewServer(appConfig, log)
		if err != nil {
			log.Fatal("failed to create server", zap.Error(err))
		}

		if err := srv.Initialize(); err != nil {
			log.Fatal("failed to initialize server", zap.Error(err))
		}

		// Канал для graceful shutdown
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		errChan := srv.Start()

		// Ожидание сигнала или ошибки
		select {
		case err := <-errChan:
			log.Fatal("server error", zap.Error(err))
		case sig := <-sigChan:
			log.Info("received signal, starting graceful shutdown", zap.String("signal", sig.String()))
		}

		if err := srv.Shutdown(); err != nil {
			log.Warn("shutdown finished with error", zap.Error(err))
		}

		log.Info("notes service stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
