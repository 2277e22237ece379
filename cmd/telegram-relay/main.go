package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/server-garage/pkg/monserver"
	"github.com/DIMO-Network/server-garage/pkg/runner"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/resumeforge/telegram-relay/internal/app"
	"github.com/resumeforge/telegram-relay/internal/clients/telegram"
	"github.com/resumeforge/telegram-relay/internal/config"
)

// @title           Telegram Resume Relay API
// @version         1.0
//
// @securityDefinitions.apikey APIKeyAuth
// @in                         header
// @name                       x-api-key
// @description                Shared secret presented by the resume backend.
//
// @BasePath  /
func main() {
	logger := logging.GetAndSetDefaultLogger("telegram-relay")
	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-mainCtx.Done()
		logger.Info().Msg("Received signal, shutting down...")
		cancel()
	}()

	runnerGroup, runnerCtx := errgroup.WithContext(mainCtx)

	envFile := flag.String("env-file", ".env", "path to env file")
	deleteWebhook := flag.Bool("delete-webhook", false, "deregister the telegram webhook and exit")
	flag.Parse()

	settings, err := env.LoadSettings[config.Settings](*envFile)
	if err != nil {
		log.Fatalf("could not load settings: %s", err)
	}

	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("could not parse log level: %s", err)
	}
	zerolog.SetGlobalLevel(level)
	if settings.ServiceName == "" {
		settings.ServiceName = "telegram-relay"
	}
	logger = logging.GetAndSetDefaultLogger(settings.ServiceName)

	if settings.Port == 0 {
		settings.Port = 8080
	}
	if settings.MonPort == 0 {
		settings.MonPort = 9090
	}
	if err := settings.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid settings")
	}

	if *deleteWebhook {
		telegramClient, err := telegram.New(settings.TelegramBotToken, settings.TelegramAPIURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create telegram client")
		}
		if err := telegramClient.RemoveWebhook(); err != nil {
			logger.Fatal().Err(err).Msg("Failed to delete telegram webhook")
		}
		logger.Info().Msg("Telegram webhook deleted.")
		return
	}

	monApp := monserver.NewMonitoringServer(&logger, settings.EnablePprof)
	logger.Info().Str("port", strconv.Itoa(settings.MonPort)).Msgf("Starting monitoring server")
	runner.RunHandler(runnerCtx, runnerGroup, monApp, ":"+strconv.Itoa(settings.MonPort))

	app, err := app.CreateServers(runnerCtx, &settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create servers")
	}
	logger.Info().Str("port", strconv.Itoa(settings.Port)).Msgf("Starting web server")
	runner.RunFiber(runnerCtx, runnerGroup, app, ":"+strconv.Itoa(settings.Port))

	if err := runnerGroup.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed.")
	}
	logger.Info().Msg("Server stopped.")
}
