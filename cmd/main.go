package main

import (
	"context"
	"log"
	"os"

	configcmd "github.com/Tomas-vilte/MatePick/internal/cli/command/config"
	"github.com/Tomas-vilte/MatePick/internal/cli/command/pick"
	"github.com/Tomas-vilte/MatePick/internal/cli/command/update"
	"github.com/Tomas-vilte/MatePick/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MatePick/internal/config"
	"github.com/Tomas-vilte/MatePick/internal/i18n"
	gitinfra "github.com/Tomas-vilte/MatePick/internal/infrastructure/git"
	"github.com/Tomas-vilte/MatePick/internal/logger"
	"github.com/Tomas-vilte/MatePick/internal/services"
	"github.com/Tomas-vilte/MatePick/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "locales")
	if err != nil {
		return nil, err
	}

	logger.Initialize(os.Getenv("MATEPICK_DEBUG") != "", os.Getenv("MATEPICK_VERBOSE") != "")

	gitService := gitinfra.NewGitService(cfgApp.GitBinary)
	pickService := services.NewCherryPickService(gitService, translations, os.Stdout, os.Stderr)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("pick", pick.NewPickCommandFactory(gitService, pickService)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("update", update.NewUpdateCommandFactory(version.FullVersion())); err != nil {
		return nil, err
	}

	go func() {
		checker := services.NewVersionUpdater(version.FullVersion(), translations)
		checker.CheckForUpdates(context.Background())
	}()

	return &cli.Command{
		Name:                  "mate-pick",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}, nil
}
