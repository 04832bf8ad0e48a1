package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/MatePick/internal/config"
	"github.com/Tomas-vilte/MatePick/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations, string) {
	t.Helper()

	tmpConfigPath := filepath.Join(t.TempDir(), "config.json")
	cfg, err := config.LoadConfig(tmpConfigPath)
	require.NoError(t, err)

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	return cfg, translations, tmpConfigPath
}

func TestSetLangCommand(t *testing.T) {
	t.Run("should successfully set a supported language", func(t *testing.T) {
		cfg, translations, tmpConfigPath := setupConfigTest(t)

		factory := NewConfigCommandFactory()
		cmd := factory.newSetLangCommand(translations, cfg)
		app := &cli.Command{Commands: []*cli.Command{cmd}}

		err := app.Run(context.Background(), []string{"config", "set-lang", "--lang", "es"})

		assert.NoError(t, err)
		loadedCfg, err := config.LoadConfig(tmpConfigPath)
		assert.NoError(t, err)
		assert.Equal(t, "es", loadedCfg.Language)
	})

	t.Run("should fail with unsupported language", func(t *testing.T) {
		cfg, translations, tmpConfigPath := setupConfigTest(t)

		factory := NewConfigCommandFactory()
		cmd := factory.newSetLangCommand(translations, cfg)
		app := &cli.Command{Commands: []*cli.Command{cmd}}

		err := app.Run(context.Background(), []string{"config", "set-lang", "--lang", "fr"})

		assert.Error(t, err)
		loadedCfg, err := config.LoadConfig(tmpConfigPath)
		assert.NoError(t, err)
		assert.Equal(t, "en", loadedCfg.Language)
	})
}

func TestShowCommand(t *testing.T) {
	t.Run("should run without error", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)

		factory := NewConfigCommandFactory()
		cmd := factory.newShowCommand(translations, cfg)
		app := &cli.Command{Commands: []*cli.Command{cmd}}

		err := app.Run(context.Background(), []string{"config", "show"})

		assert.NoError(t, err)
	})
}
