package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MatePick/internal/config"
	"github.com/Tomas-vilte/MatePick/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")
			fmt.Printf("%s\n", t.GetMessage("language_label", 0, map[string]interface{}{"Lang": cfg.Language}))
			fmt.Printf("%s\n", t.GetMessage("git_binary_label", 0, map[string]interface{}{"Git": cfg.GitBinary}))
			fmt.Printf("%s\n", t.GetMessage("config_path_label", 0, map[string]interface{}{"Path": cfg.PathFile}))
			return nil
		},
	}
}
