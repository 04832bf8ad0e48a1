package update

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MatePick/internal/config"
	"github.com/Tomas-vilte/MatePick/internal/i18n"
	"github.com/Tomas-vilte/MatePick/internal/services"
	"github.com/urfave/cli/v3"
)

type UpdateCommandFactory struct {
	currentVersion string
}

func NewUpdateCommandFactory(currentVersion string) *UpdateCommandFactory {
	return &UpdateCommandFactory{
		currentVersion: currentVersion,
	}
}

func (f *UpdateCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: t.GetMessage("update_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			updater := services.NewVersionUpdater(f.currentVersion, t)

			fmt.Println(t.GetMessage("update_updating", 0, nil))
			if err := updater.UpdateCLI(ctx); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("update_success", 0, nil))
			return nil
		},
	}
}
