package pick

import (
	"context"

	"github.com/Tomas-vilte/MatePick/internal/config"
	"github.com/Tomas-vilte/MatePick/internal/domain/ports"
	"github.com/Tomas-vilte/MatePick/internal/i18n"
	"github.com/urfave/cli/v3"
)

// exitCodeUsage es el status con el que salimos cuando la invocación está mal
// formada, antes de tocar el repositorio.
const exitCodeUsage = 2

type PickCommandFactory struct {
	gitService  ports.GitService
	cherryPicks ports.CherryPicker
}

func NewPickCommandFactory(gitService ports.GitService, cherryPicks ports.CherryPicker) *PickCommandFactory {
	return &PickCommandFactory{
		gitService:  gitService,
		cherryPicks: cherryPicks,
	}
}

func (f *PickCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "pick",
		Aliases:     []string{"cherry-pick"},
		Usage:       t.GetMessage("pick_command_usage", 0, nil),
		Description: t.GetMessage("pick_command_description", 0, nil),
		ArgsUsage:   "<commit-ish>",
		Action:      f.createAction(t),
	}
}

func (f *PickCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		args := command.Args().Slice()
		if len(args) != 1 {
			_ = cli.ShowSubcommandHelp(command)
			return cli.Exit(t.GetMessage("pick_usage_error", 0, nil), exitCodeUsage)
		}

		if err := f.gitService.RequireMinVersion(ctx); err != nil {
			return err
		}

		return f.cherryPicks.Pick(ctx, args[0])
	}
}
