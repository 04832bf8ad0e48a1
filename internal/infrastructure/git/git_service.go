package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Tomas-vilte/MatePick/internal/domain/models"
	"github.com/Tomas-vilte/MatePick/internal/domain/ports"
)

var _ ports.GitService = (*GitService)(nil)

// GitService invoca el binario de git como subproceso. Toda invocación pasa
// por run, que captura ambos streams y libera el proceso al retornar.
type GitService struct {
	gitBinary string
}

func NewGitService(gitBinary string) *GitService {
	if gitBinary == "" {
		gitBinary = "git"
	}
	return &GitService{gitBinary: gitBinary}
}

// run ejecuta una invocación de git con los streams capturados. El resultado
// lleva stdout/stderr aunque el comando haya fallado, porque el diagnóstico
// de git viaja por stderr.
func (s *GitService) run(ctx context.Context, stdin string, args ...string) (models.GitResult, error) {
	cmd := exec.CommandContext(ctx, s.gitBinary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	err := cmd.Run()

	result := models.GitResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		return result, fmt.Errorf("git %s: %w", args[0], err)
	}
	return result, nil
}

func (s *GitService) RevParse(ctx context.Context, reference string) (models.GitResult, error) {
	return s.run(ctx, "", "rev-parse", "--verify", reference)
}

func (s *GitService) CatFile(ctx context.Context, sha string) (models.GitResult, error) {
	return s.run(ctx, "", "cat-file", "commit", sha)
}

func (s *GitService) CherryPick(ctx context.Context, sha string) (models.GitResult, error) {
	return s.run(ctx, "", "cherry-pick", sha)
}

func (s *GitService) AmendCommit(ctx context.Context, message string) (models.GitResult, error) {
	return s.run(ctx, message, "commit", "--amend", "-F", "-")
}
