package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git no está disponible en este entorno")
	}

	tempDir := t.TempDir()

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() {
		if err := os.Chdir(originalDir); err != nil {
			t.Errorf("Error volviendo al directorio original: %v", err)
		}
	})

	runGit(t, "init")
	runGit(t, "config", "user.email", "test@example.com")
	runGit(t, "config", "user.name", "Test User")

	return tempDir
}

func runGit(t *testing.T, args ...string) string {
	t.Helper()
	out, err := exec.Command("git", args...).CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

func commitFile(t *testing.T, name, content, message string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(".", name), []byte(content), 0644))
	runGit(t, "add", name)
	runGit(t, "commit", "-m", message)
}

func TestGitService(t *testing.T) {
	shaPattern := regexp.MustCompile(`^[0-9a-f]{40}$`)

	t.Run("RevParse resolves HEAD to a full sha", func(t *testing.T) {
		setupTestRepo(t)
		commitFile(t, "a.txt", "uno", "primer commit")

		service := NewGitService("")
		result, err := service.RevParse(context.Background(), "HEAD")

		require.NoError(t, err)
		assert.Regexp(t, shaPattern, strings.TrimSpace(result.Stdout))
		assert.Zero(t, result.ExitCode)
	})

	t.Run("RevParse fails for an unknown reference", func(t *testing.T) {
		setupTestRepo(t)
		commitFile(t, "a.txt", "uno", "primer commit")

		service := NewGitService("")
		result, err := service.RevParse(context.Background(), "no-such-ref")

		assert.Error(t, err)
		assert.NotEmpty(t, result.Stderr)
		assert.NotZero(t, result.ExitCode)
	})

	t.Run("CatFile returns header, blank line and message", func(t *testing.T) {
		setupTestRepo(t)
		commitFile(t, "a.txt", "uno", "mensaje de prueba")

		service := NewGitService("")
		sha, err := service.RevParse(context.Background(), "HEAD")
		require.NoError(t, err)

		result, err := service.CatFile(context.Background(), strings.TrimSpace(sha.Stdout))

		require.NoError(t, err)
		assert.Contains(t, result.Stdout, "tree ")
		assert.Contains(t, result.Stdout, "\n\n")
		assert.Contains(t, result.Stdout, "mensaje de prueba")
	})

	t.Run("CherryPick replays a commit onto another branch", func(t *testing.T) {
		setupTestRepo(t)
		commitFile(t, "a.txt", "uno", "commit base")
		base := strings.TrimSpace(runGit(t, "rev-parse", "HEAD"))
		// Fecha de committer fija: si el cherry-pick ocurre en el mismo
		// segundo que el commit original, git generaría un objeto idéntico
		// (mismo sha) y la aserción de abajo fallaría.
		require.NoError(t, os.Setenv("GIT_COMMITTER_DATE", "2020-01-01T00:00:00"))
		commitFile(t, "b.txt", "dos", "commit a aplicar")
		require.NoError(t, os.Unsetenv("GIT_COMMITTER_DATE"))
		picked := strings.TrimSpace(runGit(t, "rev-parse", "HEAD"))

		runGit(t, "checkout", "-b", "destino", base)

		service := NewGitService("")
		_, err := service.CherryPick(context.Background(), picked)

		require.NoError(t, err)
		assert.FileExists(t, "b.txt")
		head := strings.TrimSpace(runGit(t, "rev-parse", "HEAD"))
		assert.NotEqual(t, picked, head)
	})

	t.Run("AmendCommit replaces the message via stdin", func(t *testing.T) {
		setupTestRepo(t)
		commitFile(t, "a.txt", "uno", "mensaje viejo")

		service := NewGitService("")
		_, err := service.AmendCommit(context.Background(), "mensaje nuevo\n")

		require.NoError(t, err)
		log := runGit(t, "log", "-1", "--format=%B")
		assert.Contains(t, log, "mensaje nuevo")
		assert.NotContains(t, log, "mensaje viejo")
	})

	t.Run("RequireMinVersion passes with a modern git", func(t *testing.T) {
		setupTestRepo(t)

		service := NewGitService("")
		assert.NoError(t, service.RequireMinVersion(context.Background()))
	})

	t.Run("run fails when the binary does not exist", func(t *testing.T) {
		service := NewGitService("definitely-not-git-xyz")
		result, err := service.RevParse(context.Background(), "HEAD")

		assert.Error(t, err)
		assert.Equal(t, -1, result.ExitCode)
	})
}
