package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Tomas-vilte/MatePick/internal/logger"
)

type gitVersion struct {
	major, minor, patch int
}

// Versiones mínimas de git: por debajo de la dura no arrancamos, por debajo
// de la blanda sólo avisamos.
var (
	minGitVersionSoft = gitVersion{1, 9, 1}
	minGitVersionHard = gitVersion{1, 7, 2}
)

func (v gitVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func (v gitVersion) less(other gitVersion) bool {
	if v.major != other.major {
		return v.major < other.major
	}
	if v.minor != other.minor {
		return v.minor < other.minor
	}
	return v.patch < other.patch
}

// parseGitVersion interpreta la salida de `git version`, por ejemplo
// "git version 2.39.2" o "git version 2.39.2.windows.1".
func parseGitVersion(output string) (gitVersion, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return gitVersion{}, fmt.Errorf("salida de 'git version' no reconocida: %q", output)
	}

	parts := strings.Split(fields[2], ".")
	if len(parts) < 2 {
		return gitVersion{}, fmt.Errorf("número de versión de git no reconocido: %q", fields[2])
	}

	var v gitVersion
	nums := []*int{&v.major, &v.minor, &v.patch}
	for i, dst := range nums {
		if i >= len(parts) {
			break
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			// Sufijos tipo "windows.1" cortan acá
			break
		}
		*dst = n
	}
	return v, nil
}

// RequireMinVersion verifica la versión del git instalado. Falla si está por
// debajo del mínimo duro y deja un warning si está por debajo del blando.
func (s *GitService) RequireMinVersion(ctx context.Context) error {
	result, err := s.run(ctx, "", "version")
	if err != nil {
		return fmt.Errorf("no se pudo ejecutar %q: %w", s.gitBinary, err)
	}

	v, err := parseGitVersion(result.Stdout)
	if err != nil {
		return err
	}

	if v.less(minGitVersionHard) {
		return fmt.Errorf("git %s is too old; version %s or newer is required", v, minGitVersionHard)
	}
	if v.less(minGitVersionSoft) {
		logger.Warn(ctx, fmt.Sprintf("git %s is old; upgrading to %s or newer is recommended", v, minGitVersionSoft))
	}
	return nil
}
