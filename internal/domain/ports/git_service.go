package ports

import (
	"context"

	"github.com/Tomas-vilte/MatePick/internal/domain/models"
)

// GitService expone las operaciones de git que consume el pipeline de pick.
// Los argumentos exactos de cada operación son parte del contrato con la
// herramienta externa.
type GitService interface {
	// RevParse ejecuta `git rev-parse --verify <reference>` capturando ambos streams.
	RevParse(ctx context.Context, reference string) (models.GitResult, error)
	// CatFile ejecuta `git cat-file commit <sha>` capturando stdout.
	CatFile(ctx context.Context, sha string) (models.GitResult, error)
	// CherryPick ejecuta `git cherry-pick <sha>` capturando ambos streams.
	CherryPick(ctx context.Context, sha string) (models.GitResult, error)
	// AmendCommit ejecuta `git commit --amend -F -` con el mensaje por stdin.
	AmendCommit(ctx context.Context, message string) (models.GitResult, error)
	// RequireMinVersion falla si el git instalado es demasiado viejo.
	RequireMinVersion(ctx context.Context) error
}
