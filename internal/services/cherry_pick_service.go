package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	domainerrors "github.com/Tomas-vilte/MatePick/internal/domain/errors"
	"github.com/Tomas-vilte/MatePick/internal/domain/ports"
	"github.com/Tomas-vilte/MatePick/internal/i18n"
	"github.com/Tomas-vilte/MatePick/internal/logger"
)

var _ ports.CherryPicker = (*CherryPickService)(nil)

// CherryPickService orquesta el pipeline de pick: resolver la referencia,
// extraer el mensaje original, aplicar el cherry-pick y reescribir el mensaje.
// Cada etapa depende de la anterior y cualquier falla aborta el resto.
type CherryPickService struct {
	git    ports.GitService
	trans  *i18n.Translations
	stdout io.Writer
	stderr io.Writer
}

func NewCherryPickService(git ports.GitService, trans *i18n.Translations, stdout, stderr io.Writer) *CherryPickService {
	return &CherryPickService{
		git:    git,
		trans:  trans,
		stdout: stdout,
		stderr: stderr,
	}
}

// Pick aplica el commit referenciado sobre la rama actual y deja el mensaje
// sin Change-Id y con la línea de procedencia al final. No hay reintentos:
// toda falla requiere intervención del operador.
func (s *CherryPickService) Pick(ctx context.Context, reference string) error {
	sha, err := s.resolveReference(ctx, reference)
	if err != nil {
		return err
	}

	oldMsg, err := s.extractMessage(ctx, sha)
	if err != nil {
		return err
	}

	if err := s.applyCommit(ctx, sha); err != nil {
		return err
	}

	// El cherry-pick ya quedó aplicado; sólo falta editar el mensaje.
	return s.rewriteMessage(ctx, oldMsg, sha)
}

func (s *CherryPickService) resolveReference(ctx context.Context, reference string) (string, error) {
	result, err := s.git.RevParse(ctx, reference)
	if err != nil {
		logger.Error(ctx, strings.TrimSpace(result.Stderr), nil, "reference", reference)
		return "", domainerrors.NewResolutionError(reference, result.Stderr, err)
	}
	return strings.TrimSpace(result.Stdout), nil
}

func (s *CherryPickService) extractMessage(ctx context.Context, sha string) (string, error) {
	result, err := s.git.CatFile(ctx, sha)
	if err != nil {
		extractionErr := domainerrors.NewExtractionError(sha, err)
		logger.Error(ctx, extractionErr.Error(), err, "sha", sha)
		return "", extractionErr
	}

	body, err := StripCommitHeader(result.Stdout)
	if err != nil {
		extractionErr := domainerrors.NewExtractionError(sha, err)
		logger.Error(ctx, extractionErr.Error(), err, "sha", sha)
		return "", extractionErr
	}
	return body, nil
}

func (s *CherryPickService) applyCommit(ctx context.Context, sha string) error {
	result, err := s.git.CherryPick(ctx, sha)
	if err != nil {
		// La línea de procedencia se calcula acá mismo para que la nota al
		// operador sea exacta incluso en el camino de falla.
		hint := s.trans.GetMessage("pick_conflict_hint", 0, map[string]interface{}{
			"Reference": CherryPickedFrom(sha),
		})
		logger.Error(ctx, strings.TrimSpace(result.Stderr), err, "sha", sha)
		logger.Warn(ctx, hint)
		return domainerrors.NewApplyError(sha, result.Stderr, hint, err)
	}

	if out := strings.TrimSpace(result.Stdout); out != "" {
		fmt.Fprintln(s.stdout, out)
	}
	if errOut := strings.TrimSpace(result.Stderr); errOut != "" {
		fmt.Fprintln(s.stderr, errOut)
	}
	return nil
}

func (s *CherryPickService) rewriteMessage(ctx context.Context, oldMsg, sha string) error {
	newMsg := ReformatMessage(oldMsg, sha)

	if _, err := s.git.AmendCommit(ctx, newMsg); err != nil {
		rewriteErr := domainerrors.NewRewriteError(sha, err)
		logger.Error(ctx, rewriteErr.Error(), err, "sha", sha)
		return rewriteErr
	}
	return nil
}
