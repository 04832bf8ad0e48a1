package errors

import "fmt"

// ResolutionError indica que una referencia no resuelve a un commit
type ResolutionError struct {
	Reference string
	Stderr    string
	Err       error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve %q to a commit", e.Reference)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NewResolutionError crea un nuevo error de resolución de referencia
func NewResolutionError(reference, stderr string, err error) *ResolutionError {
	return &ResolutionError{
		Reference: reference,
		Stderr:    stderr,
		Err:       err,
	}
}

// ExtractionError indica que no se pudo leer el objeto commit original
type ExtractionError struct {
	Sha string
	Err error
}

func (e *ExtractionError) Error() string {
	return "failed to retrieve old commit message"
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError crea un nuevo error de extracción de mensaje
func NewExtractionError(sha string, err error) *ExtractionError {
	return &ExtractionError{
		Sha: sha,
		Err: err,
	}
}

// ApplyError indica que el cherry-pick falló, típicamente por conflictos.
// Hint lleva la nota para el operador con la línea de procedencia exacta.
type ApplyError struct {
	Sha    string
	Stderr string
	Hint   string
	Err    error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("cherry-pick of %s failed", e.Sha)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// NewApplyError crea un nuevo error de aplicación de cambios
func NewApplyError(sha, stderr, hint string, err error) *ApplyError {
	return &ApplyError{
		Sha:    sha,
		Stderr: stderr,
		Hint:   hint,
		Err:    err,
	}
}

// RewriteError indica que el amend falló después de un cherry-pick exitoso,
// dejando el commit aplicado pero con el mensaje sin editar.
type RewriteError struct {
	Sha string
	Err error
}

func (e *RewriteError) Error() string {
	return "failed to update commit message"
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}

// NewRewriteError crea un nuevo error de reescritura de mensaje
func NewRewriteError(sha string, err error) *RewriteError {
	return &RewriteError{
		Sha: sha,
		Err: err,
	}
}
