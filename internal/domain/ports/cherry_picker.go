package ports

import "context"

// CherryPicker aplica un commit sobre la rama actual reescribiendo su mensaje.
type CherryPicker interface {
	Pick(ctx context.Context, reference string) error
}
