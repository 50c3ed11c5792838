package store

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ErrNotFound indica que ainda não existe snapshot salvo.
var ErrNotFound = errors.New("snapshot_not_found")

// Store persiste o estado completo da aplicação como um único documento
// JSON. Nunca há atualização parcial: Load lê tudo, Save grava tudo.
type Store interface {
	Load(ctx context.Context) (*models.Database, error)
	Save(ctx context.Context, db *models.Database) error
}
