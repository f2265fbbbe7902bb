package gacha

import (
	"context"

	"gacha-backend/models"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=gachamock gacha-backend/gacha CatalogProvider

// CatalogProvider supplies the characters eligible for the standard pool.
// Implementations return ErrDataUnavailable (wrapped) when the backing store
// cannot be queried; an empty slice with a nil error is a valid answer.
type CatalogProvider interface {
	FetchDraftablePool(ctx context.Context) ([]models.Character, error)
}
