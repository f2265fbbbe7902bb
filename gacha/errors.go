package gacha

import "errors"

var (
	// ErrDataUnavailable means the catalog could not be fetched from its store.
	ErrDataUnavailable = errors.New("gacha: character data unavailable")

	// ErrEmptyCatalog means the catalog was fetched but holds no characters.
	ErrEmptyCatalog = errors.New("gacha: no characters available")

	ErrInvalidCount   = errors.New("gacha: draw count out of range")
	ErrInvalidWeights = errors.New("gacha: invalid rarity weight table")
)
