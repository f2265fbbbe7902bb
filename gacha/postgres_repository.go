package gacha

import (
	"context"
	"database/sql"
	"fmt"

	"gacha-backend/models"
)

type PostgresRepository struct {
	db       *sql.DB
	poolType int
}

func NewPostgresRepository(db *sql.DB, poolType int) *PostgresRepository {
	return &PostgresRepository{db: db, poolType: poolType}
}

func (r *PostgresRepository) FetchDraftablePool(ctx context.Context) ([]models.Character, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT masternumber, rarity, name, type
		FROM characters
		WHERE type = $1
		ORDER BY rarity ASC, masternumber ASC
	`, r.poolType)
	if err != nil {
		return nil, fmt.Errorf("%w: query characters: %v", ErrDataUnavailable, err)
	}
	defer rows.Close()

	characters := make([]models.Character, 0)
	for rows.Next() {
		var c models.Character
		if err := rows.Scan(&c.MasterNumber, &c.Rarity, &c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("%w: scan character: %v", ErrDataUnavailable, err)
		}
		characters = append(characters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate characters: %v", ErrDataUnavailable, err)
	}

	return characters, nil
}

// UpsertCharacters writes the characters in a single transaction, replacing
// rows that share a master number.
func (r *PostgresRepository) UpsertCharacters(ctx context.Context, characters []models.Character) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin character import transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO characters (masternumber, rarity, name, type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (masternumber)
		DO UPDATE SET rarity = EXCLUDED.rarity, name = EXCLUDED.name, type = EXCLUDED.type
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare character upsert: %w", err)
	}
	defer stmt.Close()

	for _, c := range characters {
		if _, err := stmt.ExecContext(ctx, c.MasterNumber, c.Rarity, c.Name, c.Type); err != nil {
			return 0, fmt.Errorf("upsert character masternumber=%d: %w", c.MasterNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit character import transaction: %w", err)
	}

	return len(characters), nil
}

var _ CatalogProvider = (*PostgresRepository)(nil)
