package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/anime-service/internal/model/anime"
	"github.com/deppfellow/anime-service/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const animeTable = "anime"

type AnimeRepository struct {
	db DBTX
}

func NewAnimeRepository(db DBTX) *AnimeRepository {
	return &AnimeRepository{db: db}
}

func scanAnime(row pgx.CollectableRow) (anime.Anime, error) {
	var a anime.Anime
	err := row.Scan(&a.ID, &a.Name)
	return a, err
}

// FindAll returns every anime ordered by id. The result is never nil.
func (r *AnimeRepository) FindAll(ctx context.Context) ([]anime.Anime, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM anime ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query anime: %w", err)
	}

	animes, err := pgx.CollectRows(rows, scanAnime)
	if err != nil {
		return nil, fmt.Errorf("failed to collect anime rows: %w", err)
	}
	if animes == nil {
		animes = []anime.Anime{}
	}

	return animes, nil
}

// FindByID returns an error wrapping pgx.ErrNoRows when the id is unknown.
func (r *AnimeRepository) FindByID(ctx context.Context, id int) (*anime.Anime, error) {
	var a anime.Anime
	err := r.db.QueryRow(ctx, `SELECT id, name FROM anime WHERE id = $1`, id).Scan(&a.ID, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NoRows(animeTable)
		}
		return nil, fmt.Errorf("failed to get anime by id=%d: %w", id, err)
	}

	return &a, nil
}

// Save inserts a when its ID is zero, otherwise updates the name of the
// existing row. The stored row is returned.
func (r *AnimeRepository) Save(ctx context.Context, a anime.Anime) (*anime.Anime, error) {
	return save(ctx, r.db, a)
}

// SaveAll inserts every anime in one transaction. Either all rows are
// stored or none are.
func (r *AnimeRepository) SaveAll(ctx context.Context, animes []anime.Anime) ([]anime.Anime, error) {
	saved := make([]anime.Anime, 0, len(animes))
	if len(animes) == 0 {
		return saved, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin anime batch: %w", err)
	}

	for _, a := range animes {
		stored, err := save(ctx, tx, a)
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, err
		}
		saved = append(saved, *stored)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit anime batch: %w", err)
	}

	return saved, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func save(ctx context.Context, db queryRower, a anime.Anime) (*anime.Anime, error) {
	var stored anime.Anime

	if a.ID == 0 {
		err := db.QueryRow(ctx, `INSERT INTO anime (name) VALUES ($1) RETURNING id, name`, a.Name).
			Scan(&stored.ID, &stored.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to insert anime: %w", err)
		}
		return &stored, nil
	}

	err := db.QueryRow(ctx, `UPDATE anime SET name = $2 WHERE id = $1 RETURNING id, name`, a.ID, a.Name).
		Scan(&stored.ID, &stored.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NoRows(animeTable)
		}
		return nil, fmt.Errorf("failed to update anime id=%d: %w", a.ID, err)
	}
	return &stored, nil
}

// Delete removes the row. An unknown id yields an error wrapping pgx.ErrNoRows.
func (r *AnimeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM anime WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete anime id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NoRows(animeTable)
	}
	return nil
}
