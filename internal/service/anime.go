package service

import (
	"context"

	"github.com/deppfellow/anime-service/internal/model/anime"
)

// AnimeRepository is the storage AnimeService depends on.
type AnimeRepository interface {
	FindAll(ctx context.Context) ([]anime.Anime, error)
	FindByID(ctx context.Context, id int) (*anime.Anime, error)
	Save(ctx context.Context, a anime.Anime) (*anime.Anime, error)
	SaveAll(ctx context.Context, animes []anime.Anime) ([]anime.Anime, error)
	Delete(ctx context.Context, id int) error
}

type AnimeService struct {
	repo AnimeRepository
}

func NewAnimeService(repo AnimeRepository) *AnimeService {
	return &AnimeService{repo: repo}
}

func (s *AnimeService) FindAll(ctx context.Context) ([]anime.Anime, error) {
	animes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, handleStoreError(ctx, err, "failed to list anime")
	}
	return animes, nil
}

// FindByID returns a 404 "Anime not found" error for unknown ids.
func (s *AnimeService) FindByID(ctx context.Context, id int) (*anime.Anime, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, handleStoreError(ctx, err, "failed to get anime")
	}
	return a, nil
}

func (s *AnimeService) Save(ctx context.Context, payload *anime.CreateAnimePayload) (*anime.Anime, error) {
	a, err := s.repo.Save(ctx, payload.ToAnime())
	if err != nil {
		return nil, handleStoreError(ctx, err, "failed to create anime")
	}
	return a, nil
}

// SaveAll stores the whole batch or nothing.
func (s *AnimeService) SaveAll(ctx context.Context, payload *anime.CreateAnimeBatchPayload) ([]anime.Anime, error) {
	animes, err := s.repo.SaveAll(ctx, payload.ToAnimes())
	if err != nil {
		return nil, handleStoreError(ctx, err, "failed to create anime batch")
	}
	return animes, nil
}

// Update replaces the name of an existing anime. Nothing is written when
// the id is unknown.
func (s *AnimeService) Update(ctx context.Context, payload *anime.UpdateAnimePayload) error {
	existing, err := s.FindByID(ctx, int(payload.ID))
	if err != nil {
		return err
	}

	existing.Name = payload.Name
	if _, err := s.repo.Save(ctx, *existing); err != nil {
		return handleStoreError(ctx, err, "failed to update anime")
	}
	return nil
}

func (s *AnimeService) Delete(ctx context.Context, id int) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return handleStoreError(ctx, err, "failed to delete anime")
	}
	return nil
}
