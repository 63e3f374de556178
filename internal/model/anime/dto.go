package anime

import (
	"fmt"

	"github.com/deppfellow/anime-service/internal/validation"
)

// ------------------------------------------------------------

type CreateAnimePayload struct {
	Name string `json:"name" validate:"required,notblank"`
}

func (p *CreateAnimePayload) Validate() error {
	return validation.Validator().Struct(p)
}

// ToAnime builds an unsaved entity. Any client-sent id is never read.
func (p *CreateAnimePayload) ToAnime() Anime {
	return Anime{Name: p.Name}
}

// ------------------------------------------------------------

// CreateAnimeBatchPayload is a JSON array of anime to insert atomically.
type CreateAnimeBatchPayload []CreateAnimePayload

func (p *CreateAnimeBatchPayload) Validate() error {
	var failures validation.CustomValidationErrors
	for i := range *p {
		if err := (*p)[i].Validate(); err != nil {
			failures = append(failures, validation.CustomValidationError{
				Field:   fmt.Sprintf("[%d].name", i),
				Message: "is required",
			})
		}
	}

	if failures != nil {
		return failures
	}
	return nil
}

func (p *CreateAnimeBatchPayload) ToAnimes() []Anime {
	animes := make([]Anime, 0, len(*p))
	for _, item := range *p {
		animes = append(animes, item.ToAnime())
	}
	return animes
}

// ------------------------------------------------------------

type ListAnimesPayload struct{}

func (p *ListAnimesPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

// GetAnimeByIDPayload binds the path id as int32 to match the SERIAL
// column, so larger values fail binding with 400.
type GetAnimeByIDPayload struct {
	ID int32 `param:"id"`
}

func (p *GetAnimeByIDPayload) Validate() error {
	return validation.Validator().Struct(p)
}

// ------------------------------------------------------------

// UpdateAnimePayload takes the id from the path only.
type UpdateAnimePayload struct {
	ID   int32  `param:"id" json:"-"`
	Name string `json:"name" validate:"required,notblank"`
}

func (p *UpdateAnimePayload) Validate() error {
	return validation.Validator().Struct(p)
}

// ------------------------------------------------------------

type DeleteAnimePayload struct {
	ID int32 `param:"id"`
}

func (p *DeleteAnimePayload) Validate() error {
	return validation.Validator().Struct(p)
}
