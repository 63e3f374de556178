package anime

import (
	"errors"
	"testing"

	"github.com/deppfellow/anime-service/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAnimePayload_Validate(t *testing.T) {
	assert.NoError(t, (&CreateAnimePayload{Name: "Cowboy Bebop"}).Validate())
	assert.Error(t, (&CreateAnimePayload{Name: ""}).Validate())
	assert.Error(t, (&CreateAnimePayload{Name: " \t"}).Validate())
}

func TestCreateAnimeBatchPayload_Validate(t *testing.T) {
	batch := CreateAnimeBatchPayload{{Name: "Monster"}, {Name: " "}, {Name: "Trigun"}, {Name: ""}}

	err := batch.Validate()
	require.Error(t, err)

	var failures validation.CustomValidationErrors
	require.True(t, errors.As(err, &failures))
	require.Len(t, failures, 2)
	assert.Equal(t, "[1].name", failures[0].Field)
	assert.Equal(t, "[3].name", failures[1].Field)
}

func TestCreateAnimeBatchPayload_ValidateEmpty(t *testing.T) {
	batch := CreateAnimeBatchPayload{}
	assert.NoError(t, batch.Validate())
	assert.Empty(t, batch.ToAnimes())
}

func TestCreateAnimeBatchPayload_ToAnimes(t *testing.T) {
	batch := CreateAnimeBatchPayload{{Name: "Monster"}, {Name: "Trigun"}}
	assert.Equal(t, []Anime{{Name: "Monster"}, {Name: "Trigun"}}, batch.ToAnimes())
}
