package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/anime-service/internal/errs"
	"github.com/deppfellow/anime-service/internal/model/anime"
	"github.com/deppfellow/anime-service/internal/service"
	"github.com/deppfellow/anime-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestAnimeService_FindByIDNotFound(t *testing.T) {
	svc := service.NewAnimeService(testutil.NewAnimeStore())

	_, err := svc.FindByID(context.Background(), 42)
	httpErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Anime not found", httpErr.Message)
}

func TestAnimeService_Save(t *testing.T) {
	store := testutil.NewAnimeStore()
	svc := service.NewAnimeService(store)

	got, err := svc.Save(context.Background(), &anime.CreateAnimePayload{Name: "Haikyuu"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, 1, store.Len())
}

func TestAnimeService_SaveAllIsAtomic(t *testing.T) {
	store := testutil.NewAnimeStore()
	svc := service.NewAnimeService(store)

	_, err := svc.SaveAll(context.Background(), &anime.CreateAnimeBatchPayload{{Name: "Haikyuu"}, {Name: " "}})
	requireStatus(t, err, http.StatusBadRequest)
	assert.Zero(t, store.Len())
}

func TestAnimeService_Update(t *testing.T) {
	store := testutil.NewAnimeStore("Naruto")
	svc := service.NewAnimeService(store)

	require.NoError(t, svc.Update(context.Background(), &anime.UpdateAnimePayload{ID: 1, Name: "Naruto Shippuden"}))

	stored, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Naruto Shippuden", stored.Name)
}

func TestAnimeService_UpdateMissingDoesNotWrite(t *testing.T) {
	store := testutil.NewAnimeStore("Naruto")
	svc := service.NewAnimeService(store)

	err := svc.Update(context.Background(), &anime.UpdateAnimePayload{ID: 9, Name: "Ghost"})
	requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, 1, store.Len())

	stored, _ := store.Get(1)
	assert.Equal(t, "Naruto", stored.Name)
}

func TestAnimeService_Delete(t *testing.T) {
	store := testutil.NewAnimeStore("Naruto")
	svc := service.NewAnimeService(store)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Zero(t, store.Len())

	requireStatus(t, svc.Delete(context.Background(), 1), http.StatusNotFound)
}

func TestAnimeService_StoreFailureIsSanitized(t *testing.T) {
	store := testutil.NewAnimeStore()
	store.Err = errors.New("dial tcp: connection refused")
	svc := service.NewAnimeService(store)

	_, err := svc.FindAll(context.Background())
	httpErr := requireStatus(t, err, http.StatusInternalServerError)
	assert.NotContains(t, httpErr.Message, "connection refused")
}
