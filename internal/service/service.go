// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated payloads, services apply the domain rules and turn storage
// failures into *errs.HTTPError values.
package service

import (
	"context"
	"errors"

	"github.com/deppfellow/anime-service/internal/errs"
	"github.com/deppfellow/anime-service/internal/sqlerr"
	"github.com/rs/zerolog"
)

// handleStoreError converts a repository error and logs the cause when it
// would otherwise be hidden behind a 500.
func handleStoreError(ctx context.Context, err error, msg string) error {
	converted := sqlerr.HandleError(err)

	var httpErr *errs.HTTPError
	if errors.As(converted, &httpErr) && httpErr.Status >= 500 {
		zerolog.Ctx(ctx).Error().Err(err).Msg(msg)
	}

	return converted
}
