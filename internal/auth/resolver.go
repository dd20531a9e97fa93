// Package auth resolves the comercio behind a request's Basic credentials.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/zykorwx/dapp/internal/apperror"
	"github.com/zykorwx/dapp/internal/model"
	"github.com/zykorwx/dapp/internal/repository"
	appmetrics "github.com/zykorwx/dapp/prometheus"
)

// ComercioKey is where the authenticated comercio is stored on the echo context
const ComercioKey = "comercio"

// Resolver maps an API key to its comercio
type Resolver struct {
	comercios repository.ComercioRepository
}

func NewResolver(comercios repository.ComercioRepository) *Resolver {
	return &Resolver{comercios: comercios}
}

// ResolveRequest authenticates r. The API key travels as the Basic-Auth
// username; the password is ignored.
func (r *Resolver) ResolveRequest(req *http.Request) (*model.Comercio, error) {
	username, _, ok := req.BasicAuth()
	if !ok {
		appmetrics.RecordAuthFailure("missing")
		return nil, apperror.ErrMissingCredentials
	}
	return r.Resolve(req.Context(), username)
}

// Resolve looks up the comercio owning apiKey. The key may be written in
// hex or canonical UUID form.
func (r *Resolver) Resolve(ctx context.Context, apiKey string) (*model.Comercio, error) {
	key, err := uuid.Parse(apiKey)
	if err != nil {
		appmetrics.RecordAuthFailure("malformed")
		return nil, apperror.ErrMalformedAPIKey
	}

	comercio, err := r.comercios.FindByAPIKey(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		appmetrics.RecordAuthFailure("unknown")
		return nil, apperror.ErrUnknownAPIKey
	}
	if err != nil {
		return nil, err
	}
	return comercio, nil
}

// ComercioFrom returns the comercio set by the API key middleware, or nil
// when the request is not tenant scoped.
func ComercioFrom(c echo.Context) *model.Comercio {
	comercio, _ := c.Get(ComercioKey).(*model.Comercio)
	return comercio
}
