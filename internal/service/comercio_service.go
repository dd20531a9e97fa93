package service

import (
	"context"

	"github.com/zykorwx/dapp/internal/dto"
	"github.com/zykorwx/dapp/internal/model"
	"github.com/zykorwx/dapp/internal/repository"
	"github.com/zykorwx/dapp/pkg/logger"
	"go.uber.org/zap"
)

// ComercioService backs the admin endpoints
type ComercioService struct {
	repo repository.ComercioRepository
}

func NewComercioService(repo repository.ComercioRepository) *ComercioService {
	return &ComercioService{repo: repo}
}

// Create registers a comercio with a freshly generated API key
func (s *ComercioService) Create(ctx context.Context, req dto.NewComercioRequest) (*model.Comercio, error) {
	c := req.ToModel()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Comercio created",
		zap.Uint("comercio_id", c.ID),
		zap.String("nombre", c.Nombre))
	return c, nil
}

func (s *ComercioService) List(ctx context.Context) ([]model.Comercio, error) {
	return s.repo.List(ctx)
}
