package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zykorwx/dapp/internal/apperror"
	"github.com/zykorwx/dapp/internal/dto"
	"github.com/zykorwx/dapp/internal/model"
	"github.com/zykorwx/dapp/internal/repository"
	"github.com/zykorwx/dapp/pkg/logger"
	appmetrics "github.com/zykorwx/dapp/prometheus"
	"go.uber.org/zap"
)

// EmpleadoService implements the employee operations for one comercio
// scope. A comercioID of 0 reads across every comercio.
type EmpleadoService struct {
	repo repository.EmpleadoRepository
}

func NewEmpleadoService(repo repository.EmpleadoRepository) *EmpleadoService {
	return &EmpleadoService{repo: repo}
}

// parseID treats an unparsable id exactly like an unknown one
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidEmployee
	}
	return id, nil
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperror.ErrInvalidEmployee
	case errors.Is(err, repository.ErrDuplicated):
		return apperror.ErrDuplicatedPin
	default:
		return err
	}
}

func (s *EmpleadoService) List(ctx context.Context, comercioID uint) ([]model.Empleado, error) {
	appmetrics.RecordEmpleadoOperation("list")
	return s.repo.List(ctx, comercioID)
}

func (s *EmpleadoService) Get(ctx context.Context, comercioID uint, rawID string) (*model.Empleado, error) {
	appmetrics.RecordEmpleadoOperation("get")

	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	e, err := s.repo.FindByUUID(ctx, comercioID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return e, nil
}

// Create stores a new employee under comercioID
func (s *EmpleadoService) Create(ctx context.Context, comercioID uint, req dto.NewEmpleadoRequest) (*model.Empleado, error) {
	appmetrics.RecordEmpleadoOperation("create")

	e := req.ToModel(comercioID)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, mapRepoError(err)
	}

	logger.FromContext(ctx).Info("Empleado created",
		zap.String("empleado", e.UUID.String()),
		zap.Uint("comercio_id", comercioID))
	return e, nil
}

// Update replaces nombre, apellidos, pin and activo. The stored row is left
// untouched when the new pin collides.
func (s *EmpleadoService) Update(ctx context.Context, comercioID uint, rawID string, req dto.UpdateEmpleadoRequest) (*model.Empleado, error) {
	appmetrics.RecordEmpleadoOperation("update")

	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	e, err := s.repo.Update(ctx, comercioID, id, req.Apply)
	if err != nil {
		return nil, mapRepoError(err)
	}

	logger.FromContext(ctx).Info("Empleado updated",
		zap.String("empleado", e.UUID.String()),
		zap.Stringer("activo_input", req.Activo),
		zap.Bool("activo", e.Activo))
	return e, nil
}

func (s *EmpleadoService) Delete(ctx context.Context, comercioID uint, rawID string) error {
	appmetrics.RecordEmpleadoOperation("delete")

	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, comercioID, id); err != nil {
		return mapRepoError(err)
	}

	logger.FromContext(ctx).Info("Empleado deleted", zap.String("empleado", id.String()))
	return nil
}
