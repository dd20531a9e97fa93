package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zykorwx/dapp/internal/model"
	appmetrics "github.com/zykorwx/dapp/prometheus"
	"gorm.io/gorm"
)

// EmpleadoRepository defines the employee operations. A comercioID of 0
// means unscoped access across every comercio.
type EmpleadoRepository interface {
	List(ctx context.Context, comercioID uint) ([]model.Empleado, error)
	FindByUUID(ctx context.Context, comercioID uint, id uuid.UUID) (*model.Empleado, error)
	Create(ctx context.Context, e *model.Empleado) error
	Update(ctx context.Context, comercioID uint, id uuid.UUID, apply func(*model.Empleado)) (*model.Empleado, error)
	Delete(ctx context.Context, comercioID uint, id uuid.UUID) error
}

type empleadoRepository struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository {
	return &empleadoRepository{db: db}
}

// ofComercio restricts a query to one comercio
func ofComercio(comercioID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if comercioID == 0 {
			return db
		}
		return db.Where("comercio_id = ?", comercioID)
	}
}

func (r *empleadoRepository) List(ctx context.Context, comercioID uint) ([]model.Empleado, error) {
	defer appmetrics.TrackDBOperation("query")(time.Now())

	var list []model.Empleado
	err := r.db.WithContext(ctx).Scopes(ofComercio(comercioID)).Order("id asc").Find(&list).Error
	return list, err
}

func (r *empleadoRepository) FindByUUID(ctx context.Context, comercioID uint, id uuid.UUID) (*model.Empleado, error) {
	defer appmetrics.TrackDBOperation("query")(time.Now())

	var e model.Empleado
	err := r.db.WithContext(ctx).Scopes(ofComercio(comercioID)).Where("uuid = ?", id).First(&e).Error
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *empleadoRepository) Create(ctx context.Context, e *model.Empleado) error {
	defer appmetrics.TrackDBOperation("insert")(time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(e).Error
	})
	return translate(err)
}

// Update loads the row inside a transaction, lets apply modify it and saves
// it. Nothing is written if the row is not visible to comercioID.
func (r *empleadoRepository) Update(ctx context.Context, comercioID uint, id uuid.UUID, apply func(*model.Empleado)) (*model.Empleado, error) {
	defer appmetrics.TrackDBOperation("update")(time.Now())

	var e model.Empleado
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(ofComercio(comercioID)).Where("uuid = ?", id).First(&e).Error; err != nil {
			return err
		}
		apply(&e)
		return tx.Save(&e).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *empleadoRepository) Delete(ctx context.Context, comercioID uint, id uuid.UUID) error {
	defer appmetrics.TrackDBOperation("delete")(time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Scopes(ofComercio(comercioID)).Where("uuid = ?", id).Delete(&model.Empleado{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err)
}
