package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zykorwx/dapp/internal/model"
	appmetrics "github.com/zykorwx/dapp/prometheus"
	"gorm.io/gorm"
)

// ComercioRepository defines the comercio operations
type ComercioRepository interface {
	FindByAPIKey(ctx context.Context, key uuid.UUID) (*model.Comercio, error)
	Create(ctx context.Context, c *model.Comercio) error
	List(ctx context.Context) ([]model.Comercio, error)
}

type comercioRepository struct{ db *gorm.DB }

func NewComercioRepository(db *gorm.DB) ComercioRepository {
	return &comercioRepository{db: db}
}

func (r *comercioRepository) FindByAPIKey(ctx context.Context, key uuid.UUID) (*model.Comercio, error) {
	defer appmetrics.TrackDBOperation("query")(time.Now())

	var c model.Comercio
	if err := r.db.WithContext(ctx).Where("api_key = ?", key).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *comercioRepository) Create(ctx context.Context, c *model.Comercio) error {
	defer appmetrics.TrackDBOperation("insert")(time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(c).Error
	})
	return translate(err)
}

func (r *comercioRepository) List(ctx context.Context) ([]model.Comercio, error) {
	defer appmetrics.TrackDBOperation("query")(time.Now())

	var list []model.Comercio
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}
