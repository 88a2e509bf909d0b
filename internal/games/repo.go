package games

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
)

// Repository exposes game catalog persistence operations.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context, namePrefix string) ([]models.Game, error)
	Create(ctx context.Context, game *models.Game) (*models.Game, error)
	CategoryExists(ctx context.Context, categoryID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a games repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context, namePrefix string) ([]models.Game, error) {
	query := r.db.WithContext(ctx).Preload("Category")
	if namePrefix != "" {
		query = query.Where("name ILIKE ?", namePrefix+"%")
	}

	var games []models.Game
	if err := query.Order("created_at ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *repository) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

func (r *repository) CategoryExists(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
