package rentals

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
)

// Repository exposes rental ledger persistence operations.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	LockGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error)
	CountOpenByGame(ctx context.Context, gameID uuid.UUID) (int64, error)
	CustomerExists(ctx context.Context, customerID uuid.UUID) (bool, error)
	Create(ctx context.Context, rental *models.Rental) (*models.Rental, error)
	LockByID(ctx context.Context, id uuid.UUID) (*models.Rental, error)
	Close(ctx context.Context, rental *models.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]models.Rental, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a rentals repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// LockGame takes a row lock on the game so the open-rental count stays
// stable until the surrounding transaction commits.
func (r *repository) LockGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", gameID).
		First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *repository) CountOpenByGame(ctx context.Context, gameID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Rental{}).
		Where("game_id = ? AND return_date IS NULL", gameID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CustomerExists(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Create(ctx context.Context, rental *models.Rental) (*models.Rental, error) {
	if err := r.db.WithContext(ctx).Create(rental).Error; err != nil {
		return nil, err
	}
	return rental, nil
}

func (r *repository) LockByID(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&rental).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// Close persists the return date and delay fee in a single update so a
// ledger row never shows one without the other.
func (r *repository) Close(ctx context.Context, rental *models.Rental) error {
	return r.db.WithContext(ctx).
		Model(&models.Rental{}).
		Where("id = ?", rental.ID).
		Updates(map[string]any{
			"return_date":     rental.ReturnDate,
			"delay_fee_cents": rental.DelayFeeCents,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Rental{}).Error
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]models.Rental, error) {
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Game").
		Preload("Game.Category")
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.GameID != nil {
		query = query.Where("game_id = ?", *filter.GameID)
	}

	var rentals []models.Rental
	if err := query.Order("created_at ASC").Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}
