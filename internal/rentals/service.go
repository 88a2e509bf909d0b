package rentals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the rental ledger operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Rental, error)
	Close(ctx context.Context, id uuid.UUID) (*models.Rental, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]ListItem, error)
}

type service struct {
	repo Repository
	tx   txRunner
	now  func() time.Time
}

// NewService builds a rental service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("rentals repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Rental, error) {
	switch {
	case input.CustomerID == uuid.Nil:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customerId required")
	case input.GameID == uuid.Nil:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "gameId required")
	case input.DaysRented < 1:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "daysRented must be at least 1")
	}

	var rental *models.Rental
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		game, err := repo.LockGame(ctx, input.GameID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "game not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock game")
		}

		exists, err := repo.CustomerExists(ctx, input.CustomerID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check customer")
		}
		if !exists {
			return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}

		open, err := repo.CountOpenByGame(ctx, input.GameID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count open rentals")
		}
		if open >= int64(game.StockTotal) {
			return pkgerrors.New(pkgerrors.CodeAdmissionDenied, "all copies of this game are rented out").
				WithDetails(map[string]any{
					"gameId":      game.ID,
					"stockTotal":  game.StockTotal,
					"openRentals": open,
				})
		}

		created, err := repo.Create(ctx, &models.Rental{
			CustomerID:         input.CustomerID,
			GameID:             input.GameID,
			DaysRented:         input.DaysRented,
			RentDate:           s.now(),
			OriginalPriceCents: input.DaysRented * game.PricePerDayCents,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create rental")
		}
		rental = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *service) Close(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rental id required")
	}

	var rental *models.Rental
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		current, err := repo.LockByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "rental not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock rental")
		}
		if !current.Open() {
			return pkgerrors.New(pkgerrors.CodeConflict, "rental already closed")
		}

		returnDate := s.now()
		fee := delayFeeCents(current, returnDate)

		current.ReturnDate = &returnDate
		current.DelayFeeCents = &fee
		if err := repo.Close(ctx, current); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "close rental")
		}
		rental = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "rental id required")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		current, err := repo.LockByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "rental not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock rental")
		}
		if !current.Open() {
			return pkgerrors.New(pkgerrors.CodeConflict, "closed rentals cannot be deleted")
		}

		if err := repo.Delete(ctx, current.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete rental")
		}
		return nil
	})
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]ListItem, error) {
	rentals, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list rentals")
	}

	filtered := filter.CustomerID != nil || filter.GameID != nil
	if filtered && len(rentals) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no rentals match the given filters")
	}

	items := make([]ListItem, 0, len(rentals))
	for _, rental := range rentals {
		items = append(items, toListItem(rental))
	}
	return items, nil
}

// delayFeeCents charges the per-day rate for every full day the rental
// was out, counted from the rent date to the return date.
func delayFeeCents(rental *models.Rental, returnDate time.Time) int {
	days := elapsedDays(rental.RentDate, returnDate)
	if days == 0 || rental.DaysRented == 0 {
		return 0
	}
	dailyRate := rental.OriginalPriceCents / rental.DaysRented
	return days * dailyRate
}
