package games

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/boardcamp/boardcamp-backend/pkg/db"
	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
)

const nameConstraint = "games_name_key"

// Service defines the game catalog operations.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]models.Game, error)
	Create(ctx context.Context, input CreateInput) (*models.Game, error)
}

// ListFilter narrows the catalog listing.
type ListFilter struct {
	NamePrefix string
}

// CreateInput carries the fields required to register a game.
type CreateInput struct {
	Name            string
	Image           string
	StockTotal      int
	CategoryID      uuid.UUID
	PricePerDayCent int
}

type service struct {
	repo Repository
}

// NewService builds a game service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("games repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]models.Game, error) {
	prefix := strings.TrimSpace(filter.NamePrefix)

	games, err := s.repo.List(ctx, prefix)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list games")
	}
	// an unfiltered empty catalog is a normal answer; a filter that
	// matches nothing is not
	if prefix != "" && len(games) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no games match the given name")
	}
	if games == nil {
		games = []models.Game{}
	}
	return games, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Game, error) {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "game name required")
	case input.StockTotal < 1:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stockTotal must be at least 1")
	case input.PricePerDayCent < 1:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pricePerDay must be at least 1")
	case input.CategoryID == uuid.Nil:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "categoryId required")
	}

	exists, err := s.repo.CategoryExists(ctx, input.CategoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check category")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
	}

	game, err := s.repo.Create(ctx, &models.Game{
		Name:             name,
		Image:            strings.TrimSpace(input.Image),
		StockTotal:       input.StockTotal,
		CategoryID:       input.CategoryID,
		PricePerDayCents: input.PricePerDayCent,
	})
	if err != nil {
		if db.IsUniqueViolation(err, nameConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "game name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create game")
	}
	return game, nil
}
