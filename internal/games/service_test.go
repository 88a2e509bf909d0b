package games

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
)

type stubGamesRepo struct {
	list           func(ctx context.Context, namePrefix string) ([]models.Game, error)
	create         func(ctx context.Context, game *models.Game) (*models.Game, error)
	categoryExists func(ctx context.Context, categoryID uuid.UUID) (bool, error)
}

func (s *stubGamesRepo) WithTx(tx *gorm.DB) Repository {
	return s
}

func (s *stubGamesRepo) List(ctx context.Context, namePrefix string) ([]models.Game, error) {
	if s.list != nil {
		return s.list(ctx, namePrefix)
	}
	return nil, nil
}

func (s *stubGamesRepo) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	if s.create != nil {
		return s.create(ctx, game)
	}
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	return game, nil
}

func (s *stubGamesRepo) CategoryExists(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	if s.categoryExists != nil {
		return s.categoryExists(ctx, categoryID)
	}
	return true, nil
}

func TestGamesList(t *testing.T) {
	t.Run("empty catalog without filter returns empty slice", func(t *testing.T) {
		svc, err := NewService(&stubGamesRepo{})
		if err != nil {
			t.Fatalf("NewService: %v", err)
		}

		games, err := svc.List(context.Background(), ListFilter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if games == nil || len(games) != 0 {
			t.Fatalf("expected empty slice, got %v", games)
		}
	})

	t.Run("filter matching nothing is not found", func(t *testing.T) {
		svc, _ := NewService(&stubGamesRepo{})

		_, err := svc.List(context.Background(), ListFilter{NamePrefix: "Catan"})
		appErr := pkgerrors.As(err)
		if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("filter prefix is forwarded to the repository", func(t *testing.T) {
		var gotPrefix string
		svc, _ := NewService(&stubGamesRepo{
			list: func(ctx context.Context, namePrefix string) ([]models.Game, error) {
				gotPrefix = namePrefix
				return []models.Game{{Name: "Carcassonne"}}, nil
			},
		})

		games, err := svc.List(context.Background(), ListFilter{NamePrefix: " Car "})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if gotPrefix != "Car" {
			t.Fatalf("expected trimmed prefix, got %q", gotPrefix)
		}
		if len(games) != 1 {
			t.Fatalf("expected one game, got %d", len(games))
		}
	})
}

func TestGamesCreate(t *testing.T) {
	categoryID := uuid.New()

	valid := CreateInput{
		Name:            "Catan",
		Image:           "https://example.com/catan.png",
		StockTotal:      3,
		CategoryID:      categoryID,
		PricePerDayCent: 1500,
	}

	t.Run("creates game", func(t *testing.T) {
		svc, _ := NewService(&stubGamesRepo{})

		game, err := svc.Create(context.Background(), valid)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if game.PricePerDayCents != 1500 {
			t.Fatalf("expected price to carry over, got %d", game.PricePerDayCents)
		}
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		cases := map[string]CreateInput{
			"blank name":     {Name: " ", StockTotal: 3, CategoryID: categoryID, PricePerDayCent: 1500},
			"zero stock":     {Name: "Catan", StockTotal: 0, CategoryID: categoryID, PricePerDayCent: 1500},
			"zero price":     {Name: "Catan", StockTotal: 3, CategoryID: categoryID, PricePerDayCent: 0},
			"nil category":   {Name: "Catan", StockTotal: 3, PricePerDayCent: 1500},
			"negative stock": {Name: "Catan", StockTotal: -1, CategoryID: categoryID, PricePerDayCent: 1500},
		}

		svc, _ := NewService(&stubGamesRepo{})
		for name, input := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := svc.Create(context.Background(), input)
				appErr := pkgerrors.As(err)
				if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
					t.Fatalf("expected validation error, got %v", err)
				}
			})
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		svc, _ := NewService(&stubGamesRepo{
			categoryExists: func(ctx context.Context, categoryID uuid.UUID) (bool, error) {
				return false, nil
			},
		})

		_, err := svc.Create(context.Background(), valid)
		appErr := pkgerrors.As(err)
		if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
