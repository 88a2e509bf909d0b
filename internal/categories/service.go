package categories

import (
	"context"
	"fmt"
	"strings"

	"github.com/boardcamp/boardcamp-backend/pkg/db"
	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
)

const nameConstraint = "categories_name_key"

// Service defines the category catalog operations.
type Service interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, input CreateInput) (*models.Category, error)
}

// CreateInput carries the fields required to register a category.
type CreateInput struct {
	Name string
}

type service struct {
	repo Repository
}

// NewService builds a category service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("categories repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name required")
	}

	category, err := s.repo.Create(ctx, &models.Category{Name: name})
	if err != nil {
		if db.IsUniqueViolation(err, nameConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	return category, nil
}
