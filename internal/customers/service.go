package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boardcamp/boardcamp-backend/pkg/db"
	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
)

const cpfConstraint = "customers_cpf_key"

const birthdayLayout = "2006-01-02"

// Service defines the customer registry operations.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]models.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Create(ctx context.Context, input CreateInput) (*models.Customer, error)
}

// ListFilter narrows the customer listing.
type ListFilter struct {
	CPFPrefix string
}

// CreateInput carries the fields required to register a customer.
type CreateInput struct {
	Name     string
	Phone    string
	CPF      string
	Birthday string
}

type service struct {
	repo Repository
}

// NewService builds a customer service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]models.Customer, error) {
	prefix := strings.TrimSpace(filter.CPFPrefix)

	customers, err := s.repo.List(ctx, prefix)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	if prefix != "" && len(customers) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no customers match the given cpf")
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	return customers, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return customer, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Customer, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	cpf := strings.TrimSpace(input.CPF)

	switch {
	case name == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name required")
	case !allDigits(phone) || len(phone) < 10 || len(phone) > 11:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone must be 10 or 11 digits")
	case !allDigits(cpf) || len(cpf) != 11:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cpf must be exactly 11 digits")
	}

	birthday, err := time.Parse(birthdayLayout, strings.TrimSpace(input.Birthday))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "birthday must be a valid YYYY-MM-DD date")
	}

	customer, err := s.repo.Create(ctx, &models.Customer{
		Name:     name,
		Phone:    phone,
		CPF:      cpf,
		Birthday: birthday,
	})
	if err != nil {
		if db.IsUniqueViolation(err, cpfConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "cpf already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	return customer, nil
}

func allDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
