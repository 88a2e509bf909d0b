package customers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
)

type stubCustomersRepo struct {
	list     func(ctx context.Context, cpfPrefix string) ([]models.Customer, error)
	findByID func(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	create   func(ctx context.Context, customer *models.Customer) (*models.Customer, error)
}

func (s *stubCustomersRepo) WithTx(tx *gorm.DB) Repository {
	return s
}

func (s *stubCustomersRepo) List(ctx context.Context, cpfPrefix string) ([]models.Customer, error) {
	if s.list != nil {
		return s.list(ctx, cpfPrefix)
	}
	return nil, nil
}

func (s *stubCustomersRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCustomersRepo) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if s.create != nil {
		return s.create(ctx, customer)
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	return customer, nil
}

func TestCustomersList(t *testing.T) {
	t.Run("unfiltered empty registry returns empty slice", func(t *testing.T) {
		svc, err := NewService(&stubCustomersRepo{})
		if err != nil {
			t.Fatalf("NewService: %v", err)
		}

		customers, err := svc.List(context.Background(), ListFilter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if customers == nil || len(customers) != 0 {
			t.Fatalf("expected empty slice, got %v", customers)
		}
	})

	t.Run("cpf filter matching nothing is not found", func(t *testing.T) {
		svc, _ := NewService(&stubCustomersRepo{})

		_, err := svc.List(context.Background(), ListFilter{CPFPrefix: "012"})
		appErr := pkgerrors.As(err)
		if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestCustomersGet(t *testing.T) {
	t.Run("missing row is not found", func(t *testing.T) {
		svc, _ := NewService(&stubCustomersRepo{})

		_, err := svc.Get(context.Background(), uuid.New())
		appErr := pkgerrors.As(err)
		if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("returns stored customer", func(t *testing.T) {
		id := uuid.New()
		svc, _ := NewService(&stubCustomersRepo{
			findByID: func(ctx context.Context, gotID uuid.UUID) (*models.Customer, error) {
				if gotID != id {
					t.Fatalf("unexpected id %s", gotID)
				}
				return &models.Customer{ID: id, Name: "Joana"}, nil
			},
		})

		customer, err := svc.Get(context.Background(), id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if customer.Name != "Joana" {
			t.Fatalf("unexpected customer %+v", customer)
		}
	})
}

func TestCustomersCreate(t *testing.T) {
	valid := CreateInput{
		Name:     "Joana Silva",
		Phone:    "21998899222",
		CPF:      "01234567890",
		Birthday: "1992-10-05",
	}

	t.Run("creates customer with parsed birthday", func(t *testing.T) {
		svc, _ := NewService(&stubCustomersRepo{})

		customer, err := svc.Create(context.Background(), valid)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		want := time.Date(1992, time.October, 5, 0, 0, 0, 0, time.UTC)
		if !customer.Birthday.Equal(want) {
			t.Fatalf("expected birthday %v, got %v", want, customer.Birthday)
		}
	})

	t.Run("rejects malformed fields", func(t *testing.T) {
		cases := map[string]CreateInput{
			"blank name":     {Name: " ", Phone: valid.Phone, CPF: valid.CPF, Birthday: valid.Birthday},
			"short phone":    {Name: valid.Name, Phone: "219988", CPF: valid.CPF, Birthday: valid.Birthday},
			"long phone":     {Name: valid.Name, Phone: "219988992221", CPF: valid.CPF, Birthday: valid.Birthday},
			"alpha phone":    {Name: valid.Name, Phone: "2199889922a", CPF: valid.CPF, Birthday: valid.Birthday},
			"short cpf":      {Name: valid.Name, Phone: valid.Phone, CPF: "0123456789", Birthday: valid.Birthday},
			"alpha cpf":      {Name: valid.Name, Phone: valid.Phone, CPF: "0123456789x", Birthday: valid.Birthday},
			"bad birthday":   {Name: valid.Name, Phone: valid.Phone, CPF: valid.CPF, Birthday: "05/10/1992"},
			"empty birthday": {Name: valid.Name, Phone: valid.Phone, CPF: valid.CPF, Birthday: ""},
		}

		svc, _ := NewService(&stubCustomersRepo{})
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
}
