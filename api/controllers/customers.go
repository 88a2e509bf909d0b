package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/boardcamp/boardcamp-backend/api/responses"
	"github.com/boardcamp/boardcamp-backend/api/validators"
	"github.com/boardcamp/boardcamp-backend/internal/customers"
	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
	"github.com/boardcamp/boardcamp-backend/pkg/logger"
)

type createCustomerPayload struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,numeric,min=10,max=11"`
	CPF      string `json:"cpf" validate:"required,numeric,len=11"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
}

type customerView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	CPF      string    `json:"cpf"`
	Birthday string    `json:"birthday"`
}

func toCustomerView(customer models.Customer) customerView {
	return customerView{
		ID:       customer.ID,
		Name:     customer.Name,
		Phone:    customer.Phone,
		CPF:      customer.CPF,
		Birthday: customer.Birthday.Format("2006-01-02"),
	}
}

// CustomersList returns customers, optionally narrowed by a cpf prefix.
func CustomersList(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		list, err := svc.List(ctx, customers.ListFilter{CPFPrefix: r.URL.Query().Get("cpf")})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		views := make([]customerView, 0, len(list))
		for _, customer := range list {
			views = append(views, toCustomerView(customer))
		}
		responses.WriteSuccess(w, views)
	}
}

// CustomersGet returns a single customer by id.
func CustomersGet(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "customerId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "customerId must be a valid uuid"))
			return
		}

		customer, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCustomerView(*customer))
	}
}

// CustomersCreate registers a new customer.
func CustomersCreate(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		var payload createCustomerPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		customer, err := svc.Create(ctx, customers.CreateInput{
			Name:     payload.Name,
			Phone:    payload.Phone,
			CPF:      payload.CPF,
			Birthday: payload.Birthday,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, toCustomerView(*customer))
	}
}
