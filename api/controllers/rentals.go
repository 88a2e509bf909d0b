package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/boardcamp/boardcamp-backend/api/responses"
	"github.com/boardcamp/boardcamp-backend/api/validators"
	"github.com/boardcamp/boardcamp-backend/internal/rentals"
	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
	"github.com/boardcamp/boardcamp-backend/pkg/logger"
)

type createRentalPayload struct {
	CustomerID uuid.UUID `json:"customerId" validate:"required"`
	GameID     uuid.UUID `json:"gameId" validate:"required"`
	DaysRented int       `json:"daysRented" validate:"gte=1"`
}

type rentalView struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	GameID        uuid.UUID `json:"gameId"`
	RentDate      string    `json:"rentDate"`
	DaysRented    int       `json:"daysRented"`
	ReturnDate    *string   `json:"returnDate"`
	OriginalPrice int       `json:"originalPrice"`
	DelayFee      *int      `json:"delayFee"`
}

func toRentalView(rental models.Rental) rentalView {
	view := rentalView{
		ID:            rental.ID,
		CustomerID:    rental.CustomerID,
		GameID:        rental.GameID,
		RentDate:      rental.RentDate.Format(rentals.DateLayout),
		DaysRented:    rental.DaysRented,
		OriginalPrice: rental.OriginalPriceCents,
		DelayFee:      rental.DelayFeeCents,
	}
	if rental.ReturnDate != nil {
		formatted := rental.ReturnDate.Format(rentals.DateLayout)
		view.ReturnDate = &formatted
	}
	return view
}

// RentalsList returns the ledger, optionally narrowed by customer or game.
func RentalsList(svc rentals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rentals service unavailable"))
			return
		}

		var filter rentals.ListFilter
		if raw := r.URL.Query().Get("customerId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "customerId must be a valid uuid"))
				return
			}
			filter.CustomerID = &id
		}
		if raw := r.URL.Query().Get("gameId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "gameId must be a valid uuid"))
				return
			}
			filter.GameID = &id
		}

		items, err := svc.List(ctx, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// RentalsCreate opens a rental when the game still has stock available.
func RentalsCreate(svc rentals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rentals service unavailable"))
			return
		}

		var payload createRentalPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		rental, err := svc.Create(ctx, rentals.CreateInput{
			CustomerID: payload.CustomerID,
			GameID:     payload.GameID,
			DaysRented: payload.DaysRented,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, toRentalView(*rental))
	}
}

// RentalsClose marks a rental returned and settles its delay fee.
func RentalsClose(svc rentals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rentals service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "rentalId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "rentalId must be a valid uuid"))
			return
		}

		rental, err := svc.Close(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toRentalView(*rental))
	}
}

// RentalsDelete removes an open rental from the ledger.
func RentalsDelete(svc rentals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rentals service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "rentalId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "rentalId must be a valid uuid"))
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
