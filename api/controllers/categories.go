package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/boardcamp/boardcamp-backend/api/responses"
	"github.com/boardcamp/boardcamp-backend/api/validators"
	"github.com/boardcamp/boardcamp-backend/internal/categories"
	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
	"github.com/boardcamp/boardcamp-backend/pkg/logger"
)

type createCategoryPayload struct {
	Name string `json:"name" validate:"required"`
}

type categoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toCategoryView(category models.Category) categoryView {
	return categoryView{ID: category.ID, Name: category.Name}
}

// CategoriesList returns every category in creation order.
func CategoriesList(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "categories service unavailable"))
			return
		}

		list, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		views := make([]categoryView, 0, len(list))
		for _, category := range list {
			views = append(views, toCategoryView(category))
		}
		responses.WriteSuccess(w, views)
	}
}

// CategoriesCreate registers a new category.
func CategoriesCreate(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "categories service unavailable"))
			return
		}

		var payload createCategoryPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		category, err := svc.Create(ctx, categories.CreateInput{Name: payload.Name})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, toCategoryView(*category))
	}
}
