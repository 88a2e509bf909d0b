package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/boardcamp/boardcamp-backend/api/responses"
	"github.com/boardcamp/boardcamp-backend/api/validators"
	"github.com/boardcamp/boardcamp-backend/internal/games"
	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
	pkgerrors "github.com/boardcamp/boardcamp-backend/pkg/errors"
	"github.com/boardcamp/boardcamp-backend/pkg/logger"
)

type createGamePayload struct {
	Name        string    `json:"name" validate:"required"`
	Image       string    `json:"image"`
	StockTotal  int       `json:"stockTotal" validate:"gte=1"`
	CategoryID  uuid.UUID `json:"categoryId" validate:"required"`
	PricePerDay int       `json:"pricePerDay" validate:"gte=1"`
}

type gameView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	StockTotal  int       `json:"stockTotal"`
	CategoryID  uuid.UUID `json:"categoryId"`
	PricePerDay int       `json:"pricePerDay"`
}

func toGameView(game models.Game) gameView {
	return gameView{
		ID:          game.ID,
		Name:        game.Name,
		Image:       game.Image,
		StockTotal:  game.StockTotal,
		CategoryID:  game.CategoryID,
		PricePerDay: game.PricePerDayCents,
	}
}

// GamesList returns the catalog, optionally narrowed by a name prefix.
func GamesList(svc games.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "games service unavailable"))
			return
		}

		list, err := svc.List(ctx, games.ListFilter{NamePrefix: r.URL.Query().Get("name")})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		views := make([]gameView, 0, len(list))
		for _, game := range list {
			views = append(views, toGameView(game))
		}
		responses.WriteSuccess(w, views)
	}
}

// GamesCreate registers a new game in the catalog.
func GamesCreate(svc games.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "games service unavailable"))
			return
		}

		var payload createGamePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		game, err := svc.Create(ctx, games.CreateInput{
			Name:            payload.Name,
			Image:           payload.Image,
			StockTotal:      payload.StockTotal,
			CategoryID:      payload.CategoryID,
			PricePerDayCent: payload.PricePerDay,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, toGameView(*game))
	}
}
