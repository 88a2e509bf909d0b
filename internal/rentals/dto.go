package rentals

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
)

// DateLayout is the wire format for ledger dates.
const DateLayout = "2006-01-02"

// CreateInput carries the fields required to open a rental.
type CreateInput struct {
	CustomerID uuid.UUID
	GameID     uuid.UUID
	DaysRented int
}

// ListFilter narrows the ledger listing.
type ListFilter struct {
	CustomerID *uuid.UUID
	GameID     *uuid.UUID
}

// ListCustomer is the customer summary embedded in a ledger row.
type ListCustomer struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ListGame is the game summary embedded in a ledger row.
type ListGame struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
}

// ListItem is a denormalized ledger row as served to clients.
type ListItem struct {
	ID            uuid.UUID    `json:"id"`
	CustomerID    uuid.UUID    `json:"customerId"`
	GameID        uuid.UUID    `json:"gameId"`
	RentDate      string       `json:"rentDate"`
	DaysRented    int          `json:"daysRented"`
	ReturnDate    *string      `json:"returnDate"`
	OriginalPrice int          `json:"originalPrice"`
	DelayFee      *int         `json:"delayFee"`
	Customer      ListCustomer `json:"customer"`
	Game          ListGame     `json:"game"`
}

func toListItem(rental models.Rental) ListItem {
	item := ListItem{
		ID:            rental.ID,
		CustomerID:    rental.CustomerID,
		GameID:        rental.GameID,
		RentDate:      rental.RentDate.Format(DateLayout),
		DaysRented:    rental.DaysRented,
		OriginalPrice: rental.OriginalPriceCents,
		DelayFee:      rental.DelayFeeCents,
	}
	if rental.ReturnDate != nil {
		formatted := rental.ReturnDate.Format(DateLayout)
		item.ReturnDate = &formatted
	}
	if rental.Customer != nil {
		item.Customer = ListCustomer{ID: rental.Customer.ID, Name: rental.Customer.Name}
	}
	if rental.Game != nil {
		item.Game = ListGame{
			ID:         rental.Game.ID,
			Name:       rental.Game.Name,
			CategoryID: rental.Game.CategoryID,
		}
		if rental.Game.Category != nil {
			item.Game.CategoryName = rental.Game.Category.Name
		}
	}
	return item
}

func elapsedDays(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from) / (24 * time.Hour))
}
