package models

import (
	"time"

	"github.com/google/uuid"
)

// Rental is one row of the rental ledger. A rental is open while ReturnDate
// is nil and counts against its game's stock; closing it sets ReturnDate and
// DelayFeeCents exactly once. OriginalPriceCents is frozen at creation and
// never recomputed from the game's current price.
type Rental struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID         uuid.UUID  `gorm:"column:customer_id;type:uuid;not null"`
	GameID             uuid.UUID  `gorm:"column:game_id;type:uuid;not null"`
	DaysRented         int        `gorm:"column:days_rented;not null"`
	RentDate           time.Time  `gorm:"column:rent_date;not null"`
	OriginalPriceCents int        `gorm:"column:original_price_cents;not null"`
	ReturnDate         *time.Time `gorm:"column:return_date"`
	DelayFeeCents      *int       `gorm:"column:delay_fee_cents"`
	Customer           *Customer  `gorm:"foreignKey:CustomerID"`
	Game               *Game      `gorm:"foreignKey:GameID"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
}

// Open reports whether the rental still counts against stock.
func (r Rental) Open() bool {
	return r.ReturnDate == nil
}
