package models

import (
	"time"

	"github.com/google/uuid"
)

// Game is a catalog entry. StockTotal caps how many rentals may be open at
// once; availability is always derived from the open-rental count, never
// cached on the row.
type Game struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name              string    `gorm:"column:name;not null;uniqueIndex:games_name_key"`
	Image             string    `gorm:"column:image;not null"`
	StockTotal        int       `gorm:"column:stock_total;not null"`
	CategoryID        uuid.UUID `gorm:"column:category_id;type:uuid;not null"`
	PricePerDayCents  int       `gorm:"column:price_per_day_cents;not null"`
	Category          *Category `gorm:"foreignKey:CategoryID"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
