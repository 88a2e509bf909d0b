package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registered borrower. CPF is the 11-digit document id and is
// unique across all customers.
type Customer struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Phone     string    `gorm:"column:phone;not null"`
	CPF       string    `gorm:"column:cpf;not null;uniqueIndex:customers_cpf_key"`
	Birthday  time.Time `gorm:"column:birthday;type:date;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
