// Package model provides domain models and DTOs for sale module.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a recorded sale.
// Matches the sales table schema. TeamID is stored on the sale itself and may
// differ from the seller's current team. SellerName and TeamName are filled by
// queries joining sellers and teams.
type Sale struct {
	ID          string          `gorm:"primaryKey;column:id;type:varchar(64)"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	SellerID    string          `gorm:"column:seller_id;type:varchar(64);not null"`
	TeamID      string          `gorm:"column:team_id;type:varchar(64);not null"`
	OccurredAt  time.Time       `gorm:"column:occurred_at;not null"`
	Description *string         `gorm:"column:description"`
	CreatedAt   time.Time       `gorm:"column:created_at;not null"`

	SellerName *string `gorm:"->;-:migration;column:seller_name"`
	TeamName   *string `gorm:"->;-:migration;column:team_name"`
}

// TableName specifies the table name for GORM.
func (Sale) TableName() string {
	return "sales"
}
