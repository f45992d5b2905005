// Package model provides domain models and DTOs for seller module.
package model

import "time"

// Seller represents a salesperson.
// Matches the sellers table schema. TeamName is filled by queries joining teams.
type Seller struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	TeamID    *string   `gorm:"column:team_id;type:varchar(64)"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`

	TeamName *string `gorm:"->;-:migration;column:team_name"`
}

// TableName specifies the table name for GORM.
func (Seller) TableName() string {
	return "sellers"
}
