// Package model provides domain models and DTOs for team module.
package model

import "time"

// Team represents a sales team.
// Matches the teams table schema.
type Team struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
