// Package model holds the GORM persistence models.
package model

import "time"

// UserModel mirrors the 'users' table. Password and KeycloakID are nullable so that
// local-only and federated-only accounts share one table.
type UserModel struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	Username   string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   *string `gorm:"column:password;type:varchar(255)"`
	Role       string  `gorm:"type:varchar(16);not null;default:'USER'"`
	KeycloakID *string `gorm:"column:keycloak_id;type:varchar(255);uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
