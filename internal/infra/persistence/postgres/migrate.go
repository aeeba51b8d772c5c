package postgres

import (
	"context"
	"log/slog"

	"seely/config"
	"seely/internal/domain/entity"
	"seely/internal/errors"
	"seely/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedUsers are the development accounts. Local passwords are bcrypt cost 10; apinut's is "1234".
var seedUsers = []model.UserModel{
	{Username: "apinut", Password: ptr("$2b$10$xlyzjURC7TUYVFWOYj0Kbu.9NFzwIDJTq3fuur1Yw4.TVZUNn1gi."), Role: string(entity.RoleUser)},
	{Username: "john", Password: ptr("$2b$10$/uHUZqEZx4DLK5K985F.i.bx74Vi9GUHhLLQamFPJhjKufFjNhVX2"), Role: string(entity.RoleUser)},
	{Username: "kaewmunee", Password: ptr("$2b$10$gbAQROjEVcyBfr7k1753Au5MQvacyAZgylFRWP0Iq24wDMjd3S4gW"), Role: string(entity.RoleUser)},
	{Username: "donut", Password: ptr("$2b$10$sJlTZg6kii2ZsbODgAazyeGsEjYkzyK8j4UH8dqPTadJIYjMiukGO"), Role: string(entity.RoleUser)},
	{Username: "apinut555@gmail.com", Role: string(entity.RoleUser), KeycloakID: ptr("392de118-0c0c-40e4-a628-9b77b1354c42")},
	{Username: "wer987654321@hotmail.com", Role: string(entity.RoleUser), KeycloakID: ptr("3c632971-d475-4d23-adeb-06b9a18131b8")},
}

// Bootstrap migrates the users table and inserts the seed accounts, as enabled by cfg.
func Bootstrap(ctx context.Context, db *gorm.DB, cfg *config.DatabaseConfig, logger *slog.Logger) error {
	if cfg == nil {
		return nil
	}

	if cfg.AutoMigrate {
		if err := db.WithContext(ctx).AutoMigrate(&model.UserModel{}); err != nil {
			return errors.Wrap(err, "failed to migrate users table")
		}
		logger.Info("Users table migrated")
	}

	if cfg.Seed {
		users := make([]model.UserModel, len(seedUsers))
		copy(users, seedUsers)

		result := db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&users)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to seed users")
		}
		logger.Info("Seed users inserted", slog.Int64("inserted", result.RowsAffected))
	}

	return nil
}

func ptr(s string) *string {
	return &s
}
