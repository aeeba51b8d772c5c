// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"seely/internal/domain/entity"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/domain/repository"
	"seely/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their numeric ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by id", "id = ?", id)
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by username", "username = ?", username)
}

// FindByExternalSubjectID retrieves the user linked to the provider subject.
func (repo *userRepository) FindByExternalSubjectID(ctx context.Context, subject string) (*entity.User, error) {
	if subject == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "failed to find user by external subject", "keycloak_id = ?", subject)
}

func (repo *userRepository) findOne(ctx context.Context, failure string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Take(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and copies the generated ID and timestamps back onto it.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.Role = entity.Role(userM.Role)
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves the password, role and external subject of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(userM).
		Select("Password", "Role", "KeycloakID", "UpdatedAt").
		Updates(userM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func translateWriteError(err error, failure string) error {
	if isUniqueConstraintViolation(err) {
		return errors.Wrap(repository.ErrDuplicateUser, failure)
	}
	if isInvalidRowError(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid user information")
	}

	return domainerrors.NewDatabaseExecuteError(err, failure)
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Username:          data.Username,
		PasswordHash:      derefString(data.Password),
		Role:              entity.RoleOrDefault(entity.Role(data.Role)),
		ExternalSubjectID: derefString(data.KeycloakID),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
// Empty password and subject are stored as NULL so the unique index ignores them.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:         data.ID,
		Username:   data.Username,
		Password:   nullableString(data.PasswordHash),
		Role:       string(entity.RoleOrDefault(data.Role)),
		KeycloakID: nullableString(data.ExternalSubjectID),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
