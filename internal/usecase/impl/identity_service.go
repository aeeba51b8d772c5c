package impl

import (
	"context"
	"log/slog"

	"seely/config"
	deliverycontext "seely/internal/delivery/context"
	"seely/internal/domain/entity"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/domain/repository"
	"seely/internal/errors"
	"seely/internal/usecase"

	"go.uber.org/fx"
)

// identityService implements the IdentityLinker interface.
type identityService struct {
	txManager            repository.TransactionManager
	linkExistingAccounts bool
	logger               *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityLinker {
	link := false
	if params.Config != nil && params.Config.OAuth2 != nil {
		link = params.Config.OAuth2.LinkExistingAccounts
	}

	return &identityService{
		txManager:            params.TxManager,
		linkExistingAccounts: link,
		logger:               params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertLocal creates a local account, or attaches the password to a federated-only account
// of the same username. An account that already has a password is a conflict.
func (srv *identityService) UpsertLocal(ctx context.Context, username, passwordHash string, role entity.Role) (*entity.User, error) {
	if username == "" || passwordHash == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}

	var result *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByUsername(ctx, username)
		if errors.Is(err, repository.ErrUserNotFound) {
			user := &entity.User{
				Username:     username,
				PasswordHash: passwordHash,
				Role:         entity.RoleOrDefault(role),
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
			result = user

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by username")
		}

		if existing.HasPassword() {
			return domainerrors.ErrConflict.WrapMessage("username already registered")
		}

		existing.PasswordHash = passwordHash
		if err := userRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to attach password")
		}
		srv.log(ctx).Info("Linked local password to federated account", slog.Uint64("userID", uint64(existing.ID)))
		result = existing

		return nil
	})
	if errors.Is(err, repository.ErrDuplicateUser) {
		return nil, domainerrors.ErrConflict.WrapMessage("username already registered")
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpsertFederated returns the account linked to externalSubjectID. On first login it creates
// the account, or links a local-only account of the same username when linking is enabled.
func (srv *identityService) UpsertFederated(ctx context.Context, username, externalSubjectID string) (*entity.User, error) {
	if externalSubjectID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("external subject is required")
	}
	if username == "" {
		username = externalSubjectID
	}

	var result *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.upsertFederated(ctx, repoFactory.UserRepo(), username, externalSubjectID)
		result = user

		return err
	})
	if errors.Is(err, repository.ErrDuplicateUser) {
		// A concurrent callback for the same subject won the insert.
		return srv.findBySubject(ctx, externalSubjectID)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (srv *identityService) upsertFederated(ctx context.Context, userRepo repository.UserRepository, username, subject string) (*entity.User, error) {
	linked, err := userRepo.FindByExternalSubjectID(ctx, subject)
	if err == nil {
		return linked, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by external subject")
	}

	existing, err := userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		user := &entity.User{
			Username:          username,
			ExternalSubjectID: subject,
			Role:              entity.RoleUser,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create federated user")
		}
		srv.log(ctx).Info("Created federated user", slog.String("username", username))

		return user, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if existing.IsFederated() {
		return nil, domainerrors.ErrConflict.WrapMessage("username is linked to another provider account")
	}
	if !srv.linkExistingAccounts {
		return nil, domainerrors.ErrConflict.WrapMessage("username is registered to a local account")
	}

	existing.ExternalSubjectID = subject
	if err := userRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to link external subject")
	}
	srv.log(ctx).Info("Linked federated subject to local account", slog.Uint64("userID", uint64(existing.ID)))

	return existing, nil
}

func (srv *identityService) findBySubject(ctx context.Context, subject string) (*entity.User, error) {
	var result *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByExternalSubjectID(ctx, subject)
		result = user

		return err
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		// The duplicate was the username, not the subject.
		return nil, domainerrors.ErrConflict.WrapMessage("username already registered")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read federated user")
	}

	return result, nil
}
