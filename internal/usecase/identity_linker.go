package usecase

import (
	"context"

	"seely/internal/domain/entity"
)

// IdentityLinker reconciles local and federated identities into one user record.
type IdentityLinker interface {
	// UpsertLocal creates the local account or attaches a password to a federated-only one.
	UpsertLocal(ctx context.Context, username, passwordHash string, role entity.Role) (*entity.User, error)

	// UpsertFederated returns the user linked to externalSubjectID, creating or linking it on first login.
	UpsertFederated(ctx context.Context, username, externalSubjectID string) (*entity.User, error)
}
