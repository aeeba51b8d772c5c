package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"seely/config"
	deliverycontext "seely/internal/delivery/context"
	"seely/internal/domain/entity"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/domain/service"
	"seely/internal/errors"
	"seely/internal/usecase"

	"go.uber.org/fx"
)

// Stages of a federated login, logged at debug level.
const (
	stageRedirectIssued  = "REDIRECT_ISSUED"
	stageTokenExchange   = "TOKEN_EXCHANGE"
	stageClaimsExtracted = "CLAIMS_EXTRACTED"
	stageIdentityLinked  = "IDENTITY_LINKED"
	stageSessionIssued   = "SESSION_ISSUED"
	stageError           = "ERROR"
)

// federationService implements the FederationUsecase interface.
type federationService struct {
	issuer       string
	provider     service.IdentityProvider
	secrets      service.FlowSecretGenerator
	linker       usecase.IdentityLinker
	tokenService service.TokenService
	logger       *slog.Logger
}

// FederationServiceParams holds dependencies for FederationService, injected by Fx.
type FederationServiceParams struct {
	fx.In

	Config       *config.Config
	Provider     service.IdentityProvider
	Secrets      service.FlowSecretGenerator
	Linker       usecase.IdentityLinker
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewFederationService is the constructor for federationService.
func NewFederationService(params FederationServiceParams) usecase.FederationUsecase {
	issuer := ""
	if params.Config != nil && params.Config.OAuth2 != nil {
		issuer = params.Config.OAuth2.Issuer
	}

	return &federationService{
		issuer:       issuer,
		provider:     params.Provider,
		secrets:      params.Secrets,
		linker:       params.Linker,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *federationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *federationService) stage(ctx context.Context, stage string, attrs ...any) {
	srv.log(ctx).Debug("Federated login", append([]any{slog.String("stage", stage)}, attrs...)...)
}

func (srv *federationService) fail(ctx context.Context, from string, err error) error {
	srv.stage(ctx, stageError, slog.String("from", from), slog.Any("error", err))

	return err
}

// BuildAuthorizationRequest generates a fresh state and PKCE verifier and the redirect URL carrying them.
func (srv *federationService) BuildAuthorizationRequest(ctx context.Context) (*entity.AuthorizationRequest, error) {
	state, err := srv.secrets.NewState()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}
	verifier := srv.secrets.NewCodeVerifier()

	authURL, err := srv.provider.AuthCodeURL(ctx, state, verifier)
	if err != nil {
		return nil, srv.fail(ctx, stageRedirectIssued, err)
	}
	srv.stage(ctx, stageRedirectIssued)

	return &entity.AuthorizationRequest{
		State:        state,
		CodeVerifier: verifier,
		URL:          authURL,
	}, nil
}

// HandleCallback validates the authorization response, redeems the code and issues a local session.
// The state check happens before any provider call.
func (srv *federationService) HandleCallback(ctx context.Context, input *usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	if input.ReturnedState == "" || input.StoredState == "" ||
		subtle.ConstantTimeCompare([]byte(input.ReturnedState), []byte(input.StoredState)) != 1 {
		return nil, srv.fail(ctx, stageRedirectIssued, domainerrors.ErrStateMismatch)
	}
	if input.Code == "" || input.CodeVerifier == "" {
		return nil, srv.fail(ctx, stageRedirectIssued, domainerrors.ErrStateMismatch.WrapMessage("missing code or code verifier"))
	}
	if input.Issuer != "" && srv.issuer != "" && input.Issuer != srv.issuer {
		return nil, srv.fail(ctx, stageRedirectIssued, domainerrors.ErrStateMismatch.WrapMessage("authorization response issuer mismatch"))
	}

	srv.stage(ctx, stageTokenExchange)
	identity, err := srv.provider.Exchange(ctx, input.Code, input.CodeVerifier)
	if err != nil {
		return nil, srv.fail(ctx, stageTokenExchange, err)
	}

	username := identity.Username()
	srv.stage(ctx, stageClaimsExtracted, slog.String("username", username))

	user, err := srv.linker.UpsertFederated(ctx, username, identity.Subject)
	if err != nil {
		return nil, srv.fail(ctx, stageIdentityLinked, err)
	}
	srv.stage(ctx, stageIdentityLinked, slog.Uint64("userID", uint64(user.ID)))

	tokens, err := srv.tokenService.Issue(service.Identity{Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, srv.fail(ctx, stageSessionIssued, errors.Wrap(err, "failed to issue tokens"))
	}
	srv.stage(ctx, stageSessionIssued)

	return &usecase.CallbackOutput{
		Tokens:       tokens,
		IDToken:      identity.RawIDToken,
		User:         user,
		SessionState: input.SessionState,
	}, nil
}

// BuildLogoutURL returns the provider end-session URL for idToken.
func (srv *federationService) BuildLogoutURL(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", errors.New("no id token")
	}

	return srv.provider.EndSessionURL(ctx, idToken)
}
