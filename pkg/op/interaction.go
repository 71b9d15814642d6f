package op

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/authhive/ciba/internal/otel"
	"github.com/authhive/ciba/pkg/ciba"
)

var tracer = otel.Tracer("github.com/authhive/ciba/pkg/op")

// BackchannelUserLoginRequest is a point-in-time materialization of a stored
// backchannel request for display and approval: the immutable request fields
// combined with a freshly resolved client and freshly revalidated resources.
// It is never persisted.
type BackchannelUserLoginRequest struct {
	ID                          string
	Subject                     string
	BindingMessage              string
	ACRValues                   []string
	RequestedResourceIndicators []string

	Client             Client
	ValidatedResources *ValidatedResources
}

// BackchannelInteractionService orchestrates the user-facing side of CIBA:
// materializing pending login requests for display, enumerating the requests
// a signed-in user can act on, and binding a consent decision back to the
// original request.
//
// The service holds no mutable state of its own; all coordination happens
// through the storage.
type BackchannelInteractionService struct {
	storage   BackchannelRequestStorage
	clients   ClientDirectory
	resources ResourceValidator
	session   UserSession

	config BackchannelAuthenticationConfig
	logger *slog.Logger
}

type InteractionOption func(*BackchannelInteractionService)

func WithLogger(logger *slog.Logger) InteractionOption {
	return func(s *BackchannelInteractionService) {
		s.logger = logger
	}
}

func WithConfig(config BackchannelAuthenticationConfig) InteractionOption {
	return func(s *BackchannelInteractionService) {
		s.config = config
	}
}

func NewBackchannelInteractionService(
	storage BackchannelRequestStorage,
	clients ClientDirectory,
	resources ResourceValidator,
	session UserSession,
	opts ...InteractionOption,
) *BackchannelInteractionService {
	s := &BackchannelInteractionService{
		storage:   storage,
		clients:   clients,
		resources: resources,
		session:   session,
		config:    DefaultBackchannelAuthenticationConfig,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoginRequestByID returns a display-ready login request for the given
// internal id. It returns nil without error when the request does not exist
// or its client is no longer enabled: a stale or revoked client must not
// leak a displayable request. A failure of the resource revalidation is
// returned as an error, since it signals a request that is no longer
// satisfiable under current client policy.
//
// The method has no side effects and is safe to call repeatedly, also on
// completed requests.
func (s *BackchannelInteractionService) LoginRequestByID(ctx context.Context, id string) (*BackchannelUserLoginRequest, error) {
	ctx, span := tracer.Start(ctx, "LoginRequestByID")
	defer span.End()

	request, err := s.storage.BackchannelRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	return s.materializeLoginRequest(ctx, request)
}

// PendingLoginRequestsForCurrentUser returns all pending backchannel
// requests addressed to the currently signed-in user, materialized the same
// way as LoginRequestByID. Without an authenticated session the result is
// empty, not an error. A request that fails materialization is skipped, so
// one broken request does not hide the user's other pending requests.
// Ordering is not guaranteed.
func (s *BackchannelInteractionService) PendingLoginRequestsForCurrentUser(ctx context.Context) ([]*BackchannelUserLoginRequest, error) {
	ctx, span := tracer.Start(ctx, "PendingLoginRequestsForCurrentUser")
	defer span.End()

	user, err := s.session.User(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Subject == "" {
		return nil, nil
	}

	requests, err := s.storage.BackchannelRequestsBySubject(ctx, user.Subject)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pending := make([]*BackchannelUserLoginRequest, 0, len(requests))
	for _, request := range requests {
		if !request.IsPending(now) {
			continue
		}
		login, err := s.materializeLoginRequest(ctx, request)
		if err != nil || login == nil {
			if err != nil {
				s.logger.DebugContext(ctx, "skipping backchannel request",
					"id", request.ID, "client_id", request.ClientID, "error", err)
			}
			continue
		}
		pending = append(pending, login)
	}
	return pending, nil
}

// CompleteLoginRequest records a consent decision on a pending request and
// persists it through a single storage update. Every failure is returned as
// a distinguishable *ciba.Error; completion failures are never swallowed.
func (s *BackchannelInteractionService) CompleteLoginRequest(ctx context.Context, completion *ciba.CompleteBackchannelLoginRequest) error {
	ctx, span := tracer.Start(ctx, "CompleteLoginRequest")
	defer span.End()

	if completion == nil {
		return ciba.ErrInvalidRequest().WithDescription("missing completion request")
	}

	request, err := s.storage.BackchannelRequestByID(ctx, completion.ID)
	if err != nil {
		return err
	}
	if request == nil {
		return ciba.ErrInvalidRequestID().WithDescription("invalid backchannel authentication request id")
	}
	if !request.IsPending(time.Now()) {
		if request.IsExpired(time.Now()) {
			return ciba.ErrExpiredToken().WithDescription("backchannel authentication request expired")
		}
		return ciba.ErrAlreadyComplete().WithDescription("request already %s", request.State)
	}

	subject := completion.Subject
	if subject == nil {
		if subject, err = s.session.User(ctx); err != nil {
			return err
		}
	}
	if subject == nil || subject.Subject == "" {
		return ciba.ErrInvalidSubject().WithDescription("invalid subject")
	}
	if subject.Subject != request.Subject {
		return ciba.ErrSubjectMismatch().WithDescription("subject does not match backchannel authentication request")
	}
	if !subject.HasClaim(ciba.ClaimAuthTime) {
		return ciba.ErrMissingAuthTimeClaim().WithDescription("subject is missing the %s claim", ciba.ClaimAuthTime)
	}
	if !subject.HasClaim(ciba.ClaimIdentityProvider) {
		return ciba.ErrMissingIDPClaim().WithDescription("subject is missing the %s claim", ciba.ClaimIdentityProvider)
	}
	for _, scope := range completion.ConsentedScopes {
		if !slices.Contains(request.RequestedScopes, scope) {
			return ciba.ErrConsentExceedsRequested().WithDescription("scope %q was not requested", scope)
		}
	}

	sessionID := completion.SessionID
	if completion.Subject == nil {
		// self-service path: the session id always comes from the live session
		if sessionID, err = s.session.SessionID(ctx); err != nil {
			return err
		}
	}

	request.State = ciba.RequestStateComplete
	if completion.Denied {
		request.State = ciba.RequestStateDenied
	}
	request.Subject = subject.Subject
	request.SessionID = sessionID
	request.AuthorizedScopes = completion.ConsentedScopes
	request.Description = completion.Description
	request.AuthTime = subject.AuthTime()
	request.AMR = subject.ClaimValues(ciba.ClaimAMR)

	if err = s.storage.UpdateBackchannelRequest(ctx, request.ID, request); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "backchannel login request resolved",
		"id", request.ID, "client_id", request.ClientID, "state", request.State)
	return nil
}

// materializeLoginRequest re-resolves the client and revalidates the
// requested scopes and resources against its current policy, then projects
// the stored request into the view. A missing or disabled client yields
// (nil, nil).
func (s *BackchannelInteractionService) materializeLoginRequest(ctx context.Context, request *ciba.BackChannelAuthenticationRequest) (*BackchannelUserLoginRequest, error) {
	client, err := s.clients.FindEnabledClientByID(ctx, request.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}

	validated, err := s.resources.ValidateRequestedResources(ctx, client, request.RequestedScopes, request.RequestedResourceIndicators)
	if err != nil {
		return nil, err
	}

	return &BackchannelUserLoginRequest{
		ID:                          request.ID,
		Subject:                     request.Subject,
		BindingMessage:              request.BindingMessage,
		ACRValues:                   slices.Clone(request.ACRValues),
		RequestedResourceIndicators: slices.Clone(request.RequestedResourceIndicators),
		Client:                      client,
		ValidatedResources:          validated,
	}, nil
}
