package op

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/authhive/ciba/pkg/ciba"
)

// BackchannelAuthenticationConfig contains configuration for CIBA
// (Client Initiated Backchannel Authentication).
type BackchannelAuthenticationConfig struct {
	// Lifetime is the duration for which a request id is valid.
	// Default: 5 minutes.
	Lifetime time.Duration

	// PollInterval is the minimum time the client should wait between
	// polling requests. Default: 5 seconds.
	PollInterval time.Duration
}

var DefaultBackchannelAuthenticationConfig = BackchannelAuthenticationConfig{
	Lifetime:     5 * time.Minute,
	PollInterval: 5 * time.Second,
}

// RecommendedRequestIDBytes is the recommended number of bytes for request
// id generation (128 bit of entropy).
const RecommendedRequestIDBytes = 16

// NewRequestID generates a cryptographically secure request id with the
// specified number of bytes.
func NewRequestID(nBytes int) (string, error) {
	bytes := make([]byte, nBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// BackchannelAuthenticationSeed is the validated outcome of a backchannel
// authentication request, handed over by the request validation pipeline.
type BackchannelAuthenticationSeed struct {
	ClientID           string
	Subject            string
	Scopes             []string
	ResourceIndicators []string
	ACRValues          []string
	LoginHint          string
	BindingMessage     string

	// RequestedExpiry may shorten, but never extend, the configured lifetime.
	// Seconds; zero means the configured lifetime applies.
	RequestedExpiry int
}

// CreateLoginRequest creates and persists a pending backchannel
// authentication request. The client is re-resolved and the requested scopes
// and resources are validated against its policy before anything is stored.
func (s *BackchannelInteractionService) CreateLoginRequest(ctx context.Context, seed *BackchannelAuthenticationSeed) (*ciba.BackChannelAuthenticationRequest, error) {
	ctx, span := tracer.Start(ctx, "CreateLoginRequest")
	defer span.End()

	if seed == nil {
		return nil, ciba.ErrInvalidRequest().WithDescription("missing backchannel authentication request")
	}
	if len(seed.BindingMessage) > ciba.MaxBindingMessageLength {
		return nil, ciba.ErrInvalidRequest().WithDescription("binding_message must not exceed %d characters", ciba.MaxBindingMessageLength)
	}

	client, err := s.clients.FindEnabledClientByID(ctx, seed.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ciba.ErrInvalidClient().WithDescription("unknown or disabled client")
	}
	if !ValidateGrantType(client, ciba.GrantTypeCIBA) {
		return nil, ciba.ErrUnauthorizedClient().WithDescription("client missing grant type " + string(ciba.GrantTypeCIBA))
	}
	if _, err = s.resources.ValidateRequestedResources(ctx, client, seed.Scopes, seed.ResourceIndicators); err != nil {
		return nil, err
	}

	id, err := NewRequestID(RecommendedRequestIDBytes)
	if err != nil {
		return nil, ciba.ErrServerError().WithParent(err)
	}

	expires := time.Now().Add(s.config.Lifetime)
	if seed.RequestedExpiry > 0 {
		requested := time.Now().Add(time.Duration(seed.RequestedExpiry) * time.Second)
		if requested.Before(expires) {
			expires = requested
		}
	}

	request := &ciba.BackChannelAuthenticationRequest{
		ID:                          id,
		ClientID:                    seed.ClientID,
		Subject:                     seed.Subject,
		RequestedScopes:             seed.Scopes,
		RequestedResourceIndicators: seed.ResourceIndicators,
		ACRValues:                   seed.ACRValues,
		LoginHint:                   seed.LoginHint,
		BindingMessage:              seed.BindingMessage,
		Expires:                     expires,
		State:                       ciba.RequestStatePending,
	}
	if err = s.storage.StoreBackchannelRequest(ctx, request); err != nil {
		return nil, ciba.ErrServerError().WithParent(err)
	}
	return request, nil
}

// LoginRequestState checks the current state of a backchannel authentication
// request on behalf of the polling client and returns the appropriate error
// while the request is unresolved. The returned request is only usable for
// token issuance when the error is nil.
func (s *BackchannelInteractionService) LoginRequestState(ctx context.Context, clientID, id string) (*ciba.BackChannelAuthenticationRequest, error) {
	ctx, span := tracer.Start(ctx, "LoginRequestState")
	defer span.End()

	request, err := s.storage.BackchannelRequestByID(ctx, id)
	if errors.Is(err, context.DeadlineExceeded) {
		// client is polling too fast
		return nil, ciba.ErrSlowDown().WithParent(err)
	}
	if err != nil {
		return nil, ciba.ErrAccessDenied().WithParent(err)
	}
	if request == nil || request.ClientID != clientID {
		return nil, ciba.ErrAccessDenied().WithDescription("unknown backchannel authentication request")
	}
	if request.IsDenied() {
		return request, ciba.ErrAccessDenied().WithDescription("user denied the authentication request")
	}
	if request.IsExpired(time.Now()) {
		return request, ciba.ErrExpiredToken().WithDescription("the backchannel authentication request has expired")
	}
	if request.IsComplete() {
		return request, nil
	}
	return request, ciba.ErrAuthorizationPending()
}
