package op

import (
	"context"

	"github.com/authhive/ciba/pkg/ciba"
)

// BackchannelRequestStorage is the durable store for backchannel
// authentication requests, keyed by internal id and by subject.
// Typically implemented as a layer on top of your database;
// see example/server/storage for an in-memory implementation.
type BackchannelRequestStorage interface {
	// StoreBackchannelRequest persists a newly created request.
	// The storage owns expiry of stored records.
	StoreBackchannelRequest(ctx context.Context, request *ciba.BackChannelAuthenticationRequest) error

	// BackchannelRequestByID returns the request with the given internal id,
	// or nil without error when no such request exists.
	BackchannelRequestByID(ctx context.Context, id string) (*ciba.BackChannelAuthenticationRequest, error)

	// BackchannelRequestsBySubject returns all requests addressed to the
	// given subject, in any completion state and in no guaranteed order.
	BackchannelRequestsBySubject(ctx context.Context, subjectID string) ([]*ciba.BackChannelAuthenticationRequest, error)

	// UpdateBackchannelRequest persists the full request state keyed by id.
	// Implementations must serialize concurrent updates to the same id,
	// comparing the request's Version against the stored one and returning
	// an error matching ciba.ErrConcurrentUpdate() on a stale write.
	UpdateBackchannelRequest(ctx context.Context, id string, request *ciba.BackChannelAuthenticationRequest) error
}

// ClientDirectory resolves registered clients.
type ClientDirectory interface {
	// FindEnabledClientByID returns the enabled client with the given id,
	// or nil without error when the client is unknown or disabled;
	// the two cases are indistinguishable to the caller.
	FindEnabledClientByID(ctx context.Context, clientID string) (Client, error)
}

// UserSession exposes the authenticated principal and session id of the
// caller's browsing context, independent of any backchannel request.
type UserSession interface {
	// User returns the currently authenticated principal,
	// or nil without error when no user is signed in.
	User(ctx context.Context) (*ciba.UserPrincipal, error)

	// SessionID returns the current session identifier.
	SessionID(ctx context.Context) (string, error)
}
