package ciba

import (
	"slices"
	"time"
)

type GrantType string

// GrantTypeCIBA is the grant type for Client Initiated Backchannel Authentication.
const GrantTypeCIBA GrantType = "urn:openid:params:grant-type:ciba"

// MaxBindingMessageLength is the maximum length of a binding_message,
// per CIBA spec Section 7.1.
const MaxBindingMessageLength = 20

// RequestState is the lifecycle state of a backchannel authentication request.
// A request leaves RequestStatePending exactly once and never returns to it.
type RequestState int

const (
	RequestStatePending RequestState = iota
	RequestStateComplete
	RequestStateDenied
)

func (s RequestState) String() string {
	switch s {
	case RequestStatePending:
		return "pending"
	case RequestStateComplete:
		return "complete"
	case RequestStateDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// BackChannelAuthenticationRequest is the persisted record of a pending or
// resolved decoupled login attempt. It is created by the request validation
// pipeline, read and completed by the interaction engine, and consumed by
// token issuance.
type BackChannelAuthenticationRequest struct {
	// ID is the opaque internal identifier, the primary key for storage lookups.
	ID string

	ClientID string

	// Subject is the principal the client expects to authenticate.
	// It is finalized at completion.
	Subject string

	// Requested values are immutable after creation.
	RequestedScopes             []string
	RequestedResourceIndicators []string
	ACRValues                   []string

	LoginHint string

	// BindingMessage is displayed on both the consumption and the
	// authentication device so the user can correlate the approval
	// prompt with the request.
	BindingMessage string

	// Expires is the time after which the request can no longer be
	// completed or polled successfully.
	Expires time.Time

	State RequestState

	// The following fields are populated at completion.
	SessionID        string
	AuthorizedScopes []string
	Description      string
	AuthTime         time.Time
	AMR              []string

	// Version is managed by the storage implementation and used for
	// optimistic concurrency on updates. The engine passes it back
	// unchanged.
	Version uint64
}

// IsComplete reports whether a consent decision has been recorded.
// Once true, the record is immutable to the interaction engine.
func (r *BackChannelAuthenticationRequest) IsComplete() bool {
	return r.State == RequestStateComplete
}

func (r *BackChannelAuthenticationRequest) IsDenied() bool {
	return r.State == RequestStateDenied
}

// IsExpired reports whether the request has passed its expiry at the given
// time. A zero Expires never expires.
func (r *BackChannelAuthenticationRequest) IsExpired(now time.Time) bool {
	return !r.Expires.IsZero() && now.After(r.Expires)
}

// IsPending reports whether the request can still be acted on by a user.
func (r *BackChannelAuthenticationRequest) IsPending(now time.Time) bool {
	return r.State == RequestStatePending && !r.IsExpired(now)
}

// Clone returns a deep copy. Storage implementations hand out clones so
// callers never alias the stored record.
func (r *BackChannelAuthenticationRequest) Clone() *BackChannelAuthenticationRequest {
	c := *r
	c.RequestedScopes = slices.Clone(r.RequestedScopes)
	c.RequestedResourceIndicators = slices.Clone(r.RequestedResourceIndicators)
	c.ACRValues = slices.Clone(r.ACRValues)
	c.AuthorizedScopes = slices.Clone(r.AuthorizedScopes)
	c.AMR = slices.Clone(r.AMR)
	return &c
}

// CompleteBackchannelLoginRequest carries a consent decision into the
// interaction engine.
type CompleteBackchannelLoginRequest struct {
	// ID of the backchannel authentication request being resolved.
	ID string

	// Subject is set when completion is performed by an operator on behalf
	// of a user. When nil, the current session's principal is used.
	Subject *UserPrincipal

	// SessionID is only honored on the operator path (Subject set);
	// otherwise the current session's id is used.
	SessionID string

	// ConsentedScopes is the subset of the requested scopes the user
	// authorized. A nil slice means no scope decision is recorded here.
	ConsentedScopes []string

	// Description is a free-text note attached at completion,
	// e.g. a device name.
	Description string

	// Denied marks the request as denied by the user instead of complete.
	Denied bool
}
