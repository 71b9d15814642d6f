package op

import "context"

// ValidatedResources is the outcome of validating requested scopes and
// resource indicators against a client's current policy.
type ValidatedResources struct {
	// Scopes the client may be granted out of the requested ones.
	Scopes []string

	// Resources are the resource indicators the issued tokens may target.
	Resources []string
}

// ResourceValidator applies the scope and resource-indicator policy of the
// authorization server. The interaction engine treats it as opaque: requests
// are revalidated through it at display and creation time, never trusted
// verbatim from an earlier validation.
type ResourceValidator interface {
	ValidateRequestedResources(ctx context.Context, client Client, scopes, resourceIndicators []string) (*ValidatedResources, error)
}
