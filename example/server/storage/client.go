package storage

import (
	"github.com/authhive/ciba/pkg/ciba"
)

// Client is the storage model of a registered relying party.
// It implements the op.Client interface.
type Client struct {
	id            string
	name          string
	grantTypes    []ciba.GrantType
	allowedScopes []string
	resources     []string
	logoURI       string
	disabled      bool
}

func (c *Client) GetID() string {
	return c.id
}

func (c *Client) ClientName() string {
	return c.name
}

func (c *Client) GrantTypes() []ciba.GrantType {
	return c.grantTypes
}

func (c *Client) LogoURI() string {
	return c.logoURI
}

func (c *Client) IsScopeAllowed(scope string) bool {
	for _, s := range c.allowedScopes {
		if s == scope {
			return true
		}
	}
	return false
}

// Disable marks the client as no longer enabled. Lookups through the
// directory then behave as if the client never existed.
func (c *Client) Disable() {
	c.disabled = true
}

// BackchannelClient creates a client registered for the CIBA grant.
func BackchannelClient(id, name string, allowedScopes, resources []string) *Client {
	return &Client{
		id:            id,
		name:          name,
		grantTypes:    []ciba.GrantType{ciba.GrantTypeCIBA},
		allowedScopes: allowedScopes,
		resources:     resources,
	}
}
