package op

import "github.com/authhive/ciba/pkg/ciba"

// Client is a registered relying party as resolved by the ClientDirectory.
type Client interface {
	GetID() string
	ClientName() string
	GrantTypes() []ciba.GrantType
	IsScopeAllowed(scope string) bool
	LogoURI() string
}

func ValidateGrantType(c Client, grantType ciba.GrantType) bool {
	if c == nil {
		return false
	}
	for _, t := range c.GrantTypes() {
		if t == grantType {
			return true
		}
	}
	return false
}
