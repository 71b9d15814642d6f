package ciba

import (
	"strconv"
	"time"
)

// Claim types the interaction engine inspects on a principal.
const (
	ClaimAuthTime         = "auth_time"
	ClaimIdentityProvider = "idp"
	ClaimAMR              = "amr"
	ClaimACR              = "acr"
)

// UserPrincipal is an authenticated principal with its claim bag.
// Claims maps a claim type to one or more string values.
type UserPrincipal struct {
	Subject string
	Claims  map[string][]string
}

func NewUserPrincipal(subject string) *UserPrincipal {
	return &UserPrincipal{
		Subject: subject,
		Claims:  make(map[string][]string),
	}
}

// AppendClaim adds a value to the claim bag, keeping existing values.
func (u *UserPrincipal) AppendClaim(typ, value string) *UserPrincipal {
	if u.Claims == nil {
		u.Claims = make(map[string][]string)
	}
	u.Claims[typ] = append(u.Claims[typ], value)
	return u
}

// HasClaim reports whether at least one value of the given
// claim type is present.
func (u *UserPrincipal) HasClaim(typ string) bool {
	return u != nil && len(u.Claims[typ]) > 0
}

// ClaimValue returns the first value of the given claim type,
// or an empty string.
func (u *UserPrincipal) ClaimValue(typ string) string {
	if !u.HasClaim(typ) {
		return ""
	}
	return u.Claims[typ][0]
}

func (u *UserPrincipal) ClaimValues(typ string) []string {
	if u == nil {
		return nil
	}
	return u.Claims[typ]
}

// AuthTime parses the auth_time claim as unix seconds.
// The zero time is returned when the claim is absent or malformed.
func (u *UserPrincipal) AuthTime() time.Time {
	v := u.ClaimValue(ClaimAuthTime)
	if v == "" {
		return time.Time{}
	}
	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
