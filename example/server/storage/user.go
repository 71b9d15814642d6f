package storage

import (
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/authhive/ciba/pkg/ciba"
)

type User struct {
	ID                string
	Username          string
	Password          string
	FirstName         string
	LastName          string
	Email             string
	EmailVerified     bool
	PreferredLanguage language.Tag
}

// Principal builds the claim bag the interaction engine expects from a
// freshly authenticated user.
func (u *User) Principal(authTime time.Time) *ciba.UserPrincipal {
	return ciba.NewUserPrincipal(u.ID).
		AppendClaim(ciba.ClaimAuthTime, strconv.FormatInt(authTime.Unix(), 10)).
		AppendClaim(ciba.ClaimIdentityProvider, "local").
		AppendClaim(ciba.ClaimAMR, "pwd")
}

type UserStore interface {
	GetUserByID(string) *User
	GetUserByUsername(string) *User
}

type userStore struct {
	users map[string]*User
}

func NewUserStore() UserStore {
	return userStore{
		users: map[string]*User{
			"id1": {
				ID:                "id1",
				Username:          "test-user",
				Password:          "verysecure",
				FirstName:         "Test",
				LastName:          "User",
				Email:             "test-user@example.com",
				EmailVerified:     true,
				PreferredLanguage: language.German,
			},
			"id2": {
				ID:                "id2",
				Username:          "second-user",
				Password:          "alsosecure",
				FirstName:         "Second",
				LastName:          "User",
				Email:             "second-user@example.com",
				PreferredLanguage: language.English,
			},
		},
	}
}

func (u userStore) GetUserByID(id string) *User {
	return u.users[id]
}

func (u userStore) GetUserByUsername(username string) *User {
	for _, user := range u.users {
		if user.Username == username {
			return user
		}
	}
	return nil
}
