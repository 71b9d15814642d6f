package exampleop

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"

	"github.com/authhive/ciba/example/server/storage"
	"github.com/authhive/ciba/pkg/ciba"
	httphelper "github.com/authhive/ciba/pkg/http"
	"github.com/authhive/ciba/pkg/op"
)

const sessionCookieName = "ciba-example-session"

type sessionKey struct{}

type sessionData struct {
	UserID    string
	SessionID string
	AuthTime  int64
}

// sessionManager implements op.UserSession on top of an encrypted cookie.
// The signed-in user and session id travel in the request context, put
// there by the Middleware.
type sessionManager struct {
	cookie *httphelper.CookieHandler
	users  storage.UserStore
}

var _ op.UserSession = &sessionManager{}

func newSessionManager(users storage.UserStore) *sessionManager {
	return &sessionManager{
		cookie: httphelper.NewCookieHandler(
			securecookie.GenerateRandomKey(32), nil,
			httphelper.WithUnsecure(), // example only runs on plain http
		),
		users: users,
	}
}

// Middleware decodes the session cookie, if any, into the request context.
func (m *sessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := new(sessionData)
		if err := m.cookie.CheckCookie(r, sessionCookieName, data); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, data))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *sessionManager) signIn(w http.ResponseWriter, user *storage.User) error {
	return m.cookie.SetCookie(w, sessionCookieName, &sessionData{
		UserID:    user.ID,
		SessionID: uuid.NewString(),
		AuthTime:  time.Now().Unix(),
	})
}

func (m *sessionManager) User(ctx context.Context) (*ciba.UserPrincipal, error) {
	data, _ := ctx.Value(sessionKey{}).(*sessionData)
	if data == nil {
		return nil, nil
	}
	user := m.users.GetUserByID(data.UserID)
	if user == nil {
		return nil, nil
	}
	return user.Principal(time.Unix(data.AuthTime, 0)), nil
}

func (m *sessionManager) SessionID(ctx context.Context) (string, error) {
	data, _ := ctx.Value(sessionKey{}).(*sessionData)
	if data == nil {
		return "", nil
	}
	return data.SessionID, nil
}
