// Package exampleop wires the backchannel interaction engine into a small
// demo server: a login page, a consent page listing the signed-in user's
// pending backchannel requests, and plain endpoints to create and poll
// requests in place of a full CIBA front.
package exampleop

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/zitadel/logging"
	"github.com/zitadel/schema"

	"github.com/authhive/ciba/example/server/storage"
	"github.com/authhive/ciba/pkg/ciba"
	httphelper "github.com/authhive/ciba/pkg/http"
	"github.com/authhive/ciba/pkg/op"
)

type server struct {
	storage     *storage.Storage
	sessions    *sessionManager
	interaction *op.BackchannelInteractionService
	decoder     *schema.Decoder
	logger      *slog.Logger
}

// SetupServer builds the demo router around the given storage.
func SetupServer(store *storage.Storage, logger *slog.Logger) http.Handler {
	sessions := newSessionManager(store.UserStore())
	s := &server{
		storage:  store,
		sessions: sessions,
		interaction: op.NewBackchannelInteractionService(
			store, store, store, sessions,
			op.WithLogger(logger),
		),
		decoder: schema.NewDecoder(),
		logger:  logger,
	}
	s.decoder.IgnoreUnknownKeys(true)

	router := chi.NewRouter()
	router.Use(cors.Default().Handler)
	router.Use(s.logMiddleware)
	router.Use(sessions.Middleware)

	router.Get("/login", s.loginHandler)
	router.Post("/login", s.checkLoginHandler)
	router.Get("/consent", s.consentHandler)
	router.Post("/consent", s.checkConsentHandler)

	// stand-ins for the CIBA endpoints, wire format omitted
	router.Post("/backchannel", s.createBackchannelHandler)
	router.Post("/backchannel/state", s.backchannelStateHandler)

	return router
}

func (s *server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(logging.ToContext(r.Context(), s.logger)))
		s.logger.InfoContext(r.Context(), "request", "method", r.Method, "path", r.URL.Path)
	})
}

type createBackchannelForm struct {
	ClientID        string   `schema:"client_id"`
	LoginHint       string   `schema:"login_hint"`
	Scopes          []string `schema:"scope"`
	Resources       []string `schema:"resource"`
	BindingMessage  string   `schema:"binding_message"`
	RequestedExpiry int      `schema:"requested_expiry"`
}

func (s *server) createBackchannelHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, ciba.ErrInvalidRequest().WithParent(err))
		return
	}
	form := new(createBackchannelForm)
	if err := s.decoder.Decode(form, r.PostForm); err != nil {
		writeError(w, ciba.ErrInvalidRequest().WithParent(err))
		return
	}

	// the example resolves the login hint as a username
	user := s.storage.UserStore().GetUserByUsername(form.LoginHint)
	if user == nil {
		writeError(w, ciba.ErrInvalidRequest().WithDescription("unknown login_hint"))
		return
	}

	request, err := s.interaction.CreateLoginRequest(r.Context(), &op.BackchannelAuthenticationSeed{
		ClientID:           form.ClientID,
		Subject:            user.ID,
		Scopes:             form.Scopes,
		ResourceIndicators: form.Resources,
		LoginHint:          form.LoginHint,
		BindingMessage:     form.BindingMessage,
		RequestedExpiry:    form.RequestedExpiry,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	httphelper.MarshalJSON(w, map[string]any{
		"auth_req_id": request.ID,
		"expires":     request.Expires,
	})
}

type backchannelStateForm struct {
	ClientID  string `schema:"client_id"`
	AuthReqID string `schema:"auth_req_id"`
}

func (s *server) backchannelStateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, ciba.ErrInvalidRequest().WithParent(err))
		return
	}
	form := new(backchannelStateForm)
	if err := s.decoder.Decode(form, r.PostForm); err != nil {
		writeError(w, ciba.ErrInvalidRequest().WithParent(err))
		return
	}

	request, err := s.interaction.LoginRequestState(r.Context(), form.ClientID, form.AuthReqID)
	if err != nil {
		writeError(w, err)
		return
	}
	// this is where token issuance would happen
	httphelper.MarshalJSON(w, map[string]any{
		"subject":           request.Subject,
		"authorized_scopes": request.AuthorizedScopes,
		"auth_time":         request.AuthTime,
	})
}

func writeError(w http.ResponseWriter, err error) {
	var cibaErr *ciba.Error
	if !errors.As(err, &cibaErr) {
		cibaErr = ciba.DefaultToServerError(err, err.Error())
	}
	httphelper.MarshalJSONWithStatus(w, cibaErr, http.StatusBadRequest)
}
