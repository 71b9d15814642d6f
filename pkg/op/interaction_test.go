package op_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authhive/ciba/pkg/ciba"
	"github.com/authhive/ciba/pkg/op"
	"github.com/authhive/ciba/pkg/op/mock"
)

type testStorage struct {
	requests  map[string]*ciba.BackChannelAuthenticationRequest
	getErr    error
	updateErr error
	updated   []*ciba.BackChannelAuthenticationRequest
}

func newTestStorage(requests ...*ciba.BackChannelAuthenticationRequest) *testStorage {
	s := &testStorage{requests: make(map[string]*ciba.BackChannelAuthenticationRequest)}
	for _, r := range requests {
		s.requests[r.ID] = r
	}
	return s
}

func (s *testStorage) StoreBackchannelRequest(_ context.Context, request *ciba.BackChannelAuthenticationRequest) error {
	s.requests[request.ID] = request.Clone()
	return nil
}

func (s *testStorage) BackchannelRequestByID(_ context.Context, id string) (*ciba.BackChannelAuthenticationRequest, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	r, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	return r.Clone(), nil
}

func (s *testStorage) BackchannelRequestsBySubject(_ context.Context, subjectID string) ([]*ciba.BackChannelAuthenticationRequest, error) {
	var out []*ciba.BackChannelAuthenticationRequest
	for _, r := range s.requests {
		if r.Subject == subjectID {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

func (s *testStorage) UpdateBackchannelRequest(_ context.Context, id string, request *ciba.BackChannelAuthenticationRequest) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.requests[id] = request.Clone()
	s.updated = append(s.updated, request.Clone())
	return nil
}

type testDirectory struct {
	clients map[string]op.Client
	err     error
}

func (d *testDirectory) FindEnabledClientByID(_ context.Context, clientID string) (op.Client, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.clients[clientID], nil
}

type testClient struct {
	id     string
	grants []ciba.GrantType
	scopes map[string]bool
}

func (c *testClient) GetID() string                { return c.id }
func (c *testClient) ClientName() string           { return c.id }
func (c *testClient) GrantTypes() []ciba.GrantType { return c.grants }
func (c *testClient) LogoURI() string              { return "" }
func (c *testClient) IsScopeAllowed(scope string) bool {
	return c.scopes == nil || c.scopes[scope]
}

type testValidator struct {
	err error
}

func (v *testValidator) ValidateRequestedResources(_ context.Context, _ op.Client, scopes, resources []string) (*op.ValidatedResources, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &op.ValidatedResources{Scopes: scopes, Resources: resources}, nil
}

type testSession struct {
	user      *ciba.UserPrincipal
	sessionID string
	userErr   error
}

func (s *testSession) User(context.Context) (*ciba.UserPrincipal, error) {
	return s.user, s.userErr
}

func (s *testSession) SessionID(context.Context) (string, error) {
	return s.sessionID, nil
}

func authenticatedUser(subject string) *ciba.UserPrincipal {
	return ciba.NewUserPrincipal(subject).
		AppendClaim(ciba.ClaimAuthTime, "1700000000").
		AppendClaim(ciba.ClaimIdentityProvider, "local").
		AppendClaim(ciba.ClaimAMR, "pwd")
}

func pendingRequest(id, clientID, subject string, scopes ...string) *ciba.BackChannelAuthenticationRequest {
	return &ciba.BackChannelAuthenticationRequest{
		ID:              id,
		ClientID:        clientID,
		Subject:         subject,
		RequestedScopes: scopes,
		BindingMessage:  "W4SCT",
		Expires:         time.Now().Add(time.Minute),
		State:           ciba.RequestStatePending,
	}
}

func newService(storage op.BackchannelRequestStorage, clients op.ClientDirectory, resources op.ResourceValidator, session op.UserSession) *op.BackchannelInteractionService {
	return op.NewBackchannelInteractionService(storage, clients, resources, session)
}

func enabledClients(ids ...string) *testDirectory {
	d := &testDirectory{clients: make(map[string]op.Client)}
	for _, id := range ids {
		d.clients[id] = &testClient{id: id, grants: []ciba.GrantType{ciba.GrantTypeCIBA}}
	}
	return d
}

func TestLoginRequestByID(t *testing.T) {
	request := pendingRequest("req-1", "client-1", "sub-1", "openid", "profile")
	request.RequestedResourceIndicators = []string{"urn:api:orders"}
	request.ACRValues = []string{"urn:acr:mfa"}

	t.Run("unknown id", func(t *testing.T) {
		s := newService(newTestStorage(), enabledClients("client-1"), &testValidator{}, &testSession{})
		got, err := s.LoginRequestByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("storage error", func(t *testing.T) {
		storage := newTestStorage(request)
		storage.getErr = errors.New("boom")
		s := newService(storage, enabledClients("client-1"), &testValidator{}, &testSession{})
		_, err := s.LoginRequestByID(context.Background(), "req-1")
		require.Error(t, err)
	})

	t.Run("client disabled", func(t *testing.T) {
		s := newService(newTestStorage(request), mock.NewClientDirectoryExpectNotFound(t), &testValidator{}, &testSession{})
		got, err := s.LoginRequestByID(context.Background(), "req-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("validator failure propagates", func(t *testing.T) {
		wantErr := errors.New("scope no longer allowed")
		s := newService(newTestStorage(request), enabledClients("client-1"), &testValidator{err: wantErr}, &testSession{})
		_, err := s.LoginRequestByID(context.Background(), "req-1")
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("success", func(t *testing.T) {
		s := newService(newTestStorage(request), enabledClients("client-1"), mock.NewResourceValidatorPassthrough(t), &testSession{})
		got, err := s.LoginRequestByID(context.Background(), "req-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "req-1", got.ID)
		assert.Equal(t, "sub-1", got.Subject)
		assert.Equal(t, "W4SCT", got.BindingMessage)
		assert.Equal(t, []string{"urn:acr:mfa"}, got.ACRValues)
		assert.Equal(t, []string{"urn:api:orders"}, got.RequestedResourceIndicators)
		require.NotNil(t, got.Client)
		assert.Equal(t, "client-1", got.Client.GetID())
		require.NotNil(t, got.ValidatedResources)
		assert.Equal(t, []string{"openid", "profile"}, got.ValidatedResources.Scopes)
	})
}

func TestPendingLoginRequestsForCurrentUser(t *testing.T) {
	t.Run("no authenticated session", func(t *testing.T) {
		s := newService(newTestStorage(), enabledClients(), &testValidator{}, &testSession{})
		got, err := s.PendingLoginRequestsForCurrentUser(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("session error propagates", func(t *testing.T) {
		wantErr := errors.New("session backend down")
		s := newService(newTestStorage(), enabledClients(), &testValidator{}, &testSession{userErr: wantErr})
		_, err := s.PendingLoginRequestsForCurrentUser(context.Background())
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("complete and expired requests are filtered", func(t *testing.T) {
		pending := pendingRequest("req-pending", "client-1", "sub-1", "openid")
		complete := pendingRequest("req-complete", "client-1", "sub-1", "openid")
		complete.State = ciba.RequestStateComplete
		expired := pendingRequest("req-expired", "client-1", "sub-1", "openid")
		expired.Expires = time.Now().Add(-time.Minute)
		denied := pendingRequest("req-denied", "client-1", "sub-1", "openid")
		denied.State = ciba.RequestStateDenied
		other := pendingRequest("req-other", "client-1", "sub-2", "openid")

		s := newService(
			newTestStorage(pending, complete, expired, denied, other),
			enabledClients("client-1"),
			&testValidator{},
			&testSession{user: authenticatedUser("sub-1")},
		)
		got, err := s.PendingLoginRequestsForCurrentUser(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "req-pending", got[0].ID)
	})

	t.Run("broken request does not hide others", func(t *testing.T) {
		valid := pendingRequest("req-valid", "client-1", "sub-1", "openid")
		stale := pendingRequest("req-stale", "client-gone", "sub-1", "openid")

		s := newService(
			newTestStorage(valid, stale),
			enabledClients("client-1"),
			&testValidator{},
			&testSession{user: authenticatedUser("sub-1")},
		)
		got, err := s.PendingLoginRequestsForCurrentUser(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "req-valid", got[0].ID)
	})
}

func TestCompleteLoginRequest(t *testing.T) {
	sessionUser := authenticatedUser("sub-1")

	tests := []struct {
		name       string
		request    *ciba.BackChannelAuthenticationRequest
		completion *ciba.CompleteBackchannelLoginRequest
		session    *testSession
		wantErr    *ciba.Error
	}{
		{
			name:    "nil completion",
			request: pendingRequest("req-1", "client-1", "sub-1", "openid"),
			session: &testSession{user: sessionUser, sessionID: "sid-1"},
			wantErr: ciba.ErrInvalidRequest(),
		},
		{
			name:       "unknown id",
			request:    pendingRequest("req-1", "client-1", "sub-1", "openid"),
			completion: &ciba.CompleteBackchannelLoginRequest{ID: "nope"},
			session:    &testSession{user: sessionUser, sessionID: "sid-1"},
			wantErr:    ciba.ErrInvalidRequestID(),
		},
		{
			name: "already complete",
			request: func() *ciba.BackChannelAuthenticationRequest {
				r := pendingRequest("req-1", "client-1", "sub-1", "openid")
				r.State = ciba.RequestStateComplete
				return r
			}(),
			completion: &ciba.CompleteBackchannelLoginRequest{ID: "req-1", ConsentedScopes: []string{"openid"}},
			session:    &testSession{user: sessionUser, sessionID: "sid-1"},
			wantErr:    ciba.ErrAlreadyComplete(),
		},
		{
			name: "already denied",
			request: func() *ciba.BackChannelAuthenticationRequest {
				r := pendingRequest("req-1", "client-1", "sub-1", "openid")
				r.State = ciba.RequestStateDenied
				return r
			}(),
			completion: &ciba.CompleteBackchannelLoginRequest{ID: "req-1"},
			session:    &testSession{user: sessionUser, sessionID: "sid-1"},
			wantErr:    ciba.ErrAlreadyComplete(),
		},
		{
			name: "expired",
			request: func() *ciba.BackChannelAuthenticationRequest {
				r := pendingRequest("req-1", "client-1", "sub-1", "openid")
				r.Expires = time.Now().Add(-time.Second)
				return r
			}(),
			completion: &ciba.CompleteBackchannelLoginRequest{ID: "req-1"},
			session:    &testSession{user: sessionUser, sessionID: "sid-1"},
			wantErr:    ciba.ErrExpiredToken(),
		},
		{
			name:       "no subject at all",
			request:    pendingRequest("req-1", "client-1", "sub-1", "openid"),
			completion: &ciba.CompleteBackchannelLoginRequest{ID: "req-1"},
			session:    &testSession{},
			wantErr:    ciba.ErrInvalidSubject(),
		},
		{
			name:       "session subject mismatch",
			request:    pendingRequest("req-1", "client-1", "sub-1", "openid"),
			completion: &ciba.CompleteBackchannelLoginRequest{ID: "req-1"},
			session:    &testSession{user: authenticatedUser("sub-2"), sessionID: "sid-2"},
			wantErr:    ciba.ErrSubjectMismatch(),
		},
		{
			name:    "explicit subject mismatch",
			request: pendingRequest("req-1", "client-1", "sub-1", "openid"),
			completion: &ciba.CompleteBackchannelLoginRequest{
				ID:      "req-1",
				Subject: authenticatedUser("sub-2"),
			},
			session: &testSession{},
			wantErr: ciba.ErrSubjectMismatch(),
		},
		{
			name:       "missing auth_time claim",
			request:    pendingRequest("req-1", "client-1", "sub-1", "openid"),
			completion: &ciba.CompleteBackchannelLoginRequest{ID: "req-1"},
			session: &testSession{
				user: ciba.NewUserPrincipal("sub-1").AppendClaim(ciba.ClaimIdentityProvider, "local"),
			},
			wantErr: ciba.ErrMissingAuthTimeClaim(),
		},
		{
			name:       "missing idp claim",
			request:    pendingRequest("req-1", "client-1", "sub-1", "openid"),
			completion: &ciba.CompleteBackchannelLoginRequest{ID: "req-1"},
			session: &testSession{
				user: ciba.NewUserPrincipal("sub-1").AppendClaim(ciba.ClaimAuthTime, "1700000000"),
			},
			wantErr: ciba.ErrMissingIDPClaim(),
		},
		{
			name:    "consented scope not requested",
			request: pendingRequest("req-1", "client-1", "sub-1", "openid", "profile"),
			completion: &ciba.CompleteBackchannelLoginRequest{
				ID:              "req-1",
				ConsentedScopes: []string{"openid", "email"},
			},
			session: &testSession{user: sessionUser, sessionID: "sid-1"},
			wantErr: ciba.ErrConsentExceedsRequested(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newTestStorage(tt.request)
			s := newService(storage, enabledClients("client-1"), &testValidator{}, tt.session)

			err := s.CompleteLoginRequest(context.Background(), tt.completion)
			require.ErrorIs(t, err, tt.wantErr)

			// a failed completion must leave the store untouched
			assert.Empty(t, storage.updated)
			stored := storage.requests[tt.request.ID]
			assert.Equal(t, tt.request.State, stored.State)
			assert.Empty(t, stored.AuthorizedScopes)
		})
	}

	t.Run("success narrows scopes", func(t *testing.T) {
		request := pendingRequest("req-1", "client-1", "sub-1", "openid", "profile")
		storage := newTestStorage(request)
		s := newService(storage, enabledClients("client-1"), &testValidator{}, &testSession{user: sessionUser, sessionID: "sid-1"})

		err := s.CompleteLoginRequest(context.Background(), &ciba.CompleteBackchannelLoginRequest{
			ID:              "req-1",
			ConsentedScopes: []string{"openid"},
			Description:     "kitchen tablet",
		})
		require.NoError(t, err)

		stored := storage.requests["req-1"]
		assert.True(t, stored.IsComplete())
		assert.Equal(t, []string{"openid"}, stored.AuthorizedScopes)
		assert.Subset(t, stored.RequestedScopes, stored.AuthorizedScopes)
		assert.Equal(t, "sub-1", stored.Subject)
		assert.Equal(t, "sid-1", stored.SessionID)
		assert.Equal(t, "kitchen tablet", stored.Description)
		assert.Equal(t, []string{"pwd"}, stored.AMR)
		assert.Equal(t, time.Unix(1700000000, 0), stored.AuthTime)
	})

	t.Run("denied", func(t *testing.T) {
		request := pendingRequest("req-1", "client-1", "sub-1", "openid")
		storage := newTestStorage(request)
		s := newService(storage, enabledClients("client-1"), &testValidator{}, &testSession{user: sessionUser, sessionID: "sid-1"})

		err := s.CompleteLoginRequest(context.Background(), &ciba.CompleteBackchannelLoginRequest{
			ID:     "req-1",
			Denied: true,
		})
		require.NoError(t, err)
		assert.True(t, storage.requests["req-1"].IsDenied())
	})

	t.Run("operator path keeps supplied session id", func(t *testing.T) {
		request := pendingRequest("req-1", "client-1", "sub-1", "openid")
		storage := newTestStorage(request)
		// the live session belongs to someone else entirely
		s := newService(storage, enabledClients("client-1"), &testValidator{}, mock.NewUserSessionExpect(t, authenticatedUser("admin"), "sid-admin"))

		err := s.CompleteLoginRequest(context.Background(), &ciba.CompleteBackchannelLoginRequest{
			ID:        "req-1",
			Subject:   authenticatedUser("sub-1"),
			SessionID: "sid-operator",
		})
		require.NoError(t, err)
		assert.Equal(t, "sid-operator", storage.requests["req-1"].SessionID)
	})

	t.Run("concurrent update conflict surfaces", func(t *testing.T) {
		request := pendingRequest("req-1", "client-1", "sub-1", "openid")
		storage := newTestStorage(request)
		storage.updateErr = ciba.ErrConcurrentUpdate()
		s := newService(storage, enabledClients("client-1"), &testValidator{}, &testSession{user: sessionUser, sessionID: "sid-1"})

		err := s.CompleteLoginRequest(context.Background(), &ciba.CompleteBackchannelLoginRequest{ID: "req-1"})
		require.ErrorIs(t, err, ciba.ErrConcurrentUpdate())
	})
}
