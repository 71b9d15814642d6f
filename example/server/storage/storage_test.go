package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authhive/ciba/pkg/ciba"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	return NewStorage(
		NewUserStore(),
		BackchannelClient("web", "Web", []string{"openid", "profile"}, []string{"urn:example:api"}),
	)
}

func storedRequest(id, subject string) *ciba.BackChannelAuthenticationRequest {
	return &ciba.BackChannelAuthenticationRequest{
		ID:              id,
		ClientID:        "web",
		Subject:         subject,
		RequestedScopes: []string{"openid"},
		Expires:         time.Now().Add(time.Minute),
		State:           ciba.RequestStatePending,
	}
}

func TestStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, s.StoreBackchannelRequest(ctx, storedRequest("req-1", "id1")))

	got, err := s.BackchannelRequestByID(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(1), got.Version)

	missing, err := s.BackchannelRequestByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	bySubject, err := s.BackchannelRequestsBySubject(ctx, "id1")
	require.NoError(t, err)
	assert.Len(t, bySubject, 1)
}

func TestStorage_UpdateVersioning(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	require.NoError(t, s.StoreBackchannelRequest(ctx, storedRequest("req-1", "id1")))

	first, err := s.BackchannelRequestByID(ctx, "req-1")
	require.NoError(t, err)
	second, err := s.BackchannelRequestByID(ctx, "req-1")
	require.NoError(t, err)

	first.State = ciba.RequestStateComplete
	require.NoError(t, s.UpdateBackchannelRequest(ctx, "req-1", first))

	// the second reader holds a stale version now
	second.State = ciba.RequestStateDenied
	err = s.UpdateBackchannelRequest(ctx, "req-1", second)
	require.ErrorIs(t, err, ciba.ErrConcurrentUpdate())

	got, err := s.BackchannelRequestByID(ctx, "req-1")
	require.NoError(t, err)
	assert.True(t, got.IsComplete())
	assert.Equal(t, uint64(2), got.Version)
}

func TestStorage_UpdateUnknownID(t *testing.T) {
	s := newTestStorage(t)
	err := s.UpdateBackchannelRequest(context.Background(), "nope", storedRequest("nope", "id1"))
	require.ErrorIs(t, err, ciba.ErrInvalidRequestID())
}

func TestStorage_ExpiredRequestVanishes(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	request := storedRequest("req-short", "id1")
	request.Expires = time.Now().Add(10 * time.Millisecond)
	require.NoError(t, s.StoreBackchannelRequest(ctx, request))

	time.Sleep(20 * time.Millisecond)

	got, err := s.BackchannelRequestByID(ctx, "req-short")
	require.NoError(t, err)
	assert.Nil(t, got)

	bySubject, err := s.BackchannelRequestsBySubject(ctx, "id1")
	require.NoError(t, err)
	assert.Empty(t, bySubject)
}

func TestStorage_FindEnabledClientByID(t *testing.T) {
	ctx := context.Background()
	disabled := BackchannelClient("old", "Old", []string{"openid"}, nil)
	disabled.Disable()
	s := NewStorage(NewUserStore(),
		BackchannelClient("web", "Web", []string{"openid"}, nil),
		disabled,
	)

	client, err := s.FindEnabledClientByID(ctx, "web")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "web", client.GetID())

	for _, id := range []string{"old", "unknown"} {
		client, err = s.FindEnabledClientByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, client)
	}
}

func TestStorage_ValidateRequestedResources(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	client, err := s.FindEnabledClientByID(ctx, "web")
	require.NoError(t, err)

	t.Run("allowed", func(t *testing.T) {
		got, err := s.ValidateRequestedResources(ctx, client, []string{"openid", "profile"}, []string{"urn:example:api"})
		require.NoError(t, err)
		assert.Equal(t, []string{"openid", "profile"}, got.Scopes)
		assert.Equal(t, []string{"urn:example:api"}, got.Resources)
	})

	t.Run("scope not allowed", func(t *testing.T) {
		_, err := s.ValidateRequestedResources(ctx, client, []string{"openid", "admin"}, nil)
		require.ErrorIs(t, err, ciba.ErrInvalidRequest())
	})

	t.Run("resource not registered", func(t *testing.T) {
		_, err := s.ValidateRequestedResources(ctx, client, []string{"openid"}, []string{"urn:other:api"})
		require.ErrorIs(t, err, ciba.ErrInvalidRequest())
	})
}
