package storage

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/authhive/ciba/pkg/ciba"
	"github.com/authhive/ciba/pkg/op"
)

var (
	_ op.BackchannelRequestStorage = &Storage{}
	_ op.ClientDirectory           = &Storage{}
	_ op.ResourceValidator         = &Storage{}
)

// Storage implements the collaborator interfaces of the interaction engine.
// Typically you would implement these as a layer on top of your database;
// for simplicity this example keeps everything in-memory. Request records
// expire with their TTL, so abandoned requests vanish without a reaper.
type Storage struct {
	lock         sync.Mutex
	requests     *cache.Cache
	subjectIndex map[string][]string
	clients      map[string]*Client
	userStore    UserStore
}

func NewStorage(userStore UserStore, clients ...*Client) *Storage {
	s := &Storage{
		requests:     cache.New(5*time.Minute, 10*time.Minute),
		subjectIndex: make(map[string][]string),
		clients:      make(map[string]*Client),
		userStore:    userStore,
	}
	for _, c := range clients {
		s.clients[c.id] = c
	}
	return s
}

func (s *Storage) UserStore() UserStore {
	return s.userStore
}

func (s *Storage) StoreBackchannelRequest(_ context.Context, request *ciba.BackChannelAuthenticationRequest) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	stored := request.Clone()
	stored.Version = 1
	s.requests.Set(request.ID, stored, s.requestTTL(stored))
	if request.Subject != "" {
		s.subjectIndex[request.Subject] = append(s.subjectIndex[request.Subject], request.ID)
	}
	return nil
}

func (s *Storage) BackchannelRequestByID(_ context.Context, id string) (*ciba.BackChannelAuthenticationRequest, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	request, ok := s.get(id)
	if !ok {
		return nil, nil
	}
	return request.Clone(), nil
}

func (s *Storage) BackchannelRequestsBySubject(_ context.Context, subjectID string) ([]*ciba.BackChannelAuthenticationRequest, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var out []*ciba.BackChannelAuthenticationRequest
	live := s.subjectIndex[subjectID][:0]
	for _, id := range s.subjectIndex[subjectID] {
		request, ok := s.get(id)
		if !ok {
			// expired from the cache, drop the index entry
			continue
		}
		live = append(live, id)
		out = append(out, request.Clone())
	}
	s.subjectIndex[subjectID] = live
	return out, nil
}

func (s *Storage) UpdateBackchannelRequest(_ context.Context, id string, request *ciba.BackChannelAuthenticationRequest) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	existing, ok := s.get(id)
	if !ok {
		return ciba.ErrInvalidRequestID().WithDescription("backchannel request %s not found", id)
	}
	if existing.Version != request.Version {
		return ciba.ErrConcurrentUpdate().WithDescription("backchannel request %s was updated concurrently", id)
	}

	stored := request.Clone()
	stored.Version++
	s.requests.Set(id, stored, s.requestTTL(stored))
	if stored.Subject != "" && !slices.Contains(s.subjectIndex[stored.Subject], id) {
		s.subjectIndex[stored.Subject] = append(s.subjectIndex[stored.Subject], id)
	}
	return nil
}

// get must be called with the lock held.
func (s *Storage) get(id string) (*ciba.BackChannelAuthenticationRequest, bool) {
	v, ok := s.requests.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*ciba.BackChannelAuthenticationRequest), true
}

func (s *Storage) requestTTL(request *ciba.BackChannelAuthenticationRequest) time.Duration {
	if request.Expires.IsZero() {
		return cache.NoExpiration
	}
	ttl := time.Until(request.Expires)
	if request.IsComplete() {
		// keep resolved requests around long enough for the client to
		// collect tokens, even when approval happened close to expiry
		const collectWindow = time.Minute
		if ttl < collectWindow {
			ttl = collectWindow
		}
	}
	if ttl <= 0 {
		ttl = time.Millisecond
	}
	return ttl
}

func (s *Storage) FindEnabledClientByID(_ context.Context, clientID string) (op.Client, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	client, ok := s.clients[clientID]
	if !ok || client.disabled {
		return nil, nil
	}
	return client, nil
}

func (s *Storage) ValidateRequestedResources(_ context.Context, client op.Client, scopes, resourceIndicators []string) (*op.ValidatedResources, error) {
	for _, scope := range scopes {
		if !client.IsScopeAllowed(scope) {
			return nil, ciba.ErrInvalidRequest().WithDescription("scope %q not allowed for client %s", scope, client.GetID())
		}
	}

	s.lock.Lock()
	registered := s.clients[client.GetID()]
	s.lock.Unlock()

	validated := &op.ValidatedResources{Scopes: slices.Clone(scopes)}
	for _, resource := range resourceIndicators {
		if registered == nil || !slices.Contains(registered.resources, resource) {
			return nil, ciba.ErrInvalidRequest().WithDescription("resource %q not registered for client %s", resource, client.GetID())
		}
		validated.Resources = append(validated.Resources, resource)
	}
	return validated, nil
}

func (s *Storage) Health(context.Context) error {
	return nil
}
