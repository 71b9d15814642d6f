package mock

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/authhive/ciba/pkg/ciba"
	"github.com/authhive/ciba/pkg/op"
)

func NewRequestStorage(t *testing.T) op.BackchannelRequestStorage {
	return NewMockBackchannelRequestStorage(gomock.NewController(t))
}

func NewRequestStorageExpectRequest(t *testing.T, request *ciba.BackChannelAuthenticationRequest) op.BackchannelRequestStorage {
	s := NewRequestStorage(t)
	m := s.(*MockBackchannelRequestStorage)
	m.EXPECT().BackchannelRequestByID(gomock.Any(), gomock.Any()).AnyTimes().Return(request, nil)
	return s
}

func NewRequestStorageExpectNotFound(t *testing.T) op.BackchannelRequestStorage {
	s := NewRequestStorage(t)
	m := s.(*MockBackchannelRequestStorage)
	m.EXPECT().BackchannelRequestByID(gomock.Any(), gomock.Any()).AnyTimes().Return(nil, nil)
	return s
}

func NewUserSessionExpect(t *testing.T, user *ciba.UserPrincipal, sessionID string) op.UserSession {
	s := NewMockUserSession(gomock.NewController(t))
	s.EXPECT().User(gomock.Any()).AnyTimes().Return(user, nil)
	s.EXPECT().SessionID(gomock.Any()).AnyTimes().Return(sessionID, nil)
	return s
}

// NewResourceValidatorPassthrough returns the requested scopes and resources
// as validated, unchanged.
func NewResourceValidatorPassthrough(t *testing.T) op.ResourceValidator {
	v := NewMockResourceValidator(gomock.NewController(t))
	v.EXPECT().ValidateRequestedResources(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ interface{}, _ op.Client, scopes, resources []string) (*op.ValidatedResources, error) {
			return &op.ValidatedResources{Scopes: scopes, Resources: resources}, nil
		})
	return v
}
