package mock

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/authhive/ciba/pkg/ciba"
	"github.com/authhive/ciba/pkg/op"
)

func NewClient(t *testing.T) op.Client {
	return NewMockClient(gomock.NewController(t))
}

func NewClientExpectAny(t *testing.T, id string) op.Client {
	c := NewClient(t)
	m := c.(*MockClient)
	m.EXPECT().GetID().AnyTimes().Return(id)
	m.EXPECT().ClientName().AnyTimes().Return(id)
	m.EXPECT().GrantTypes().AnyTimes().Return([]ciba.GrantType{ciba.GrantTypeCIBA})
	m.EXPECT().IsScopeAllowed(gomock.Any()).AnyTimes().Return(true)
	m.EXPECT().LogoURI().AnyTimes().Return("")
	return c
}

func NewClientDirectory(t *testing.T) op.ClientDirectory {
	return NewMockClientDirectory(gomock.NewController(t))
}

// NewClientDirectoryExpectClient resolves every lookup to a single client
// supporting the CIBA grant.
func NewClientDirectoryExpectClient(t *testing.T, id string) op.ClientDirectory {
	d := NewClientDirectory(t)
	client := NewClientExpectAny(t, id)
	m := d.(*MockClientDirectory)
	m.EXPECT().FindEnabledClientByID(gomock.Any(), gomock.Any()).AnyTimes().Return(client, nil)
	return d
}

// NewClientDirectoryExpectNotFound resolves every lookup to "unknown or disabled".
func NewClientDirectoryExpectNotFound(t *testing.T) op.ClientDirectory {
	d := NewClientDirectory(t)
	m := d.(*MockClientDirectory)
	m.EXPECT().FindEnabledClientByID(gomock.Any(), gomock.Any()).AnyTimes().Return(nil, nil)
	return d
}
