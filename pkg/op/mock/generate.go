package mock

//go:generate go install github.com/golang/mock/mockgen@v1.6.0
//go:generate mockgen -package mock -destination ./storage.mock.go github.com/authhive/ciba/pkg/op BackchannelRequestStorage
//go:generate mockgen -package mock -destination ./client.mock.go github.com/authhive/ciba/pkg/op Client,ClientDirectory
//go:generate mockgen -package mock -destination ./resource.mock.go github.com/authhive/ciba/pkg/op ResourceValidator
//go:generate mockgen -package mock -destination ./session.mock.go github.com/authhive/ciba/pkg/op UserSession
