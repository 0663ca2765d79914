package ports

import "context"

// SecretStore holds account passwords under keys of the form
// "tmc/<host>/<username>".
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
