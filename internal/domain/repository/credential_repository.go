// Package repository defines the persistence contracts of the domain layer.
// Concrete implementations live under internal/infra.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// CredentialKey is the fixed secret-store slot holding the bearer credential.
// There is never more than one credential at a time.
const CredentialKey = "auth_token"

// ErrCredentialNotFound is returned by Get when the slot is empty. An empty
// slot is an expected state, not a failure: the request pipeline proceeds
// without an Authorization header when it sees this sentinel.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository is the secure, single-slot store for the bearer
// credential. Set overwrites any prior value; Delete is idempotent.
type CredentialRepository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
