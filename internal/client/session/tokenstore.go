package session

import "context"

// credentialKey is the fixed key the bearer credential lives under in the
// local store.
const credentialKey = "credential"

// KV is the slice of the local store the session layer needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// TokenStore owns the persisted bearer credential. The token is opaque:
// it is stored, attached to requests and destroyed, never inspected.
// TokenStore satisfies api.TokenProvider.
type TokenStore struct {
	kv KV
}

func NewTokenStore(kv KV) *TokenStore {
	return &TokenStore{kv: kv}
}

// Token returns the stored credential, or "" when none is stored.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	v, err := s.kv.Get(ctx, credentialKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Set persists the credential so it survives restarts.
func (s *TokenStore) Set(ctx context.Context, token string) error {
	return s.kv.Set(ctx, credentialKey, []byte(token))
}

// Clear destroys the credential. Clearing an absent credential is not an
// error.
func (s *TokenStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, credentialKey)
}
