package storage

// TokenStore holds the single Spotify bearer token. The OAuth flow that
// produces the token lives outside this program.
type TokenStore struct {
	kv KV
}

func NewTokenStore(kv KV) *TokenStore {
	return &TokenStore{kv: kv}
}

// Token returns the stored bearer token, or "" when none is stored.
func (t *TokenStore) Token() (string, error) {
	raw, ok, err := t.kv.Get(KeySpotifyToken)
	if err != nil || !ok {
		return "", err
	}
	return raw, nil
}

func (t *TokenStore) SetToken(token string) error {
	return t.kv.Set(KeySpotifyToken, token)
}

// Clear removes the token, logically signing the user out.
func (t *TokenStore) Clear() error {
	return t.kv.Delete(KeySpotifyToken)
}
