package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"flint/internal/source"
	"flint/internal/token"
)

// cacheSchemaVersion invalidates every stored payload when the token
// shape changes. Bump on any edit to token.Token or token.Trivia.
const cacheSchemaVersion uint16 = 1

// TokenCache stores lexed token streams on disk, keyed by the SHA-256
// of the file content plus the scan mode. Only clean results are
// stored: a file with errors must re-lex so the error details (which
// carry arena locations and formatted messages) are rebuilt fresh.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16
	Path   string
	Tokens []token.Token
}

// OpenTokenCache initializes the cache under the standard location,
// $XDG_CACHE_HOME/<app>/lex (falling back to ~/.cache).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("token cache: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "lex")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

// cacheKey mixes the content hash with the scan mode so trivia-preserving
// and fast-mode streams never collide.
func cacheKey(content []byte, preserveTrivia bool) string {
	h := sha256.New()
	h.Write(content)
	mode := byte(0)
	if preserveTrivia {
		mode = 1
	}
	h.Write([]byte{mode})
	return hex.EncodeToString(h.Sum(nil))
}

func (c *TokenCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".mp")
}

// Lookup rebuilds a LexResult from a stored payload. The arena is
// recreated from the live content, so token offsets resolve exactly as
// they did when the stream was cached. A miss, a schema mismatch or a
// decode failure all report !ok; corruption never fails the build.
func (c *TokenCache) Lookup(content []byte, path string, preserveTrivia bool) (*LexResult, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(cacheKey(content, preserveTrivia)))
	if err != nil {
		return nil, false
	}
	defer f.Close() //nolint:errcheck // read-only handle

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}

	m := source.NewManager()
	id := m.AddBuffer(content, path)
	// токены записаны против однобуферной арены; пересоздание даёт
	// тот же BufferID, офсеты валидны по построению
	for i := range payload.Tokens {
		if payload.Tokens[i].Buffer != id {
			return nil, false
		}
	}

	return &LexResult{
		Manager:   m,
		Buffer:    id,
		Path:      path,
		Tokens:    payload.Tokens,
		FromCache: true,
	}, true
}

// Store writes a clean result to disk atomically. Results with errors
// are skipped; IO failures are swallowed because the cache is advisory.
func (c *TokenCache) Store(content []byte, preserveTrivia bool, res *LexResult) {
	if c == nil || res == nil || res.HasErrors {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(cacheKey(content, preserveTrivia))
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return
	}
	defer os.Remove(f.Name()) //nolint:errcheck // gone after rename

	payload := cachePayload{
		Schema: cacheSchemaVersion,
		Path:   res.Path,
		Tokens: res.Tokens,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close() //nolint:errcheck,gosec // discard path
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	_ = os.Rename(f.Name(), p) // атомарная замена
}

// DropAll removes every stored payload, useful after schema changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("token cache: %w", err)
	}
	var firstErr error
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil && !errors.Is(firstErr, os.ErrNotExist) {
		return fmt.Errorf("token cache: %w", firstErr)
	}
	return nil
}
