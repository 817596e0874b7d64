package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// per-user credential file (0600) with AES-GCM obfuscation.
// Not a replacement for OS keychains but keeps secrets out of config.toml.

const fileName = "keys.json"

var ErrNotFound = errors.New("secret not found")

type secretFile struct {
	Keys map[string]string `json:"keys"` // name -> base64(nonce|ciphertext)
}

// Store reads and writes named secrets in Dir/keys.json. Each value is
// sealed with its name as additional data, so an entry copied under
// another name fails to open.
type Store struct {
	dir  string
	aead cipher.AEAD
	mu   sync.Mutex
}

// NewStore returns a store rooted at dir. An empty dir means
// <UserConfigDir>/dictionary.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("user config dir: %w", err)
		}
		dir = filepath.Join(base, "dictionary")
	}
	sum := sha256.Sum256([]byte("dictionary-" + runtime.GOOS + "-" + os.Getenv("USER")))
	block, err := aes.NewCipher(sum[:])
	if err != nil {
		return nil, fmt.Errorf("secrets cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("secrets cipher: %w", err)
	}
	return &Store{dir: dir, aead: aead}, nil
}

// Name builds the secret name for one credential of an engine.
func Name(engine, field string) string {
	return clean(engine) + "." + clean(field)
}

func (s *Store) Put(name, value string) error {
	return s.update(name, func(keys map[string]string, name string) (bool, error) {
		nonce := make([]byte, s.aead.NonceSize())
		if _, err := rand.Read(nonce); err != nil {
			return false, fmt.Errorf("nonce: %w", err)
		}
		sealed := s.aead.Seal(nonce, nonce, []byte(value), []byte(name))
		keys[name] = base64.StdEncoding.EncodeToString(sealed)
		return true, nil
	})
}

func (s *Store) Get(name string) (string, error) {
	var out string
	err := s.update(name, func(keys map[string]string, name string) (bool, error) {
		enc, ok := keys[name]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		raw, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			return false, fmt.Errorf("decode %s: %w", name, err)
		}
		n := s.aead.NonceSize()
		if len(raw) < n {
			return false, fmt.Errorf("decrypt %s: ciphertext too short", name)
		}
		plain, err := s.aead.Open(nil, raw[:n], raw[n:], []byte(name))
		if err != nil {
			return false, fmt.Errorf("decrypt %s: %w", name, err)
		}
		out = string(plain)
		return false, nil
	})
	return out, err
}

// Delete removes name. Absent names are not an error.
func (s *Store) Delete(name string) error {
	return s.update(name, func(keys map[string]string, name string) (bool, error) {
		if _, ok := keys[name]; !ok {
			return false, nil
		}
		delete(keys, name)
		return true, nil
	})
}

// update runs fn on the decoded file under the lock and writes the file
// back when fn reports a change.
func (s *Store) update(name string, fn func(keys map[string]string, name string) (bool, error)) error {
	if name = clean(name); name == "" {
		return fmt.Errorf("secret name required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, fileName)
	var sf secretFile
	switch data, err := os.ReadFile(path); {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read secrets: %w", err)
	default:
		if err := json.Unmarshal(data, &sf); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if sf.Keys == nil {
		sf.Keys = map[string]string{}
	}

	dirty, err := fn(sf.Keys, name)
	if err != nil || !dirty {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("mkdir secrets dir: %w", err)
	}
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write secrets: %w", err)
	}
	return os.Rename(tmp, path)
}

func clean(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
