// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"bookmarks/config"
	"bookmarks/internal/domain/service"
	"bookmarks/internal/errors"

	"golang.org/x/crypto/argon2"
)

const argon2Algorithm = "argon2id"

// Upper bounds applied when reading parameters back from a stored hash, so a
// tampered row cannot make Check allocate unbounded memory.
const (
	maxArgon2Memory      = 1 << 20 // 1 GiB in KiB
	maxArgon2Iterations  = 16
	maxArgon2Parallelism = 16
)

// argon2Params are the tunables of a single argon2id computation.
type argon2Params struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

var defaultArgon2Params = argon2Params{
	memory:      64 * 1024,
	iterations:  3,
	parallelism: 2,
	saltLength:  16,
	keyLength:   32,
}

// argon2Hasher implements service.PasswordHasher with argon2id and PHC-formatted output.
type argon2Hasher struct {
	params argon2Params
	random io.Reader
}

// NewArgon2Hasher is the constructor for argon2Hasher. Unset parameters in
// cfg.Auth.Argon2 fall back to the defaults.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	params := defaultArgon2Params
	if cfg != nil && cfg.Auth != nil && cfg.Auth.Argon2 != nil {
		a := cfg.Auth.Argon2
		if a.Memory > 0 {
			params.memory = a.Memory
		}
		if a.Iterations > 0 {
			params.iterations = a.Iterations
		}
		if a.Parallelism > 0 {
			params.parallelism = a.Parallelism
		}
		if a.SaltLength > 0 {
			params.saltLength = a.SaltLength
		}
		if a.KeyLength > 0 {
			params.keyLength = a.KeyLength
		}
	}

	return &argon2Hasher{params: params, random: rand.Reader}
}

// Hash derives a key from the password with a fresh random salt and encodes it as
// $argon2id$v=19$m=<memory>,t=<iterations>,p=<parallelism>$<salt>$<key>.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.saltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.iterations, h.params.memory, h.params.parallelism, h.params.keyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Algorithm,
		argon2.Version,
		h.params.memory,
		h.params.iterations,
		h.params.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check recomputes the key with the parameters and salt stored in hash.
func (h *argon2Hasher) Check(password, hash string) bool {
	params, salt, key, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.iterations, params.memory, params.parallelism, params.keyLength)

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func decodeArgon2Hash(encoded string) (argon2Params, []byte, []byte, error) {
	var params argon2Params

	// "$argon2id$v=19$m=..,t=..,p=..$salt$key" splits into six parts, the first empty.
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return params, nil, nil, errors.New("invalid hash format")
	}
	if parts[1] != argon2Algorithm {
		return params, nil, nil, errors.Errorf("unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.Wrap(err, "invalid version")
	}
	if version != argon2.Version {
		return params, nil, nil, errors.Errorf("incompatible argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.iterations, &params.parallelism); err != nil {
		return params, nil, nil, errors.Wrap(err, "invalid parameters")
	}
	if params.memory == 0 || params.memory > maxArgon2Memory ||
		params.iterations == 0 || params.iterations > maxArgon2Iterations ||
		params.parallelism == 0 || params.parallelism > maxArgon2Parallelism {
		return params, nil, nil, errors.New("parameters out of range")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, errors.New("invalid salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, errors.New("invalid key")
	}
	params.saltLength = uint32(len(salt))
	params.keyLength = uint32(len(key))

	return params, salt, key, nil
}
