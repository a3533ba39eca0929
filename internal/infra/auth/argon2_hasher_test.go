package auth

import (
	"errors"
	"strings"
	"testing"

	"bookmarks/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastHasherConfig keeps argon2 cheap enough for unit tests.
func fastHasherConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Argon2: &config.Argon2Config{
				Memory:      1024,
				Iterations:  1,
				Parallelism: 1,
			},
		},
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher(fastHasherConfig())

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.True(t, hasher.Check("pw", hash))
	assert.False(t, hasher.Check("pw2", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestArgon2Hasher_SaltsEveryHash(t *testing.T) {
	hasher := NewArgon2Hasher(fastHasherConfig())

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same password", first))
	assert.True(t, hasher.Check("same password", second))
}

func TestArgon2Hasher_CheckUsesStoredParameters(t *testing.T) {
	stored, err := NewArgon2Hasher(fastHasherConfig()).Hash("pw")
	require.NoError(t, err)

	cfg := fastHasherConfig()
	cfg.Auth.Argon2.Iterations = 2
	cfg.Auth.Argon2.KeyLength = 16
	current := NewArgon2Hasher(cfg)

	assert.True(t, current.Check("pw", stored))
}

func TestArgon2Hasher_DefaultParameters(t *testing.T) {
	hasher, ok := NewArgon2Hasher(&config.Config{}).(*argon2Hasher)
	require.True(t, ok)

	assert.Equal(t, defaultArgon2Params, hasher.params)
}

func TestArgon2Hasher_CheckRejectsMalformedHashes(t *testing.T) {
	hasher := NewArgon2Hasher(fastHasherConfig())
	valid, err := hasher.Hash("pw")
	require.NoError(t, err)
	parts := strings.Split(valid, "$")

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "plaintext", hash: "pw"},
		{name: "bcrypt", hash: "$2a$10$abcdefghijklmnopqrstuu5Zr0w0Xq9o1GZ3c3mJ7Wb5h0mX6e6e"},
		{name: "wrong algorithm", hash: strings.Join([]string{"", "argon2i", parts[2], parts[3], parts[4], parts[5]}, "$")},
		{name: "wrong version", hash: strings.Join([]string{"", "argon2id", "v=16", parts[3], parts[4], parts[5]}, "$")},
		{name: "garbled parameters", hash: strings.Join([]string{"", "argon2id", parts[2], "m=x,t=1,p=1", parts[4], parts[5]}, "$")},
		{name: "zero iterations", hash: strings.Join([]string{"", "argon2id", parts[2], "m=1024,t=0,p=1", parts[4], parts[5]}, "$")},
		{name: "zero parallelism", hash: strings.Join([]string{"", "argon2id", parts[2], "m=1024,t=1,p=0", parts[4], parts[5]}, "$")},
		{name: "excessive memory", hash: strings.Join([]string{"", "argon2id", parts[2], "m=4294967295,t=1,p=1", parts[4], parts[5]}, "$")},
		{name: "bad salt encoding", hash: strings.Join([]string{"", "argon2id", parts[2], parts[3], "!!!", parts[5]}, "$")},
		{name: "empty key", hash: strings.Join([]string{"", "argon2id", parts[2], parts[3], parts[4], ""}, "$")},
		{name: "extra segment", hash: valid + "$extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, hasher.Check("pw", tt.hash))
			})
		})
	}
}

func TestArgon2Hasher_HashFailsWithoutEntropy(t *testing.T) {
	hasher := &argon2Hasher{params: defaultArgon2Params, random: failingReader{}}

	hash, err := hasher.Hash("pw")
	assert.Error(t, err)
	assert.Empty(t, hash)
	assert.Contains(t, err.Error(), "failed to generate salt")
}
