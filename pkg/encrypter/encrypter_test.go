package encrypter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecrypt(t *testing.T) {
	e := New(testKey)

	ct, err := e.Encrypt("scheduler:s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "scheduler:s3cret", ct)

	pt, err := e.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "scheduler:s3cret", pt)
}

func TestDecrypt_Errors(t *testing.T) {
	e := New(testKey)

	_, err := e.Decrypt("not base64!")
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = e.Decrypt("YWJj")
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	ct, err := New("fedcba9876543210fedcba9876543210").Encrypt("x")
	require.NoError(t, err)
	_, err = e.Decrypt(ct)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestInvalidKey(t *testing.T) {
	_, err := New("short").Encrypt("x")
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestHash(t *testing.T) {
	e := New(testKey)
	h, err := e.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, e.CompareHash("s3cret", h))
	assert.False(t, e.CompareHash("other", h))
}
