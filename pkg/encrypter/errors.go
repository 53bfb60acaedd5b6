package encrypter

import "errors"

var (
	ErrInvalidKeyLength   = errors.New("encrypter: key must be 16, 24, or 32 bytes long")
	ErrCiphertextTooShort = errors.New("encrypter: ciphertext is too short")
	ErrDecryptionFailed   = errors.New("encrypter: invalid ciphertext or key")
)
