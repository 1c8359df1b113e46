package repository

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"
)

// ageHeader prefixes every age-encrypted payload
const ageHeader = "age-encryption.org"

// Sealer encrypts scenario payloads before they reach the database
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(stored []byte) ([]byte, error)
}

// plainSealer stores payloads as-is
type plainSealer struct{}

func (plainSealer) Seal(plaintext []byte) ([]byte, error) {
	return plaintext, nil
}

func (plainSealer) Open(stored []byte) ([]byte, error) {
	if isAgeEncrypted(stored) {
		return nil, fmt.Errorf("payload is encrypted and no passphrase is configured")
	}
	return stored, nil
}

type passphraseSealer struct {
	recipient *age.ScryptRecipient
	identity  *age.ScryptIdentity
}

// NewSealer returns a Sealer for the passphrase. An empty passphrase stores payloads in the clear.
func NewSealer(passphrase string) (Sealer, error) {
	if passphrase == "" {
		return plainSealer{}, nil
	}

	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrypt recipient: %w", err)
	}

	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrypt identity: %w", err)
	}

	return &passphraseSealer{recipient: recipient, identity: identity}, nil
}

// newSealerWithWorkFactor lowers the scrypt cost, for tests
func newSealerWithWorkFactor(passphrase string, logN int) (Sealer, error) {
	s, err := NewSealer(passphrase)
	if err != nil {
		return nil, err
	}
	if ps, ok := s.(*passphraseSealer); ok {
		ps.recipient.SetWorkFactor(logN)
	}
	return s, nil
}

func (s *passphraseSealer) Seal(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := age.Encrypt(&buf, s.recipient)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(plaintext); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Open also accepts rows written before a passphrase was configured
func (s *passphraseSealer) Open(stored []byte) ([]byte, error) {
	if !isAgeEncrypted(stored) {
		return stored, nil
	}

	r, err := age.Decrypt(bytes.NewReader(stored), s.identity)
	if err != nil {
		return nil, err
	}

	return io.ReadAll(r)
}

func isAgeEncrypted(data []byte) bool {
	return bytes.HasPrefix(data, []byte(ageHeader))
}
