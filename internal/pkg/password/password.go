package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN   = 32768
	scryptR   = 8
	scryptP   = 1
	keyLen    = 64
	saltBytes = 16
)

var ErrMalformedHash = errors.New("malformed password hash")

// Hash derives a scrypt key from the password with a fresh random salt and
// encodes both as "hexhash.hexsalt". The salt is not secret.
func Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// Compare re-derives the key with the stored salt and compares in constant
// time.
func Compare(stored, supplied string) (bool, error) {
	hashHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false, ErrMalformedHash
	}
	storedKey, err := hex.DecodeString(hashHex)
	if err != nil {
		return false, ErrMalformedHash
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, ErrMalformedHash
	}
	key, err := scrypt.Key([]byte(supplied), salt, scryptN, scryptR, scryptP, len(storedKey))
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(storedKey, key) == 1, nil
}
