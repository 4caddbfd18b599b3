package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"cipherbox/internal/util/memzero"
)

const sealedFormatVersion = 1

// sealedAD is authenticated with every history ciphertext so a sealed blob
// from another tool cannot be passed off as history.
var sealedAD = []byte("cipherbox/history")

// ErrWrongPassphrase is returned when the passphrase is incorrect or the ciphertext was modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted history")

// kdfParams is the scrypt cost recorded next to each sealed history.
type kdfParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

func defaultKDFParams() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// sealedHistory is the JSON document written to the sealed history file.
type sealedHistory struct {
	Version int       `json:"version"`
	KDF     kdfParams `json:"kdf"`
	Salt    []byte    `json:"salt"`
	Nonce   []byte    `json:"nonce"`
	Data    []byte    `json:"data"`
}

func deriveKey(passphrase string, salt []byte, kdf kdfParams) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive history key: %w", err)
	}
	return key, nil
}

// sealHistory encrypts the encoded history text under passphrase.
func sealHistory(passphrase string, text []byte, kdf kdfParams) ([]byte, error) {
	doc := sealedHistory{
		Version: sealedFormatVersion,
		KDF:     kdf,
		Salt:    make([]byte, 16),
		Nonce:   make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(doc.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(doc.Nonce); err != nil {
		return nil, err
	}

	key, err := deriveKey(passphrase, doc.Salt, kdf)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	doc.Data = aead.Seal(nil, doc.Nonce, text, sealedAD)
	return json.Marshal(doc)
}

// openHistory reverses sealHistory. A failed authentication is reported as
// ErrWrongPassphrase.
func openHistory(passphrase string, b []byte) ([]byte, error) {
	var doc sealedHistory
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse sealed history: %w", err)
	}
	if doc.Version != sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed history version %d", doc.Version)
	}
	if len(doc.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("sealed history: bad nonce length %d", len(doc.Nonce))
	}

	key, err := deriveKey(passphrase, doc.Salt, doc.KDF)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	text, err := aead.Open(nil, doc.Nonce, doc.Data, sealedAD)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return text, nil
}
