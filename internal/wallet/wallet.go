// Package wallet loads the signing identity from a Solana keypair file.
package wallet

import (
	"crypto/sha512"
	"encoding/json"
	"fmt"
	"os"

	"filippo.io/edwards25519"
	"github.com/gagliardetto/solana-go"
)

const keypairLen = 64 // 32-byte seed + 32-byte public key

// Wallet is a loaded signing identity.
type Wallet struct {
	PrivateKey solana.PrivateKey
}

// Load reads a Solana keypair file (JSON array of 64 bytes) and verifies
// the embedded public key against the seed before returning the identity.
func Load(path string) (*Wallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("wallet file %s not found: create one with `solana-keygen new --outfile %s` or point walletPath at an existing keypair", path, path)
		}
		return nil, fmt.Errorf("read wallet file %s: %w", path, err)
	}

	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse wallet file %s: expected a JSON array of 64 bytes: %w", path, err)
	}
	if len(raw) != keypairLen {
		return nil, fmt.Errorf("wallet file %s holds %d bytes, expected %d", path, len(raw), keypairLen)
	}

	key := make(solana.PrivateKey, keypairLen)
	for i, b := range raw {
		if b < 0 || b > 255 {
			return nil, fmt.Errorf("wallet file %s: byte %d out of range", path, i)
		}
		key[i] = byte(b)
	}

	if err := verifyKeypair(key); err != nil {
		return nil, fmt.Errorf("wallet file %s: %w", path, err)
	}

	return &Wallet{PrivateKey: key}, nil
}

// PublicKey returns the wallet's public key.
func (w *Wallet) PublicKey() solana.PublicKey {
	return w.PrivateKey.PublicKey()
}

// verifyKeypair re-derives the public half from the seed and compares it to
// the stored one, rejecting corrupted or hand-edited keypair files.
func verifyKeypair(key solana.PrivateKey) error {
	seed := key[:32]
	stored := key[32:]

	digest := sha512.Sum512(seed)
	scalar, err := edwards25519.NewScalar().SetBytesWithClamping(digest[:32])
	if err != nil {
		return fmt.Errorf("derive scalar: %w", err)
	}
	derived := (&edwards25519.Point{}).ScalarBaseMult(scalar).Bytes()

	for i := range stored {
		if stored[i] != derived[i] {
			return fmt.Errorf("public key does not match seed (corrupted keypair file)")
		}
	}
	return nil
}

// IsOnCurve reports whether a public key is a valid ed25519 curve point.
// Wallet-owned authorities must be on the curve; program-derived addresses
// are not.
func IsOnCurve(key solana.PublicKey) bool {
	_, err := (&edwards25519.Point{}).SetBytes(key.Bytes())
	return err == nil
}
