// Package tokeninfo persists one immutable JSON record per successful
// token-creation operation and lists them back.
package tokeninfo

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// TokenInfo describes one successful token-creation operation. Records are
// immutable once written; a new operation always produces a new file.
type TokenInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`

	Network string `json:"network"`

	Mint          string `json:"mint"`
	MintAuthority string `json:"mintAuthority"`

	Decimals uint8 `json:"decimals"`

	// Recipe-specific numeric parameters; zero values are omitted so each
	// record only carries the fields its recipe set.
	FeeBasisPoints uint16  `json:"feeBasisPoints,omitempty"`
	MaxFee         uint64  `json:"maxFee,omitempty"`
	InterestRate   int16   `json:"interestRate,omitempty"`
	Multiplier     float64 `json:"multiplier,omitempty"`
	MaxSize        uint32  `json:"maxSize,omitempty"`

	// Recipe-specific addresses.
	CloseAuthority string `json:"closeAuthority,omitempty"`
	Delegate       string `json:"delegate,omitempty"`
	HookProgram    string `json:"hookProgram,omitempty"`
	Group          string `json:"group,omitempty"`

	// Metadata recipe fields.
	Symbol string `json:"symbol,omitempty"`
	URI    string `json:"uri,omitempty"`

	NonTransferable bool `json:"nonTransferable,omitempty"`
	DefaultFrozen   bool `json:"defaultFrozen,omitempty"`

	// TokenAccount is the created account, when the recipe made one.
	TokenAccount string `json:"tokenAccount,omitempty"`
	// Amount is the minted amount in base units, when minting happened.
	Amount uint64 `json:"amount,omitempty"`

	Signatures []string `json:"signatures,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Filename derives the unique record filename:
// slugified name, UTC timestamp, and a short content hash.
func (t *TokenInfo) Filename() string {
	return fmt.Sprintf("%s-%s-%s.json",
		Slugify(t.Name),
		t.CreatedAt.UTC().Format("20060102-150405"),
		shortHash(t.Mint, t.Type, t.CreatedAt),
	)
}

// shortHash computes a deterministic 8-character discriminator so records
// created within the same second never collide.
func shortHash(mint, typeTag string, createdAt time.Time) string {
	data := fmt.Sprintf("%s|%s|%d", mint, typeTag, createdAt.UnixNano())
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:4])
}

// Slugify lowercases the name and reduces it to hyphen-separated
// alphanumeric runs.
func Slugify(name string) string {
	var sb strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		return "token"
	}
	return slug
}
