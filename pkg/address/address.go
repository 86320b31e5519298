// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package address implements canonical account identities. An address is the
// 32-byte account ID; its textual forms (SS58 under any network prefix, or
// hex) all compare equal.
package address

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Size is the length of an account ID.
const Size = 32

// GenericPrefix is the SS58 prefix used when no network is specified.
const GenericPrefix = 42

var ss58Pre = []byte("SS58PRE")

// Address is an account ID.
type Address [Size]byte

// Zero is the zero address.
var Zero Address

// Parse parses an SS58 address (any network prefix) or a 0x-prefixed hex
// account ID.
func Parse(s string) (Address, error) {
	if len(s) < 2 {
		return Zero, errors.BadRequest.With("invalid address: too short")
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, err := hex.DecodeString(s[2:])
		if err != nil {
			return Zero, errors.BadRequest.WithFormat("invalid hex address: %w", err)
		}
		return FromBytes(b)
	}

	a, _, err := decodeSS58(s)
	return a, err
}

// MustParse calls Parse and panics if it returns an error.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromBytes converts a 32-byte account ID.
func FromBytes(b []byte) (Address, error) {
	if len(b) != Size {
		return Zero, errors.BadRequest.WithFormat("invalid address: want %d bytes, got %d", Size, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// IsZero returns true if the address is the zero address.
func (a Address) IsZero() bool { return a == Zero }

// Bytes returns a copy of the account ID.
func (a Address) Bytes() []byte { return bytes.Clone(a[:]) }

// Equal returns true if a and b identify the same account.
func (a Address) Equal(b Address) bool { return a == b }

// Compare orders addresses by their raw bytes, which is how the chain sorts
// signatories.
func (a Address) Compare(b Address) int { return bytes.Compare(a[:], b[:]) }

// String formats the address with the generic prefix.
func (a Address) String() string { return a.Format(GenericPrefix) }

// Hex formats the account ID as 0x-prefixed hex.
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

// Format formats the address as SS58 with the given network prefix.
func (a Address) Format(prefix uint16) string {
	var b []byte
	if prefix < 64 {
		b = append(b, byte(prefix))
	} else {
		b = append(b,
			byte((prefix&0xfc)>>2)|0x40,
			byte(prefix>>8)|byte((prefix&0x03)<<6))
	}
	b = append(b, a[:]...)
	sum := checksum(b)
	b = append(b, sum[0], sum[1])
	return base58.Encode(b)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Prefix returns the network prefix of an SS58 address.
func Prefix(s string) (uint16, error) {
	_, p, err := decodeSS58(s)
	return p, err
}

func decodeSS58(s string) (Address, uint16, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Zero, 0, errors.BadRequest.WithFormat("invalid SS58 address: %w", err)
	}
	if len(b) < 1 {
		return Zero, 0, errors.BadRequest.With("invalid SS58 address: empty")
	}

	var prefix uint16
	var n int
	switch {
	case b[0] < 64:
		prefix, n = uint16(b[0]), 1
	case b[0] < 128:
		if len(b) < 2 {
			return Zero, 0, errors.BadRequest.With("invalid SS58 address: truncated prefix")
		}
		lower := (b[0] << 2) | (b[1] >> 6)
		upper := b[1] & 0x3f
		prefix, n = uint16(lower)|uint16(upper)<<8, 2
	default:
		return Zero, 0, errors.BadRequest.With("invalid SS58 address: reserved prefix")
	}

	if len(b) != n+Size+2 {
		return Zero, 0, errors.BadRequest.WithFormat("invalid SS58 address: want %d bytes, got %d", n+Size+2, len(b))
	}

	sum := checksum(b[:n+Size])
	if sum[0] != b[n+Size] || sum[1] != b[n+Size+1] {
		return Zero, 0, errors.BadRequest.With("invalid SS58 address: bad checksum")
	}

	var a Address
	copy(a[:], b[n:n+Size])
	return a, prefix, nil
}

func checksum(b []byte) [blake2b.Size]byte {
	buf := make([]byte, 0, len(ss58Pre)+len(b))
	buf = append(buf, ss58Pre...)
	buf = append(buf, b...)
	return blake2b.Sum512(buf)
}
