package base

import (
	"math/big"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// AmountDecimalPlaces is the number of attos digits after the decimal point.
const AmountDecimalPlaces = 18

// Amount is a non-negative token amount counted in attos, the smallest
// unit (10^-18 of a token).
type Amount struct {
	attos Uint128
}

// AmountFromAttos wraps a raw attos count.
func AmountFromAttos(attos Uint128) Amount {
	return Amount{attos: attos}
}

// AmountFromTokens returns n whole tokens, saturating at the maximum amount.
func AmountFromTokens(n uint64) Amount {
	v := new(big.Int).Mul(new(big.Int).SetUint64(n), attosPerToken)
	u, ok := Uint128FromBig(v)
	if !ok {
		return Amount{attos: MaxUint128}
	}
	return Amount{attos: u}
}

// Attos returns the raw attos count.
func (a Amount) Attos() Uint128 {
	return a.attos
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.attos.IsZero()
}

// SaturatingAdd returns a + b, clamped to the maximum amount.
func (a Amount) SaturatingAdd(b Amount) Amount {
	sum, overflow := a.attos.Add(b.attos)
	if overflow {
		return Amount{attos: MaxUint128}
	}
	return Amount{attos: sum}
}

// SaturatingSub returns a - b, clamped to zero.
func (a Amount) SaturatingSub(b Amount) Amount {
	diff, underflow := a.attos.Sub(b.attos)
	if underflow {
		return Amount{}
	}
	return Amount{attos: diff}
}

var attosPerToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(AmountDecimalPlaces), nil)

// String formats the amount in tokens, e.g. "1.5" or "42".
func (a Amount) String() string {
	q, r := new(big.Int).QuoRem(a.attos.Big(), attosPerToken, new(big.Int))
	if r.Sign() == 0 {
		return q.String()
	}
	frac := r.String()
	frac = strings.Repeat("0", AmountDecimalPlaces-len(frac)) + frac
	return q.String() + "." + strings.TrimRight(frac, "0")
}

// MarshalCBOR encodes the attos count as a [lower, upper] word pair.
func (a Amount) MarshalCBOR() ([]byte, error) {
	lower, upper := a.attos.Halves()
	return cbor.Marshal([2]uint64{lower, upper})
}

// UnmarshalCBOR decodes the form written by MarshalCBOR.
func (a *Amount) UnmarshalCBOR(data []byte) error {
	var words [2]uint64
	if err := cbor.Unmarshal(data, &words); err != nil {
		return err
	}
	a.attos = Uint128FromHalves(words[0], words[1])
	return nil
}
