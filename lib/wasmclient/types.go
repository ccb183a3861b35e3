package wasmclient

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/moznion/go-optional"
)

type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type StdFee struct {
	Amount  []Coin                  `json:"amount"`
	Gas     string                  `json:"gas"`
	Granter optional.Option[string] `json:"granter,omitempty"`
	Payer   optional.Option[string] `json:"payer,omitempty"`
}

type feeKind int

const (
	feeAuto feeKind = iota
	feeMultiplier
	feeStd
)

// Fee is the `number | StdFee | "auto"` fee argument of a signing chain
// client. The zero value is FeeAuto.
type Fee struct {
	kind       feeKind
	multiplier float64
	std        StdFee
}

// FeeAuto asks the chain client to simulate the transaction and pick the fee
// itself. The sentinel is a convention of the chain client; this package only
// passes it along.
var FeeAuto = Fee{}

// GasMultiplier is an automatic fee with a custom gas adjustment.
func GasMultiplier(m float64) Fee {
	return Fee{kind: feeMultiplier, multiplier: m}
}

func ExplicitFee(std StdFee) Fee {
	return Fee{kind: feeStd, std: std}
}

func (f Fee) IsAuto() bool {
	return f.kind == feeAuto
}

func (f Fee) Multiplier() (float64, bool) {
	return f.multiplier, f.kind == feeMultiplier
}

func (f Fee) Std() (StdFee, bool) {
	return f.std, f.kind == feeStd
}

func (f Fee) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case feeMultiplier:
		return json.Marshal(f.multiplier)
	case feeStd:
		return json.Marshal(f.std)
	default:
		return []byte(`"auto"`), nil
	}
}

func (f *Fee) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != "auto" {
			return fmt.Errorf("unknown fee %q", s)
		}
		*f = FeeAuto
		return nil
	}
	var m float64
	if err := json.Unmarshal(b, &m); err == nil {
		*f = GasMultiplier(m)
		return nil
	}
	var std StdFee
	if err := json.Unmarshal(b, &std); err != nil {
		return err
	}
	*f = ExplicitFee(std)
	return nil
}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

type Log struct {
	MsgIndex int     `json:"msg_index"`
	Log      string  `json:"log"`
	Events   []Event `json:"events"`
}

// ExecuteResult is what a signing chain client reports for a broadcast
// execute transaction.
type ExecuteResult struct {
	Logs            []Log   `json:"logs"`
	Height          int64   `json:"height"`
	TransactionHash string  `json:"transactionHash"`
	Events          []Event `json:"events"`
	GasWanted       uint64  `json:"gasWanted"`
	GasUsed         uint64  `json:"gasUsed"`
}

var ErrUint128Overflow = errors.New("value does not fit in 128 bits")

// Uint128 is the CosmWasm Uint128, carried on the wire as a decimal string.
type Uint128 struct {
	v uint256.Int
}

func NewUint128(v uint64) Uint128 {
	var u Uint128
	u.v.SetUint64(v)
	return u
}

func ParseUint128(s string) (Uint128, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint128{}, fmt.Errorf("invalid Uint128 %q: %w", s, err)
	}
	if v.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("invalid Uint128 %q: %w", s, ErrUint128Overflow)
	}
	return Uint128{v: *v}, nil
}

// MustUint128 is ParseUint128 for constants; it panics on bad input.
func MustUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u Uint128) String() string {
	return u.v.Dec()
}

func (u Uint128) IsZero() bool {
	return u.v.IsZero()
}

func (u Uint128) Cmp(other Uint128) int {
	return u.v.Cmp(&other.v)
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *Uint128) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid Uint128: expected a JSON string: %w", err)
	}
	parsed, err := ParseUint128(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
