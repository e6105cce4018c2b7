package schema

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	bin "github.com/gagliardetto/binary"
)

// ErrSymbolEncoding is returned when a string argument cannot be represented
// in the length-prefixed wire format.
var ErrSymbolEncoding = errors.New("market symbol not encodable")

// Encode serializes an operation into its canonical binary payload: one
// discriminant byte followed by the argument tuple in little-endian
// fixed-width encoding, strings as u32-length prefix + raw bytes (borsh
// layout). The output is bit-for-bit stable; it is the wire contract with
// the execution engine.
func Encode(op Operation) ([]byte, error) {
	if cm, ok := op.(CreateMarket); ok {
		if err := validateSymbol(cm.MarketSymbol); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteByte(byte(op.Kind())); err != nil {
		return nil, fmt.Errorf("write discriminant: %w", err)
	}
	if err := enc.Encode(op); err != nil {
		return nil, fmt.Errorf("encode %s: %w", op.Kind(), err)
	}
	return buf.Bytes(), nil
}

// validateSymbol enforces the wire constraints on the market symbol: ASCII
// only, and representable behind a u32 length prefix.
func validateSymbol(symbol string) error {
	if uint64(len(symbol)) > math.MaxUint32 {
		return fmt.Errorf("%w: length %d exceeds u32 prefix", ErrSymbolEncoding, len(symbol))
	}
	for i := 0; i < len(symbol); i++ {
		if symbol[i] > 0x7f {
			return fmt.Errorf("%w: non-ASCII byte at offset %d", ErrSymbolEncoding, i)
		}
	}
	return nil
}
