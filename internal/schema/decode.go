package schema

import (
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// ErrUnknownKind is returned when a payload carries a discriminant outside
// the declared operation set.
var ErrUnknownKind = errors.New("unknown operation kind")

// Decode is the inverse of Encode. It rejects unknown discriminants,
// truncated payloads, and trailing bytes; the execution-engine side is
// assumed to implement the same inverse.
func Decode(data []byte) (Operation, error) {
	dec := bin.NewBorshDecoder(data)
	disc, err := dec.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("read discriminant: %w", err)
	}
	kind := Kind(disc)

	var op Operation
	switch kind {
	case KindCreateMarket:
		var v CreateMarket
		err = dec.Decode(&v)
		op = v
	case KindAddInstance:
		op = AddInstance{}
	case KindUpdateOracleAccount:
		op = UpdateOracleAccount{}
	case KindOpenPosition:
		var v OpenPosition
		err = dec.Decode(&v)
		op = v
	case KindAddBudget:
		var v AddBudget
		err = dec.Decode(&v)
		op = v
	case KindWithdrawBudget:
		var v WithdrawBudget
		err = dec.Decode(&v)
		op = v
	case KindIncreasePosition:
		var v IncreasePosition
		err = dec.Decode(&v)
		op = v
	case KindClosePosition:
		var v ClosePosition
		err = dec.Decode(&v)
		op = v
	case KindCollectGarbage:
		var v CollectGarbage
		err = dec.Decode(&v)
		op = v
	case KindCrankLiquidation:
		var v CrankLiquidation
		err = dec.Decode(&v)
		op = v
	case KindCrankFunding:
		op = CrankFunding{}
	case KindFundingExtraction:
		var v FundingExtraction
		err = dec.Decode(&v)
		op = v
	case KindChangeK:
		var v ChangeK
		err = dec.Decode(&v)
		op = v
	case KindCloseAccount:
		op = CloseAccount{}
	case KindAddPage:
		var v AddPage
		err = dec.Decode(&v)
		op = v
	case KindRebalance:
		var v Rebalance
		err = dec.Decode(&v)
		op = v
	case KindTransferUserAccount:
		op = TransferUserAccount{}
	case KindTransferPosition:
		var v TransferPosition
		err = dec.Decode(&v)
		op = v
	default:
		return nil, fmt.Errorf("%w: discriminant %d", ErrUnknownKind, disc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	if dec.Remaining() > 0 {
		return nil, fmt.Errorf("decode %s: %d trailing bytes", kind, dec.Remaining())
	}
	return op, nil
}
