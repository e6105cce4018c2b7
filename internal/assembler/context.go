package assembler

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"PerpRequest/internal/schema"
)

// MarketContext is the long-lived configuration of one market instance
// group, populated by an external directory service. It is read-only for
// the duration of a call; construction functions never mutate it, so
// concurrent callers need no coordination.
type MarketContext struct {
	ProgramID           solana.PublicKey
	SignerNonce         uint8
	MarketSignerAccount solana.PublicKey
	OracleAccount       solana.PublicKey
	MarketAccount       solana.PublicKey
	AdminAccount        solana.PublicKey
	MarketVault         solana.PublicKey
	FeeSinkAccount      solana.PublicKey
	Instances           []InstanceContext
}

// InstanceContext is one bookkeeping shard of a market: its account plus
// the ordered memory pages holding its position book. Page order is
// load-bearing and preserved as-is in every account list.
type InstanceContext struct {
	InstanceAccount solana.PublicKey
	MemoryPages     []solana.PublicKey
}

// DiscountAccount identifies the fee-tier discount account and its owner.
// Supplying one appends two extra references to the account list.
type DiscountAccount struct {
	Owner   solana.PublicKey
	Address solana.PublicKey
}

// PositionInfo identifies a user's position-holding account, its owner,
// the instance it belongs to, and its side.
type PositionInfo struct {
	UserAccount      solana.PublicKey
	UserAccountOwner solana.PublicKey
	InstanceIndex    uint8
	Side             schema.Side
}

// Instance is the checked accessor into the instance list. An out-of-range
// index is a reportable error, not a fault; downstream re-validation is not
// assumed.
func (c *MarketContext) Instance(index uint8) (*InstanceContext, error) {
	if int(index) >= len(c.Instances) {
		return nil, fmt.Errorf("%w: index %d with %d instances", ErrInvalidInstanceIndex, index, len(c.Instances))
	}
	return &c.Instances[index], nil
}
