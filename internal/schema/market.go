package schema

// CreateMarket initializes a new market for a currency. SignerNonce is the
// bump used to derive the market signer account from the market account.
type CreateMarket struct {
	SignerNonce        uint8
	MarketSymbol       string // ASCII, u32-length-prefixed on the wire
	InitialQuoteAmount uint64 // Initial virtual quote amount seeding the vAMM
	CoinDecimals       uint8
	QuoteDecimals      uint8
}

func (c CreateMarket) Kind() Kind { return KindCreateMarket }

// AddInstance registers a new bookkeeping instance (shard) with the market.
// The instance account and its page accounts travel in the account list.
type AddInstance struct{}

func (a AddInstance) Kind() Kind { return KindAddInstance }

// UpdateOracleAccount rotates the oracle key stored in the market state,
// following the oracle provider's mapping -> product -> price chain.
type UpdateOracleAccount struct{}

func (u UpdateOracleAccount) Kind() Kind { return KindUpdateOracleAccount }

// ChangeK rescales the vAMM invariant by the given factor.
type ChangeK struct {
	Factor uint64 // Fixed-point, 32-bit fractional scale
}

func (c ChangeK) Kind() Kind { return KindChangeK }

// AddPage attaches a new memory page account to the instance at the given
// index.
type AddPage struct {
	InstanceIndex uint8
}

func (a AddPage) Kind() Kind { return KindAddPage }

// Rebalance moves collateral between instances to even out vault exposure.
// Admin-gated.
type Rebalance struct {
	Collateral    uint64
	InstanceIndex uint8
}

func (r Rebalance) Kind() Kind { return KindRebalance }
