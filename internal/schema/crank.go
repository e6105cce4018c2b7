package schema

// CollectGarbage sweeps freed slots in an instance's paged position book.
// The cranker earns a flat fee per freed slot, capped by MaxIterations.
type CollectGarbage struct {
	InstanceIndex uint8
	MaxIterations uint64
}

func (c CollectGarbage) Kind() Kind { return KindCollectGarbage }

// CrankLiquidation sweeps the losing positions of an instance. The cranker
// receives a reward on its target token account.
type CrankLiquidation struct {
	InstanceIndex uint8
}

func (c CrankLiquidation) Kind() Kind { return KindCrankLiquidation }

// CrankFunding records the index and market prices into the market's price
// history buffer, from which the funding ratio average is computed.
type CrankFunding struct{}

func (c CrankFunding) Kind() Kind { return KindCrankFunding }

// FundingExtraction applies the accrued funding of one user account on one
// instance.
type FundingExtraction struct {
	InstanceIndex uint8
}

func (f FundingExtraction) Kind() Kind { return KindFundingExtraction }
