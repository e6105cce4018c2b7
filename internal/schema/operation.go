package schema

// Kind is the single-byte discriminant identifying an operation on the wire.
// Values are assigned by declaration order and are part of the contract with
// the on-chain execution engine: they must never be reordered or reassigned.
type Kind uint8

const (
	KindCreateMarket Kind = iota
	KindAddInstance
	KindUpdateOracleAccount
	KindOpenPosition
	KindAddBudget
	KindWithdrawBudget
	KindIncreasePosition
	KindClosePosition
	KindCollectGarbage
	KindCrankLiquidation
	KindCrankFunding
	KindFundingExtraction
	KindChangeK
	KindCloseAccount
	KindAddPage
	KindRebalance
	KindTransferUserAccount
	KindTransferPosition
)

// Operation is the interface all operation payloads implement. Every
// operation carries a fixed, ordered tuple of scalar arguments; the
// argument shape for a given kind never changes.
type Operation interface {
	// Kind returns the wire discriminant.
	Kind() Kind
}

func (k Kind) String() string {
	switch k {
	case KindCreateMarket:
		return "CreateMarket"
	case KindAddInstance:
		return "AddInstance"
	case KindUpdateOracleAccount:
		return "UpdateOracleAccount"
	case KindOpenPosition:
		return "OpenPosition"
	case KindAddBudget:
		return "AddBudget"
	case KindWithdrawBudget:
		return "WithdrawBudget"
	case KindIncreasePosition:
		return "IncreasePosition"
	case KindClosePosition:
		return "ClosePosition"
	case KindCollectGarbage:
		return "CollectGarbage"
	case KindCrankLiquidation:
		return "CrankLiquidation"
	case KindCrankFunding:
		return "CrankFunding"
	case KindFundingExtraction:
		return "FundingExtraction"
	case KindChangeK:
		return "ChangeK"
	case KindCloseAccount:
		return "CloseAccount"
	case KindAddPage:
		return "AddPage"
	case KindRebalance:
		return "Rebalance"
	case KindTransferUserAccount:
		return "TransferUserAccount"
	case KindTransferPosition:
		return "TransferPosition"
	default:
		return "Unknown"
	}
}
