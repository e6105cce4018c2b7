package schema

// Side is the direction of a position, encoded as a single byte. The
// declaration order is fixed by the wire contract.
type Side uint8

const (
	SideShort Side = iota
	SideLong
)

func (s Side) String() string {
	switch s {
	case SideShort:
		return "short"
	case SideLong:
		return "long"
	default:
		return "unknown"
	}
}

// OpenPosition opens a new position against the vAMM. Collateral is moved
// from the user budget held in the market vault.
//
// Field order is the wire order.
type OpenPosition struct {
	Side                Side
	Collateral          uint64 // Quote token amount, native units
	InstanceIndex       uint8
	Leverage            uint64 // Fixed-point, 32-bit fractional scale
	PredictedEntryPrice uint64 // Fixed-point, 32-bit fractional scale
	MaxSlippage         uint64 // Fixed-point, 32-bit fractional scale
}

func (o OpenPosition) Kind() Kind { return KindOpenPosition }

// IncreasePosition adds collateral to an existing position, shifting its
// liquidation index accordingly.
type IncreasePosition struct {
	AddCollateral       uint64
	InstanceIndex       uint8
	Leverage            uint64 // Fixed-point, 32-bit fractional scale
	PositionIndex       uint16
	PredictedEntryPrice uint64 // Fixed-point, 32-bit fractional scale
	MaxSlippage         uint64 // Fixed-point, 32-bit fractional scale
}

func (i IncreasePosition) Kind() Kind { return KindIncreasePosition }

// ClosePosition closes part or all of a position. ClosingBaseAmount is the
// virtual base token amount being unwound from the vAMM.
type ClosePosition struct {
	PositionIndex       uint16
	ClosingCollateral   uint64
	ClosingBaseAmount   uint64
	PredictedEntryPrice uint64 // Fixed-point, 32-bit fractional scale
	MaxSlippage         uint64 // Fixed-point, 32-bit fractional scale
}

func (c ClosePosition) Kind() Kind { return KindClosePosition }
