package assembler

import (
	"github.com/gagliardetto/solana-go"

	"PerpRequest/internal/schema"
)

// OpenPosition builds the request opening a new position. Fixed-point
// arguments use a 32-bit fractional scale and are passed through unscaled.
func OpenPosition(
	ctx *MarketContext,
	position *PositionInfo,
	collateral uint64,
	leverage uint64,
	predictedEntryPrice uint64,
	maxSlippage uint64,
	discount *DiscountAccount,
	referrer *solana.PublicKey,
) (solana.Instruction, error) {
	instance, err := ctx.Instance(position.InstanceIndex)
	if err != nil {
		return nil, err
	}
	data, err := schema.Encode(schema.OpenPosition{
		Side:                position.Side,
		Collateral:          collateral,
		InstanceIndex:       position.InstanceIndex,
		Leverage:            leverage,
		PredictedEntryPrice: predictedEntryPrice,
		MaxSlippage:         maxSlippage,
	})
	if err != nil {
		return nil, err
	}

	list := newAccountList(11 + len(instance.MemoryPages) + 3)
	list.readonly(solana.TokenProgramID)
	list.readonly(solana.SysVarClockPubkey)
	list.writable(ctx.MarketAccount)
	list.writable(instance.InstanceAccount)
	list.readonly(ctx.MarketSignerAccount)
	list.writable(ctx.MarketVault)
	list.writable(ctx.FeeSinkAccount)
	list.readonlySigner(position.UserAccountOwner)
	list.writable(position.UserAccount)
	list.readonly(TradeLabel)
	list.readonly(ctx.OracleAccount)
	list.pages(instance)
	if err := list.optionals(discount, referrer); err != nil {
		return nil, err
	}

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// IncreasePosition builds the request adding collateral to an existing
// position. Note the fixed prefix differs from OpenPosition: the instance
// account follows the fee sink here.
func IncreasePosition(
	ctx *MarketContext,
	addCollateral uint64,
	leverage uint64,
	instanceIndex uint8,
	positionIndex uint16,
	positionOwner solana.PublicKey,
	userAccount solana.PublicKey,
	predictedEntryPrice uint64,
	maxSlippage uint64,
	discount *DiscountAccount,
	referrer *solana.PublicKey,
) (solana.Instruction, error) {
	instance, err := ctx.Instance(instanceIndex)
	if err != nil {
		return nil, err
	}
	data, err := schema.Encode(schema.IncreasePosition{
		AddCollateral:       addCollateral,
		InstanceIndex:       instanceIndex,
		Leverage:            leverage,
		PositionIndex:       positionIndex,
		PredictedEntryPrice: predictedEntryPrice,
		MaxSlippage:         maxSlippage,
	})
	if err != nil {
		return nil, err
	}

	list := newAccountList(11 + len(instance.MemoryPages) + 3)
	list.readonly(solana.TokenProgramID)
	list.readonly(solana.SysVarClockPubkey)
	list.writable(ctx.MarketAccount)
	list.readonly(ctx.MarketSignerAccount)
	list.writable(ctx.MarketVault)
	list.writable(ctx.FeeSinkAccount)
	list.writable(instance.InstanceAccount)
	list.readonlySigner(positionOwner)
	list.writable(userAccount)
	list.readonly(TradeLabel)
	list.readonly(ctx.OracleAccount)
	list.pages(instance)
	if err := list.optionals(discount, referrer); err != nil {
		return nil, err
	}

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// ClosePosition builds the request unwinding part or all of a position.
func ClosePosition(
	ctx *MarketContext,
	position *PositionInfo,
	positionIndex uint16,
	closingCollateral uint64,
	closingBaseAmount uint64,
	predictedEntryPrice uint64,
	maxSlippage uint64,
	discount *DiscountAccount,
	referrer *solana.PublicKey,
) (solana.Instruction, error) {
	instance, err := ctx.Instance(position.InstanceIndex)
	if err != nil {
		return nil, err
	}
	data, err := schema.Encode(schema.ClosePosition{
		PositionIndex:       positionIndex,
		ClosingCollateral:   closingCollateral,
		ClosingBaseAmount:   closingBaseAmount,
		PredictedEntryPrice: predictedEntryPrice,
		MaxSlippage:         maxSlippage,
	})
	if err != nil {
		return nil, err
	}

	list := newAccountList(11 + len(instance.MemoryPages) + 3)
	list.readonly(solana.TokenProgramID)
	list.readonly(solana.SysVarClockPubkey)
	list.writable(ctx.MarketAccount)
	list.writable(instance.InstanceAccount)
	list.readonly(ctx.MarketSignerAccount)
	list.writable(ctx.MarketVault)
	list.writable(ctx.FeeSinkAccount)
	list.readonly(ctx.OracleAccount)
	list.readonlySigner(position.UserAccountOwner)
	list.writable(position.UserAccount)
	list.readonly(TradeLabel)
	list.pages(instance)
	if err := list.optionals(discount, referrer); err != nil {
		return nil, err
	}

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}
