package assembler

import (
	"github.com/gagliardetto/solana-go"

	"PerpRequest/internal/schema"
)

// CollectGarbage builds the permissionless request sweeping freed slots in
// an instance's position book. The flat per-slot reward lands on the
// target token account.
func CollectGarbage(
	ctx *MarketContext,
	instanceIndex uint8,
	maxIterations uint64,
	targetTokenAccount solana.PublicKey,
) (solana.Instruction, error) {
	instance, err := ctx.Instance(instanceIndex)
	if err != nil {
		return nil, err
	}
	data, err := schema.Encode(schema.CollectGarbage{
		InstanceIndex: instanceIndex,
		MaxIterations: maxIterations,
	})
	if err != nil {
		return nil, err
	}

	list := newAccountList(6 + len(instance.MemoryPages))
	list.readonly(solana.TokenProgramID)
	list.writable(ctx.MarketAccount)
	list.writable(instance.InstanceAccount)
	list.writable(ctx.MarketVault)
	list.readonly(ctx.MarketSignerAccount)
	list.writable(targetTokenAccount)
	list.pages(instance)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// CrankLiquidation builds the permissionless request sweeping the losing
// positions of an instance.
func CrankLiquidation(
	ctx *MarketContext,
	instanceIndex uint8,
	targetTokenAccount solana.PublicKey,
) (solana.Instruction, error) {
	instance, err := ctx.Instance(instanceIndex)
	if err != nil {
		return nil, err
	}
	data, err := schema.Encode(schema.CrankLiquidation{InstanceIndex: instanceIndex})
	if err != nil {
		return nil, err
	}

	list := newAccountList(9 + len(instance.MemoryPages))
	list.readonly(solana.TokenProgramID)
	list.writable(ctx.MarketAccount)
	list.writable(instance.InstanceAccount)
	list.readonly(ctx.MarketSignerAccount)
	list.writable(ctx.FeeSinkAccount)
	list.writable(ctx.MarketVault)
	list.readonly(ctx.OracleAccount)
	list.writable(targetTokenAccount)
	list.readonly(LiquidationLabel)
	list.pages(instance)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// CrankFunding builds the permissionless request recording the index and
// market prices into the market's history buffer.
func CrankFunding(ctx *MarketContext) (solana.Instruction, error) {
	data, err := schema.Encode(schema.CrankFunding{})
	if err != nil {
		return nil, err
	}

	list := newAccountList(4)
	list.readonly(solana.SysVarClockPubkey)
	list.writable(ctx.MarketAccount)
	list.readonly(ctx.OracleAccount)
	list.readonly(FundingLabel)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// ExtractFunding builds the request applying accrued funding to one user
// account on one instance.
func ExtractFunding(
	ctx *MarketContext,
	instanceIndex uint8,
	userAccount solana.PublicKey,
) (solana.Instruction, error) {
	instance, err := ctx.Instance(instanceIndex)
	if err != nil {
		return nil, err
	}
	data, err := schema.Encode(schema.FundingExtraction{InstanceIndex: instanceIndex})
	if err != nil {
		return nil, err
	}

	list := newAccountList(5 + len(instance.MemoryPages))
	list.writable(ctx.MarketAccount)
	list.writable(instance.InstanceAccount)
	list.writable(userAccount)
	list.readonly(FundingExtractionLabel)
	list.readonly(ctx.OracleAccount)
	list.pages(instance)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}
