package assembler

import (
	"github.com/gagliardetto/solana-go"

	"PerpRequest/internal/schema"
)

// CreateMarket builds the request initializing a new market. The signer
// nonce comes from the context; the vault reference is readonly here
// because the engine only records its identity at creation.
func CreateMarket(
	ctx *MarketContext,
	marketSymbol string,
	initialQuoteAmount uint64,
	coinDecimals uint8,
	quoteDecimals uint8,
) (solana.Instruction, error) {
	data, err := schema.Encode(schema.CreateMarket{
		SignerNonce:        ctx.SignerNonce,
		MarketSymbol:       marketSymbol,
		InitialQuoteAmount: initialQuoteAmount,
		CoinDecimals:       coinDecimals,
		QuoteDecimals:      quoteDecimals,
	})
	if err != nil {
		return nil, err
	}

	list := newAccountList(5)
	list.writable(ctx.MarketAccount)
	list.readonly(solana.SysVarClockPubkey)
	list.readonly(ctx.OracleAccount)
	list.readonly(ctx.AdminAccount)
	list.readonly(ctx.MarketVault)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// AddInstance builds the admin request registering a new bookkeeping
// instance and its initial memory pages.
func AddInstance(
	ctx *MarketContext,
	instanceAccount solana.PublicKey,
	memoryPages []solana.PublicKey,
) (solana.Instruction, error) {
	data, err := schema.Encode(schema.AddInstance{})
	if err != nil {
		return nil, err
	}

	list := newAccountList(3 + len(memoryPages))
	list.writable(ctx.MarketAccount)
	list.writableSigner(ctx.AdminAccount)
	list.writable(instanceAccount)
	for _, p := range memoryPages {
		list.writable(p)
	}

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// UpdateOracleAccount builds the request rotating the market's oracle key,
// following the oracle provider's mapping -> product -> price chain.
func UpdateOracleAccount(
	ctx *MarketContext,
	oracleMappingAccount solana.PublicKey,
	oracleProductAccount solana.PublicKey,
	oraclePriceAccount solana.PublicKey,
) (solana.Instruction, error) {
	data, err := schema.Encode(schema.UpdateOracleAccount{})
	if err != nil {
		return nil, err
	}

	list := newAccountList(4)
	list.writable(ctx.MarketAccount)
	list.readonly(oracleMappingAccount)
	list.readonly(oracleProductAccount)
	list.readonly(oraclePriceAccount)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// ChangeK builds the admin request rescaling the vAMM invariant.
func ChangeK(ctx *MarketContext, factor uint64) (solana.Instruction, error) {
	data, err := schema.Encode(schema.ChangeK{Factor: factor})
	if err != nil {
		return nil, err
	}

	list := newAccountList(2)
	list.writable(ctx.MarketAccount)
	list.readonlySigner(ctx.AdminAccount)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// AddPage builds the admin request attaching a fresh memory page to the
// instance at the given index.
func AddPage(ctx *MarketContext, instanceIndex uint8, newMemoryPage solana.PublicKey) (solana.Instruction, error) {
	instance, err := ctx.Instance(instanceIndex)
	if err != nil {
		return nil, err
	}
	data, err := schema.Encode(schema.AddPage{InstanceIndex: instanceIndex})
	if err != nil {
		return nil, err
	}

	list := newAccountList(4)
	list.readonly(ctx.MarketAccount)
	list.readonlySigner(ctx.AdminAccount)
	list.writable(instance.InstanceAccount)
	list.readonly(newMemoryPage)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// Rebalance builds the admin request moving collateral between instances.
// The engine reads the instance account from the first instance while the
// page fan-out follows the indexed one; both lookups are bounds-checked.
func Rebalance(
	ctx *MarketContext,
	userAccount solana.PublicKey,
	userAccountOwner solana.PublicKey,
	instanceIndex uint8,
	collateral uint64,
) (solana.Instruction, error) {
	instance, err := ctx.Instance(instanceIndex)
	if err != nil {
		return nil, err
	}
	first, err := ctx.Instance(0)
	if err != nil {
		return nil, err
	}
	data, err := schema.Encode(schema.Rebalance{
		Collateral:    collateral,
		InstanceIndex: instanceIndex,
	})
	if err != nil {
		return nil, err
	}

	list := newAccountList(10 + len(instance.MemoryPages))
	list.readonly(solana.TokenProgramID)
	list.readonly(solana.SysVarClockPubkey)
	list.writable(ctx.MarketAccount)
	list.writable(first.InstanceAccount)
	list.readonly(ctx.MarketSignerAccount)
	list.writable(ctx.MarketVault)
	list.writable(ctx.FeeSinkAccount)
	list.readonlySigner(userAccountOwner)
	list.writable(userAccount)
	list.readonlySigner(ctx.AdminAccount)
	list.pages(instance)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}
