package assembler

import (
	"github.com/gagliardetto/solana-go"

	"PerpRequest/internal/schema"
)

// AddBudget builds the request depositing quote tokens into the user
// budget held by the market vault.
func AddBudget(
	ctx *MarketContext,
	amount uint64,
	sourceOwner solana.PublicKey,
	sourceTokenAccount solana.PublicKey,
	userAccount solana.PublicKey,
) (solana.Instruction, error) {
	data, err := schema.Encode(schema.AddBudget{Amount: amount})
	if err != nil {
		return nil, err
	}

	list := newAccountList(6)
	list.readonly(solana.TokenProgramID)
	list.writable(ctx.MarketAccount)
	list.writable(ctx.MarketVault)
	list.writable(userAccount)
	list.readonlySigner(sourceOwner)
	list.writable(sourceTokenAccount)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// WithdrawBudget builds the request moving quote tokens from the user
// budget back to a target token account.
func WithdrawBudget(
	ctx *MarketContext,
	amount uint64,
	targetTokenAccount solana.PublicKey,
	userAccountOwner solana.PublicKey,
	userAccount solana.PublicKey,
) (solana.Instruction, error) {
	data, err := schema.Encode(schema.WithdrawBudget{Amount: amount})
	if err != nil {
		return nil, err
	}

	list := newAccountList(7)
	list.readonly(solana.TokenProgramID)
	list.writable(ctx.MarketAccount)
	list.readonly(ctx.MarketSignerAccount)
	list.writable(ctx.MarketVault)
	list.readonlySigner(userAccountOwner)
	list.writable(userAccount)
	list.writable(targetTokenAccount)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// CloseAccount builds the request closing a user account and sending its
// rent lamports to the target.
func CloseAccount(
	ctx *MarketContext,
	userAccount solana.PublicKey,
	userAccountOwner solana.PublicKey,
	lamportsTarget solana.PublicKey,
) (solana.Instruction, error) {
	data, err := schema.Encode(schema.CloseAccount{})
	if err != nil {
		return nil, err
	}

	list := newAccountList(3)
	list.writable(userAccount)
	list.readonlySigner(userAccountOwner)
	list.writable(lamportsTarget)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// TransferUserAccount builds the request handing a user account over to a
// new owner.
func TransferUserAccount(
	ctx *MarketContext,
	userAccount solana.PublicKey,
	userAccountOwner solana.PublicKey,
	newUserAccountOwner solana.PublicKey,
) (solana.Instruction, error) {
	data, err := schema.Encode(schema.TransferUserAccount{})
	if err != nil {
		return nil, err
	}

	list := newAccountList(3)
	list.readonlySigner(userAccountOwner)
	list.writable(userAccount)
	list.readonly(newUserAccountOwner)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}

// TransferPosition builds the request moving one position between two user
// accounts. Both owners sign; no paged or optional segments apply.
func TransferPosition(
	ctx *MarketContext,
	positionIndex uint16,
	sourceUserAccount solana.PublicKey,
	sourceUserAccountOwner solana.PublicKey,
	destinationUserAccount solana.PublicKey,
	destinationUserAccountOwner solana.PublicKey,
) (solana.Instruction, error) {
	data, err := schema.Encode(schema.TransferPosition{PositionIndex: positionIndex})
	if err != nil {
		return nil, err
	}

	list := newAccountList(4)
	list.readonlySigner(sourceUserAccountOwner)
	list.writable(sourceUserAccount)
	list.readonlySigner(destinationUserAccountOwner)
	list.writable(destinationUserAccount)

	return solana.NewInstruction(ctx.ProgramID, list.metas, data), nil
}
