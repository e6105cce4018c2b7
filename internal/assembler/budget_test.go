package assembler_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"

	"PerpRequest/internal/assembler"
	"PerpRequest/internal/schema"
	"PerpRequest/internal/testutil"
)

func TestAddBudgetAccounts(t *testing.T) {
	ctx := testutil.Context()
	sourceOwner, sourceToken, user := testutil.Key(0x20), testutil.Key(0x22), testutil.Key(0x23)

	inst, err := assembler.AddBudget(ctx, 250_000, sourceOwner, sourceToken, user)
	if err != nil {
		t.Fatalf("add budget: %v", err)
	}
	metas := inst.Accounts()
	if len(metas) != 6 {
		t.Fatalf("account count: got %d, want 6", len(metas))
	}
	checkMeta(t, metas, 0, solana.TokenProgramID, false, false)
	checkMeta(t, metas, 1, ctx.MarketAccount, true, false)
	checkMeta(t, metas, 2, ctx.MarketVault, true, false)
	checkMeta(t, metas, 3, user, true, false)
	checkMeta(t, metas, 4, sourceOwner, false, true)
	checkMeta(t, metas, 5, sourceToken, true, false)

	op, err := schema.Decode(payload(t, inst))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if ab, ok := op.(schema.AddBudget); !ok || ab.Amount != 250_000 {
		t.Errorf("decoded %T %+v, want AddBudget{250000}", op, op)
	}
}

func TestWithdrawBudgetAccounts(t *testing.T) {
	ctx := testutil.Context()
	target, owner, user := testutil.Key(0x24), testutil.Key(0x21), testutil.Key(0x20)

	inst, err := assembler.WithdrawBudget(ctx, 100_000, target, owner, user)
	if err != nil {
		t.Fatalf("withdraw budget: %v", err)
	}
	metas := inst.Accounts()
	if len(metas) != 7 {
		t.Fatalf("account count: got %d, want 7", len(metas))
	}
	checkMeta(t, metas, 0, solana.TokenProgramID, false, false)
	checkMeta(t, metas, 1, ctx.MarketAccount, true, false)
	checkMeta(t, metas, 2, ctx.MarketSignerAccount, false, false)
	checkMeta(t, metas, 3, ctx.MarketVault, true, false)
	checkMeta(t, metas, 4, owner, false, true)
	checkMeta(t, metas, 5, user, true, false)
	checkMeta(t, metas, 6, target, true, false)
}

func TestCloseAccountAccounts(t *testing.T) {
	ctx := testutil.Context()
	user, owner, target := testutil.Key(0x20), testutil.Key(0x21), testutil.Key(0x25)

	inst, err := assembler.CloseAccount(ctx, user, owner, target)
	if err != nil {
		t.Fatalf("close account: %v", err)
	}
	metas := inst.Accounts()
	if len(metas) != 3 {
		t.Fatalf("account count: got %d, want 3", len(metas))
	}
	checkMeta(t, metas, 0, user, true, false)
	checkMeta(t, metas, 1, owner, false, true)
	checkMeta(t, metas, 2, target, true, false)
}

func TestTransferUserAccountAccounts(t *testing.T) {
	ctx := testutil.Context()
	user, owner, newOwner := testutil.Key(0x20), testutil.Key(0x21), testutil.Key(0x26)

	inst, err := assembler.TransferUserAccount(ctx, user, owner, newOwner)
	if err != nil {
		t.Fatalf("transfer user account: %v", err)
	}
	metas := inst.Accounts()
	if len(metas) != 3 {
		t.Fatalf("account count: got %d, want 3", len(metas))
	}
	checkMeta(t, metas, 0, owner, false, true)
	checkMeta(t, metas, 1, user, true, false)
	checkMeta(t, metas, 2, newOwner, false, false)
}

// TransferPosition has no paged or optional segments: exactly the two
// owner/account pairs, both owners signing.
func TestTransferPositionAccounts(t *testing.T) {
	ctx := testutil.Context(testutil.Instance(0x10, 3))
	srcOwner, src := testutil.Key(0x21), testutil.Key(0x20)
	dstOwner, dst := testutil.Key(0x28), testutil.Key(0x27)

	inst, err := assembler.TransferPosition(ctx, 9, src, srcOwner, dst, dstOwner)
	if err != nil {
		t.Fatalf("transfer position: %v", err)
	}
	metas := inst.Accounts()
	if len(metas) != 4 {
		t.Fatalf("account count: got %d, want 4", len(metas))
	}
	checkMeta(t, metas, 0, srcOwner, false, true)
	checkMeta(t, metas, 1, src, true, false)
	checkMeta(t, metas, 2, dstOwner, false, true)
	checkMeta(t, metas, 3, dst, true, false)

	op, err := schema.Decode(payload(t, inst))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if tp, ok := op.(schema.TransferPosition); !ok || tp.PositionIndex != 9 {
		t.Errorf("decoded %T %+v, want TransferPosition{9}", op, op)
	}
}
