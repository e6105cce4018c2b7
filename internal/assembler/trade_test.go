package assembler_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"

	"PerpRequest/internal/assembler"
	"PerpRequest/internal/schema"
	"PerpRequest/internal/testutil"
)

func positionFixture(instanceIndex uint8) *assembler.PositionInfo {
	return &assembler.PositionInfo{
		UserAccount:      testutil.Key(0x20),
		UserAccountOwner: testutil.Key(0x21),
		InstanceIndex:    instanceIndex,
		Side:             schema.SideLong,
	}
}

func TestOpenPositionFixedPrefix(t *testing.T) {
	ctx := testutil.Context(testutil.Instance(0x10, 2))
	inst, err := assembler.OpenPosition(ctx, positionFixture(0), 1_000, 5<<32, 47<<32, 1<<31, nil, nil)
	if err != nil {
		t.Fatalf("open position: %v", err)
	}
	if inst.ProgramID() != ctx.ProgramID {
		t.Errorf("program: got %s, want %s", inst.ProgramID(), ctx.ProgramID)
	}

	metas := inst.Accounts()
	if len(metas) != 13 {
		t.Fatalf("account count: got %d, want 13", len(metas))
	}
	checkMeta(t, metas, 0, solana.TokenProgramID, false, false)
	checkMeta(t, metas, 1, solana.SysVarClockPubkey, false, false)
	checkMeta(t, metas, 2, ctx.MarketAccount, true, false)
	checkMeta(t, metas, 3, ctx.Instances[0].InstanceAccount, true, false)
	checkMeta(t, metas, 4, ctx.MarketSignerAccount, false, false)
	checkMeta(t, metas, 5, ctx.MarketVault, true, false)
	checkMeta(t, metas, 6, ctx.FeeSinkAccount, true, false)
	checkMeta(t, metas, 7, testutil.Key(0x21), false, true)
	checkMeta(t, metas, 8, testutil.Key(0x20), true, false)
	checkMeta(t, metas, 9, assembler.TradeLabel, false, false)
	checkMeta(t, metas, 10, ctx.OracleAccount, false, false)
	checkMeta(t, metas, 11, ctx.Instances[0].MemoryPages[0], true, false)
	checkMeta(t, metas, 12, ctx.Instances[0].MemoryPages[1], true, false)
}

func TestOpenPositionOptionalSegments(t *testing.T) {
	discount := &assembler.DiscountAccount{
		Owner:   testutil.Key(0x30),
		Address: testutil.Key(0x31),
	}
	referrer := testutil.Key(0x32)

	cases := []struct {
		name     string
		discount *assembler.DiscountAccount
		referrer *solana.PublicKey
		extra    int
	}{
		{"none", nil, nil, 0},
		{"discount only", discount, nil, 2},
		{"referral only", nil, &referrer, 1},
		{"both", discount, &referrer, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testutil.Context(testutil.Instance(0x10, 1))
			inst, err := assembler.OpenPosition(ctx, positionFixture(0), 1_000, 5<<32, 47<<32, 1<<31, tc.discount, tc.referrer)
			if err != nil {
				t.Fatalf("open position: %v", err)
			}
			metas := inst.Accounts()
			base := 12 // fixed prefix + 1 page
			if len(metas) != base+tc.extra {
				t.Fatalf("account count: got %d, want %d", len(metas), base+tc.extra)
			}
			at := base
			if tc.discount != nil {
				checkMeta(t, metas, at, tc.discount.Address, false, false)
				checkMeta(t, metas, at+1, tc.discount.Owner, false, true)
				at += 2
			}
			if tc.referrer != nil {
				checkMeta(t, metas, at, *tc.referrer, true, false)
			}
		})
	}
}

func TestOpenPositionInvalidInstanceIndex(t *testing.T) {
	ctx := testutil.Context(testutil.Instance(0x10, 1))
	_, err := assembler.OpenPosition(ctx, positionFixture(3), 1_000, 5<<32, 47<<32, 1<<31, nil, nil)
	if !errors.Is(err, assembler.ErrInvalidInstanceIndex) {
		t.Errorf("got %v, want ErrInvalidInstanceIndex", err)
	}
}

func TestOpenPositionIncompleteDiscountPair(t *testing.T) {
	ctx := testutil.Context(testutil.Instance(0x10, 1))
	discount := &assembler.DiscountAccount{Address: testutil.Key(0x31)} // owner missing
	_, err := assembler.OpenPosition(ctx, positionFixture(0), 1_000, 5<<32, 47<<32, 1<<31, discount, nil)
	if !errors.Is(err, assembler.ErrMissingOptionalAccount) {
		t.Errorf("got %v, want ErrMissingOptionalAccount", err)
	}
}

func TestOpenPositionDeterminism(t *testing.T) {
	ctx := testutil.Context(testutil.Instance(0x10, 2))
	referrer := testutil.Key(0x32)
	discount := &assembler.DiscountAccount{Owner: testutil.Key(0x30), Address: testutil.Key(0x31)}

	first, err := assembler.OpenPosition(ctx, positionFixture(0), 1_000, 5<<32, 47<<32, 1<<31, discount, &referrer)
	if err != nil {
		t.Fatalf("open position: %v", err)
	}
	second, err := assembler.OpenPosition(ctx, positionFixture(0), 1_000, 5<<32, 47<<32, 1<<31, discount, &referrer)
	if err != nil {
		t.Fatalf("open position again: %v", err)
	}

	if !bytes.Equal(payload(t, first), payload(t, second)) {
		t.Error("payloads differ between identical calls")
	}
	a, b := first.Accounts(), second.Accounts()
	if len(a) != len(b) {
		t.Fatalf("account counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if *a[i] != *b[i] {
			t.Errorf("account %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestIncreasePositionFixedPrefix(t *testing.T) {
	ctx := testutil.Context(testutil.Instance(0x10, 1))
	inst, err := assembler.IncreasePosition(ctx, 500, 3<<32, 0, 7, testutil.Key(0x21), testutil.Key(0x20), 50<<32, 1<<30, nil, nil)
	if err != nil {
		t.Fatalf("increase position: %v", err)
	}
	metas := inst.Accounts()
	if len(metas) != 12 {
		t.Fatalf("account count: got %d, want 12", len(metas))
	}
	// The instance account follows the fee sink here, unlike OpenPosition.
	checkMeta(t, metas, 3, ctx.MarketSignerAccount, false, false)
	checkMeta(t, metas, 6, ctx.Instances[0].InstanceAccount, true, false)
	checkMeta(t, metas, 7, testutil.Key(0x21), false, true)
	checkMeta(t, metas, 9, assembler.TradeLabel, false, false)
	checkMeta(t, metas, 10, ctx.OracleAccount, false, false)
	checkMeta(t, metas, 11, ctx.Instances[0].MemoryPages[0], true, false)
}

func TestClosePositionFixedPrefix(t *testing.T) {
	ctx := testutil.Context(testutil.Instance(0x10, 1))
	inst, err := assembler.ClosePosition(ctx, positionFixture(0), 7, 400, 123, 48<<32, 1<<29, nil, nil)
	if err != nil {
		t.Fatalf("close position: %v", err)
	}
	metas := inst.Accounts()
	if len(metas) != 12 {
		t.Fatalf("account count: got %d, want 12", len(metas))
	}
	// Oracle precedes the owner/user pair here; the trade label closes the
	// fixed prefix.
	checkMeta(t, metas, 7, ctx.OracleAccount, false, false)
	checkMeta(t, metas, 8, testutil.Key(0x21), false, true)
	checkMeta(t, metas, 9, testutil.Key(0x20), true, false)
	checkMeta(t, metas, 10, assembler.TradeLabel, false, false)
	checkMeta(t, metas, 11, ctx.Instances[0].MemoryPages[0], true, false)
}

func TestClosePositionPayloadKind(t *testing.T) {
	ctx := testutil.Context(testutil.Instance(0x10, 1))
	inst, err := assembler.ClosePosition(ctx, positionFixture(0), 7, 400, 123, 48<<32, 1<<29, nil, nil)
	if err != nil {
		t.Fatalf("close position: %v", err)
	}
	data := payload(t, inst)
	op, err := schema.Decode(data)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	cp, ok := op.(schema.ClosePosition)
	if !ok {
		t.Fatalf("decoded %T, want ClosePosition", op)
	}
	if cp.PositionIndex != 7 || cp.ClosingCollateral != 400 || cp.ClosingBaseAmount != 123 {
		t.Errorf("decoded arguments mismatch: %+v", cp)
	}
}
