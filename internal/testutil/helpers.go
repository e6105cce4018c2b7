package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"

	"PerpRequest/internal/assembler"
)

// Key returns a deterministic pubkey with every byte set to b. Tests rely
// on these being distinct and reproducible, never on them being on-curve.
func Key(b byte) solana.PublicKey {
	var pk solana.PublicKey
	for i := range pk {
		pk[i] = b
	}
	return pk
}

// Instance returns an instance fixture whose account is Key(tag) and whose
// pages are Key(tag+1), Key(tag+2), ... in declared order.
func Instance(tag byte, pages int) assembler.InstanceContext {
	instance := assembler.InstanceContext{InstanceAccount: Key(tag)}
	for i := 0; i < pages; i++ {
		instance.MemoryPages = append(instance.MemoryPages, Key(tag+1+byte(i)))
	}
	return instance
}

// Context returns a market context fixture with well-known tagged keys:
// program 0x01, signer 0x02, oracle 0x03, market 0x04, admin 0x05, vault
// 0x06, fee sink 0x07.
func Context(instances ...assembler.InstanceContext) *assembler.MarketContext {
	return &assembler.MarketContext{
		ProgramID:           Key(0x01),
		SignerNonce:         42,
		MarketSignerAccount: Key(0x02),
		OracleAccount:       Key(0x03),
		MarketAccount:       Key(0x04),
		AdminAccount:        Key(0x05),
		MarketVault:         Key(0x06),
		FeeSinkAccount:      Key(0x07),
		Instances:           instances,
	}
}

// GoldenFile reads a golden file from testdata/ and returns its contents.
func GoldenFile(t *testing.T, name string) []byte {
	t.Helper()
	path := filepath.Join("testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden file %s: %v", path, err)
	}
	return data
}

// AssertGolden compares data against a golden file. If UPDATE_GOLDEN=1 is
// set, the golden file is rewritten instead.
func AssertGolden(t *testing.T, name string, got []byte) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") == "1" {
		path := filepath.Join("testdata", name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, got, 0o644); err != nil {
			t.Fatalf("write golden file %s: %v", path, err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	want := GoldenFile(t, name)
	if string(got) != string(want) {
		t.Errorf("golden file mismatch for %s:\n--- want ---\n%s\n--- got ---\n%s",
			name, string(want), string(got))
	}
}
