package assembler_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
)

func checkMeta(t *testing.T, metas []*solana.AccountMeta, i int, key solana.PublicKey, writable, signer bool) {
	t.Helper()
	if i >= len(metas) {
		t.Fatalf("account %d: list has only %d entries", i, len(metas))
	}
	m := metas[i]
	if !m.PublicKey.Equals(key) {
		t.Errorf("account %d: got %s, want %s", i, m.PublicKey, key)
	}
	if m.IsWritable != writable {
		t.Errorf("account %d: writable = %v, want %v", i, m.IsWritable, writable)
	}
	if m.IsSigner != signer {
		t.Errorf("account %d: signer = %v, want %v", i, m.IsSigner, signer)
	}
}

func payload(t *testing.T, inst solana.Instruction) []byte {
	t.Helper()
	data, err := inst.Data()
	if err != nil {
		t.Fatalf("instruction data: %v", err)
	}
	return data
}
