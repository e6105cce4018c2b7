package directory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"PerpRequest/internal/assembler"
)

// MarketEntry is one market served by the external directory: a stable
// entry ID plus the assembled context the construction functions consume.
type MarketEntry struct {
	ID      uuid.UUID
	Context assembler.MarketContext
}

// --- JSON wire format ---
// These structs represent the directory document as served by the lookup
// service. Field names use snake_case to match the upstream producer;
// account fields are base58.

type documentJSON struct {
	Markets []marketJSON `json:"markets"`
}

type marketJSON struct {
	MarketID            string         `json:"market_id"`
	ProgramID           string         `json:"program_id"`
	SignerNonce         uint8          `json:"signer_nonce"`
	MarketSignerAccount string         `json:"market_signer_account"`
	OracleAccount       string         `json:"oracle_account"`
	MarketAccount       string         `json:"market_account"`
	AdminAccount        string         `json:"admin_account"`
	MarketVault         string         `json:"market_vault"`
	FeeSinkAccount      string         `json:"fee_sink_account"`
	Instances           []instanceJSON `json:"instances"`
}

type instanceJSON struct {
	InstanceAccount string   `json:"instance_account"`
	MemoryPages     []string `json:"memory_pages"`
}

// Load reads and parses a directory document from disk.
func Load(path string) ([]MarketEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	return Parse(data)
}

// Parse converts a directory document into market entries. Every account
// field is validated as base58; a bad field aborts the whole load.
func Parse(data []byte) ([]MarketEntry, error) {
	var doc documentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse directory: %w", err)
	}

	entries := make([]MarketEntry, 0, len(doc.Markets))
	for i, m := range doc.Markets {
		entry, err := parseMarket(m)
		if err != nil {
			return nil, fmt.Errorf("market %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseMarket(j marketJSON) (MarketEntry, error) {
	id, err := uuid.Parse(j.MarketID)
	if err != nil {
		return MarketEntry{}, fmt.Errorf("parse market_id: %w", err)
	}

	ctx := assembler.MarketContext{SignerNonce: j.SignerNonce}
	for _, f := range []struct {
		name  string
		value string
		dst   *solana.PublicKey
	}{
		{"program_id", j.ProgramID, &ctx.ProgramID},
		{"market_signer_account", j.MarketSignerAccount, &ctx.MarketSignerAccount},
		{"oracle_account", j.OracleAccount, &ctx.OracleAccount},
		{"market_account", j.MarketAccount, &ctx.MarketAccount},
		{"admin_account", j.AdminAccount, &ctx.AdminAccount},
		{"market_vault", j.MarketVault, &ctx.MarketVault},
		{"fee_sink_account", j.FeeSinkAccount, &ctx.FeeSinkAccount},
	} {
		key, err := parseKey(f.name, f.value)
		if err != nil {
			return MarketEntry{}, err
		}
		*f.dst = key
	}

	for i, inst := range j.Instances {
		parsed, err := parseInstance(inst)
		if err != nil {
			return MarketEntry{}, fmt.Errorf("instance %d: %w", i, err)
		}
		ctx.Instances = append(ctx.Instances, parsed)
	}

	return MarketEntry{ID: id, Context: ctx}, nil
}

func parseInstance(j instanceJSON) (assembler.InstanceContext, error) {
	account, err := parseKey("instance_account", j.InstanceAccount)
	if err != nil {
		return assembler.InstanceContext{}, err
	}
	instance := assembler.InstanceContext{InstanceAccount: account}
	for i, p := range j.MemoryPages {
		page, err := parseKey(fmt.Sprintf("memory_pages[%d]", i), p)
		if err != nil {
			return assembler.InstanceContext{}, err
		}
		instance.MemoryPages = append(instance.MemoryPages, page)
	}
	return instance, nil
}

func parseKey(field, value string) (solana.PublicKey, error) {
	if value == "" {
		return solana.PublicKey{}, fmt.Errorf("parse %s: empty", field)
	}
	key, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("parse %s: %w", field, err)
	}
	return key, nil
}
