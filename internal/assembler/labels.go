package assembler

import "github.com/gagliardetto/solana-go"

// Well-known label accounts. The execution engine matches these identities
// byte-for-byte to tag fee routing and crank rewards, so they are pinned
// here as constants and resolved once at startup rather than derived per
// call.
const (
	tradeLabelAddress             = "5LuLKW8kgUr7RcECLxdkL5GqdM5WQd2BPeL1dGTFAgZc"
	liquidationLabelAddress       = "DCMWb5mw447DoFwVigLzSPjF4Bt3X6bpjL27afhC7AMz"
	fundingLabelAddress           = "EBDHYw7CF653Nixst7YadAU8JYifWzaL6GuB8dC4hXET"
	fundingExtractionLabelAddress = "A6NpQi2F7g2qtgBrzV3xrdXVYzzZJkMbvmr4GUq5bSq5"
)

var (
	// TradeLabel marks trade-fee routing on open, increase and close.
	TradeLabel = solana.MustPublicKeyFromBase58(tradeLabelAddress)

	// LiquidationLabel marks liquidation crank rewards.
	LiquidationLabel = solana.MustPublicKeyFromBase58(liquidationLabelAddress)

	// FundingLabel marks funding cranks.
	FundingLabel = solana.MustPublicKeyFromBase58(fundingLabelAddress)

	// FundingExtractionLabel marks per-account funding extraction.
	FundingExtractionLabel = solana.MustPublicKeyFromBase58(fundingExtractionLabelAddress)
)
