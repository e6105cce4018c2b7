package main

import (
	"encoding/hex"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"PerpRequest/internal/assembler"
	"PerpRequest/internal/directory"
	"PerpRequest/internal/observability"
)

var (
	directoryPath string
	marketID      string

	instanceIndex uint8
	maxIterations uint64
	targetAccount string
	userAccount   string
)

func init() {
	encodeCmd.PersistentFlags().StringVar(&directoryPath, "directory", "markets.json", "market directory file")
	encodeCmd.PersistentFlags().StringVar(&marketID, "market", "", "market entry ID (defaults to the first entry)")

	collectGarbageCmd.Flags().Uint8Var(&instanceIndex, "instance", 0, "instance index")
	collectGarbageCmd.Flags().Uint64Var(&maxIterations, "max-iterations", 100, "maximum freed slots per sweep")
	collectGarbageCmd.Flags().StringVar(&targetAccount, "target", "", "reward target token account (base58)")

	crankLiquidationCmd.Flags().Uint8Var(&instanceIndex, "instance", 0, "instance index")
	crankLiquidationCmd.Flags().StringVar(&targetAccount, "target", "", "reward target token account (base58)")

	extractFundingCmd.Flags().Uint8Var(&instanceIndex, "instance", 0, "instance index")
	extractFundingCmd.Flags().StringVar(&userAccount, "user-account", "", "user account (base58)")

	encodeCmd.AddCommand(collectGarbageCmd, crankLiquidationCmd, crankFundingCmd, extractFundingCmd)
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a request against a market from the directory file",
}

var collectGarbageCmd = &cobra.Command{
	Use:   "collect-garbage",
	Short: "Encode a position-book garbage collection sweep",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext()
		if err != nil {
			return err
		}
		target, err := solana.PublicKeyFromBase58(targetAccount)
		if err != nil {
			return fmt.Errorf("parse --target: %w", err)
		}
		inst, err := assembler.CollectGarbage(ctx, instanceIndex, maxIterations, target)
		if err != nil {
			return err
		}
		return printInstruction(inst)
	},
}

var crankLiquidationCmd = &cobra.Command{
	Use:   "crank-liquidation",
	Short: "Encode a liquidation sweep",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext()
		if err != nil {
			return err
		}
		target, err := solana.PublicKeyFromBase58(targetAccount)
		if err != nil {
			return fmt.Errorf("parse --target: %w", err)
		}
		inst, err := assembler.CrankLiquidation(ctx, instanceIndex, target)
		if err != nil {
			return err
		}
		return printInstruction(inst)
	},
}

var crankFundingCmd = &cobra.Command{
	Use:   "crank-funding",
	Short: "Encode a funding price-history crank",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext()
		if err != nil {
			return err
		}
		inst, err := assembler.CrankFunding(ctx)
		if err != nil {
			return err
		}
		return printInstruction(inst)
	},
}

var extractFundingCmd = &cobra.Command{
	Use:   "extract-funding",
	Short: "Encode a funding extraction for one user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext()
		if err != nil {
			return err
		}
		user, err := solana.PublicKeyFromBase58(userAccount)
		if err != nil {
			return fmt.Errorf("parse --user-account: %w", err)
		}
		inst, err := assembler.ExtractFunding(ctx, instanceIndex, user)
		if err != nil {
			return err
		}
		return printInstruction(inst)
	},
}

// loadContext loads the directory file and picks the requested market, or
// the first one when --market is not given.
func loadContext() (*assembler.MarketContext, error) {
	log := observability.NewLogger("perpreq")

	entries, err := directory.Load(directoryPath)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("directory %s has no markets", directoryPath)
	}

	if marketID == "" {
		log.Debug().Str("market_id", entries[0].ID.String()).Msg("using first directory entry")
		return &entries[0].Context, nil
	}

	id, err := uuid.Parse(marketID)
	if err != nil {
		return nil, fmt.Errorf("parse --market: %w", err)
	}
	for i := range entries {
		if entries[i].ID == id {
			log.Debug().Str("market_id", marketID).Msg("directory entry selected")
			return &entries[i].Context, nil
		}
	}
	return nil, fmt.Errorf("market %s not found in %s", marketID, directoryPath)
}

func printInstruction(inst solana.Instruction) error {
	data, err := inst.Data()
	if err != nil {
		return fmt.Errorf("instruction data: %w", err)
	}

	fmt.Printf("program: %s\n", inst.ProgramID())
	fmt.Printf("payload: %s\n", hex.EncodeToString(data))
	fmt.Println("accounts:")
	for i, meta := range inst.Accounts() {
		flags := "r-"
		if meta.IsWritable {
			flags = "rw"
		}
		signer := " "
		if meta.IsSigner {
			signer = "s"
		}
		fmt.Printf("  %2d  %s %s  %s\n", i, flags, signer, meta.PublicKey)
	}
	return nil
}
