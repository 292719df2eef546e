package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"SeedScanner/internal/cli"
	"SeedScanner/pkg/appcfg"
	"SeedScanner/pkg/logx"
)

type flags struct {
	config    string
	address   string
	network   string
	scheme    string
	logLevel  string
	chunkSize int
}

func main() {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "seedscanner",
		Short: "Sequential BIP-39 mnemonic search for a target address",
		Long: `Walks 24-word mnemonics in counter order starting from zero, derives the
first receive addresses of each (m/84'/0'/0'/0/i by default) and stops when one
equals the target address.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cwd, _ := os.Getwd()
	rootCmd.Flags().StringVarP(&f.address, "address", "a", "", "Target address (required)")
	rootCmd.Flags().StringVarP(&f.config, "config", "c", filepath.Join(cwd, "configs", "app.yaml"), "App config file")
	rootCmd.Flags().StringVar(&f.network, "network", "", "Network: mainnet, testnet3, regtest, signet, simnet")
	rootCmd.Flags().StringVar(&f.scheme, "scheme", "", "Address scheme: p2wpkh or evm")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().IntVar(&f.chunkSize, "chunk-size", 0, "Attempts between throughput reports")
	_ = rootCmd.MarkFlagRequired("address")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, f flags) error {
	appConf, err := appcfg.Load(f.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config: %v (using defaults)\n", err)
		appConf = appcfg.Default()
	}

	if cmd.Flags().Changed("network") {
		appConf.Network = f.network
	}
	if cmd.Flags().Changed("scheme") {
		appConf.Scheme = f.scheme
	}
	if cmd.Flags().Changed("log-level") {
		appConf.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("chunk-size") {
		appConf.ChunkSize = f.chunkSize
	}

	if err := logx.Init(logx.Config{
		Level:                appConf.LogLevel,
		FilePath:             appConf.LogFile,
		HideSecretsInConsole: appConf.HideSecretsInConsole,
	}); err != nil {
		return fmt.Errorf("log init: %w", err)
	}
	defer logx.Close()

	logx.S().Infow("seedscanner started",
		"config", f.config,
		"lang", appConf.Language,
		"log_level", appConf.LogLevel,
		"scheme", appConf.Scheme,
		"network", appConf.Network,
		"chunk_size", appConf.ChunkSize,
		"hide_secrets_in_console", appConf.HideSecretsInConsole,
	)

	ctx, stop := cli.WithInterrupt(context.Background())
	defer stop()

	_, err = cli.NewRunner(appConf, f.address).Run(ctx)
	return err
}
