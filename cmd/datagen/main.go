package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tbarrett/bankfixtures/internal/config"
	"github.com/tbarrett/bankfixtures/internal/generator"
	"github.com/tbarrett/bankfixtures/internal/logging"
)

func main() {
	var (
		profilePath  = flag.String("profile", "", "path to a YAML generation profile")
		users        = flag.Int("users", 0, "number of users to generate")
		accounts     = flag.Int("accounts-per-user", 0, "number of accounts per user")
		transactions = flag.Int("transactions-per-account", 0, "number of transactions per account")
		payees       = flag.Int("payees", 0, "number of payees to generate")
		seed         = flag.Int64("seed", 0, "random seed for deterministic generation (0 = time-derived)")
		outputDir    = flag.String("output-dir", "", "directory to write the fixture files")
		writeStdout  = flag.Bool("stdout", false, "write combined dataset to stdout instead of files")
	)
	flag.Parse()

	cfg, err := config.Load(*profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration failed: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags win over profile and environment values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "users":
			cfg.Generation.Users = *users
		case "accounts-per-user":
			cfg.Generation.AccountsPerUser = *accounts
		case "transactions-per-account":
			cfg.Generation.TransactionsPerAccount = *transactions
		case "payees":
			cfg.Generation.Payees = *payees
		case "seed":
			cfg.Generation.Seed = *seed
		case "output-dir":
			cfg.OutputDir = *outputDir
		}
	})

	logger, err := logging.New(logging.Config(cfg.Logging))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(generator.Config{
		Users:                  cfg.Generation.Users,
		AccountsPerUser:        cfg.Generation.AccountsPerUser,
		TransactionsPerAccount: cfg.Generation.TransactionsPerAccount,
		Payees:                 cfg.Generation.Payees,
		Seed:                   cfg.Generation.Seed,
	})

	dataset, err := gen.Generate(ctx)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	if err := dataset.Validate(); err != nil {
		logger.Error("referential validation failed", zap.Error(err))
		os.Exit(1)
	}

	if *writeStdout {
		if err := json.NewEncoder(os.Stdout).Encode(dataset); err != nil {
			logger.Error("write dataset to stdout failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteDataset(dataset, cfg.OutputDir, logger); err != nil {
		logger.Error("write dataset failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("fixture generation complete",
		zap.Int("users", len(dataset.Identities)),
		zap.Int("accounts", len(dataset.Accounts)),
		zap.Int("transactions", len(dataset.Transactions)),
		zap.Int("payees", len(dataset.Payees)),
		zap.String("output_dir", cfg.OutputDir),
	)
}
