package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corvusglyph/seedreaper/internal/config"
	"github.com/corvusglyph/seedreaper/internal/finder"
	"github.com/corvusglyph/seedreaper/internal/logging"
	"github.com/corvusglyph/seedreaper/internal/record"
)

var (
	verbose     bool
	maxRolls    uint8
	modeFlag    string
	workerCount int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seedreaper <directory>",
	Short: "Recover the group seed behind a cohort of decoded entity records",
	Long: `seedreaper inverts a three-level xoroshiro128+ spawn pipeline to
recover the 64-bit group seed that produced a small cohort (2-4) of
decoded entity records found in the given directory.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	RunE: runSearch,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().Uint8Var(&maxRolls, "max-rolls", 32, "maximum personality re-rolls to try (R)")
	rootCmd.Flags().StringVar(&modeFlag, "mode", "multi,single", "comma-separated spawner modes to accept: multi,single,mixed")
	rootCmd.Flags().IntVar(&workerCount, "workers", 0, "entity-seed search worker count (0 = CPU count)")
}

func parseModes(s string) (config.Modes, error) {
	var modes config.Modes
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "multi":
			modes |= config.Modes(config.ModeMulti)
		case "single":
			modes |= config.Modes(config.ModeSingle)
		case "mixed":
			modes |= config.Modes(config.ModeMixed)
		case "":
			continue
		default:
			return 0, fmt.Errorf("unknown spawner mode %q", part)
		}
	}
	if modes == 0 {
		return 0, errors.New("no spawner modes selected")
	}
	return modes, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	modes, err := parseModes(modeFlag)
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.MaxRolls = maxRolls
	cfg.Modes = modes
	if workerCount > 0 {
		cfg.Workers = workerCount
	}

	cohort, err := record.LoadDirectory(dir, record.DefaultDecoder, record.LoadOptions{})
	if err != nil {
		if errors.Is(err, record.ErrInsufficientInput) || errors.Is(err, record.ErrExcessInput) {
			return err
		}
		return fmt.Errorf("loading entity records: %w", err)
	}

	logger.Info("searching for group seed",
		zap.Int("cohort_size", len(cohort)),
		zap.Uint8("max_rolls", cfg.MaxRolls),
		zap.Int("workers", cfg.Workers))

	result, ok, err := finder.Find(cmd.Context(), logger, cohort, cfg)
	if err != nil {
		return fmt.Errorf("searching for group seed: %w", err)
	}
	if !ok {
		return errNoSeedFound
	}

	logger.Info("group seed found",
		zap.Int("first_index", result.FirstIndex),
		zap.Uint8("rolls", result.Rolls))
	fmt.Println(strconv.FormatUint(result.GroupSeed, 10))
	return nil
}

var errNoSeedFound = errors.New("no group seed found for this cohort")

func main() {
	ctx := context.Background()
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errNoSeedFound) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
