package cmd

import (
	"fmt"
	"os"
	"strings"

	"diff-analyzer/core/config"
	"diff-analyzer/core/logger"
	"diff-analyzer/core/registry"
	"diff-analyzer/core/render"
	"diff-analyzer/feature/difficulty"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the chart command
	sortBy        string
	filterUnknown bool
)

// chartCmd prints the difficulty chart for one difficulty file.
var chartCmd = &cobra.Command{
	Use:   "chart <difficulty-file>",
	Short: "Chart every enemy a difficulty file can spawn",
	Long: `Chart reads a difficulty file, reconciles it against the vanilla and mod
baseline descriptor registries, and prints one row per enemy and pool.

Values taken from a baseline rather than a difficulty override carry a
trailing (*). Attributes replaced by a dynamic expression show as
"Mutated". An enemy appears in the "unknown" pool when the file mentions
its descriptor but no pool contains it (could be a mistake, could be an
enemy used in a wavespawner, or one moved in or out by mutation).

Examples:
  # Chart sorted alphabetically by enemy (default)
  diff-analyzer chart hazard6.json

  # Chart sorted by some other column
  diff-analyzer chart hazard6.json --sort-by Rarity

  # Hide enemies that belong to no known pool
  diff-analyzer chart hazard6.json --filter-unknown`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	// Add flags
	chartCmd.Flags().StringVar(&sortBy, "sort-by", difficulty.DefaultSortField,
		"The chart will be sorted by this column ("+strings.Join(difficulty.SortFields(), ", ")+")")
	chartCmd.Flags().BoolVar(&filterUnknown, "filter-unknown", false,
		"If specified, will filter enemies with unknown pool")

	// Add chart to root
	RootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	// Reject a bad sort field before any file is opened
	if !difficulty.ValidSortField(sortBy) {
		return fmt.Errorf("unsupported sort field %q (accepted: %s)",
			sortBy, strings.Join(difficulty.SortFields(), ", "))
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l)

	l.Info("Starting difficulty analysis", zap.String("file", args[0]))

	// Read, repair and parse the difficulty file
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read difficulty file: %w", err)
	}
	doc, err := difficulty.Parse([]byte(difficulty.Repair(string(raw))))
	if err != nil {
		return err
	}

	// Load the baseline registries
	vanilla, err := registry.Load(cfg.Registry.VanillaPath)
	if err != nil {
		return err
	}
	mod, err := registry.Load(cfg.Registry.ModPath)
	if err != nil {
		return err
	}

	l.Info("Registries loaded",
		zap.Int("vanilla_descriptors", len(vanilla)),
		zap.Int("mod_descriptors", len(mod)),
	)

	// Build the chart
	svc := difficulty.NewService(l, vanilla, mod, difficulty.DefaultPoolConfig())
	rows, err := svc.BuildChart(doc, difficulty.ChartOptions{
		SortBy:        sortBy,
		FilterUnknown: filterUnknown,
	})
	if err != nil {
		return err
	}

	// Print the chart
	fmt.Printf("\nCHART FOR: %s\n", doc.Name)
	fmt.Println(render.Table(difficulty.ChartColumns, difficulty.RowCells(rows)))

	return nil
}
