package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bistroboard/demogen/internal/config"
	"github.com/bistroboard/demogen/internal/generator"
	"github.com/bistroboard/demogen/internal/generator/patterns"
	"github.com/bistroboard/demogen/internal/ui"
	"github.com/bistroboard/demogen/internal/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate restaurant operations datasets",
	Long: `Generate deterministic restaurant operations data as CSV files.

This command creates CSV files containing:
- Intraday sales buckets (15-minute resolution by default)
- Daily labor summaries (scheduled vs actual hours, cost, headcount)
- Daily menu item mix (quantity, revenue, margin, attach rate)
- Daily ingredient inventory (stock levels, usage, waste, restocks)

Each location is an independent deterministic stream: the same location
ID always produces byte-identical output regardless of worker count or
what other locations run alongside it.

Tunable pattern parameters are in internal/config/defaults.go; the most
common ones are exposed as flags or via a config file.

Example:
  demogen generate --locations 25 --days 365
  demogen generate --locations 3 --days 90 --as-of 2026-08-31
  demogen generate --config demogen.yaml`,
	Run: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&configFile, "config", "", "config file (YAML) with generate/database sections")
	generateCmd.Flags().Int("locations", config.NumLocations, "number of locations to generate")
	generateCmd.Flags().String("prefix", config.LocationPrefix, "location ID prefix (IDs are prefix-001, prefix-002, ...)")
	generateCmd.Flags().Int("days", config.HorizonDays, "days of history to generate per location")
	generateCmd.Flags().String("as-of", "", "final generated day, YYYY-MM-DD (default: today UTC)")
	generateCmd.Flags().String("output", "./output", "output directory for CSV files")
	generateCmd.Flags().Float64("base-sales", config.BaseDailySales, "baseline daily gross sales in dollars")
	generateCmd.Flags().Bool("compress", false, "compress output with xz (creates .csv.xz files)")
	generateCmd.Flags().Int("workers", 0, "number of parallel workers (0 = auto-detect CPUs)")

	// Flags override config-file values, which override defaults.
	viper.BindPFlag("generate.num_locations", generateCmd.Flags().Lookup("locations"))
	viper.BindPFlag("generate.location_prefix", generateCmd.Flags().Lookup("prefix"))
	viper.BindPFlag("generate.horizon_days", generateCmd.Flags().Lookup("days"))
	viper.BindPFlag("generate.as_of", generateCmd.Flags().Lookup("as-of"))
	viper.BindPFlag("generate.output_dir", generateCmd.Flags().Lookup("output"))
	viper.BindPFlag("generate.base_daily_sales", generateCmd.Flags().Lookup("base-sales"))
	viper.BindPFlag("generate.compress", generateCmd.Flags().Lookup("compress"))
	viper.BindPFlag("generate.num_workers", generateCmd.Flags().Lookup("workers"))
}

// loadConfig reads the optional config file and merges flag overrides.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildParams converts validated config into generator run parameters.
func buildParams(cfg *config.Config) generator.Params {
	p := generator.DefaultParams("", cfg.Generate.HorizonDays, cfg.AsOfDate())

	p.BaseDailySales = utils.FromFloat(cfg.Generate.BaseDailySales)
	p.LaborRatio = cfg.Generate.LaborRatio
	p.HourlyRate = cfg.Generate.HourlyRate
	p.WeekdayMinHours = cfg.Generate.WeekdayMinHours
	p.WeekendMinHours = cfg.Generate.WeekendMinHours

	p.Trend = generator.TrendConfig{
		RampEnd:    cfg.Generate.TrendRampEnd,
		SteadyEnd:  cfg.Generate.TrendSteadyEnd,
		RampRate:   cfg.Generate.TrendRampRate,
		SteadyRate: cfg.Generate.TrendSteadyRate,
		MatureRate: cfg.Generate.TrendMatureRate,
	}
	p.Window = patterns.ServiceWindow{
		OpenHour:    cfg.Generate.OpenHour,
		CloseHour:   cfg.Generate.CloseHour,
		SlotMinutes: cfg.Generate.SlotMinutes,
	}

	return p
}

func runGenerate(cmd *cobra.Command, args []string) {
	// Initialize UI
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	// Check xz availability if compression is requested
	if cfg.Generate.Compress {
		if err := generator.CheckXZAvailable(); err != nil {
			fmt.Fprintln(os.Stderr, u.Error("xz compression requested but xz is not available"))
			fmt.Fprintln(os.Stderr, "Install with: apt install xz-utils (Linux) or brew install xz (macOS)")
			os.Exit(1)
		}
	}

	locations := cfg.LocationIDs()
	asOf := cfg.AsOfDate()

	fmt.Println(u.Header("Restaurant Demo Data Generator"))
	fmt.Println()
	fmt.Println(u.KeyValue("Locations", fmt.Sprintf("%d (%s-001 .. %s-%03d)",
		len(locations), cfg.Generate.LocationPrefix, cfg.Generate.LocationPrefix, len(locations))))
	fmt.Println(u.KeyValue("Days", fmt.Sprintf("%d", cfg.Generate.HorizonDays)))
	fmt.Println(u.KeyValue("As of", asOf.Format("2006-01-02")))
	fmt.Println(u.KeyValue("Base sales", fmt.Sprintf("$%.2f/day", cfg.Generate.BaseDailySales)))
	fmt.Println(u.KeyValue("Output", cfg.Generate.OutputDir))
	if cfg.Generate.Compress {
		fmt.Println(u.KeyValue("Compression", "xz (.csv.xz)"))
	}
	workerCount := generator.GetWorkerCount(cfg.Generate.NumWorkers)
	if workerCount > len(locations) {
		workerCount = len(locations)
	}
	fmt.Println(u.KeyValue("Workers", fmt.Sprintf("%d", workerCount)))
	fmt.Println()

	orchestrator, err := generator.NewOrchestrator(generator.OrchestratorConfig{
		Locations:   locations,
		HorizonDays: cfg.Generate.HorizonDays,
		AsOf:        asOf,
		Params:      buildParams(cfg),
		OutputDir:   cfg.Generate.OutputDir,
		Workers:     cfg.Generate.NumWorkers,
		Compress:    cfg.Generate.Compress,
	}, generator.OrchestratorOptions{
		Verbose:      verbose,
		ShowProgress: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	spin := u.NewSpinner("Generating datasets")
	spin.Start()
	result, err := orchestrator.GenerateAll()
	if err != nil {
		spin.Error(err.Error())
		os.Exit(1)
	}
	spin.Success("complete")

	printGenerateSummary(u, result)
	fmt.Println()
	fmt.Println(u.Success("Output files written to: " + result.OutputDir))
}

// printGenerateSummary prints a styled generation summary
func printGenerateSummary(u *ui.UI, result *generator.GenerationResult) {
	items := []ui.KV{
		{Key: "Locations", Value: fmt.Sprintf("%d", result.LocationCount)},
		{Key: "Sales Buckets", Value: fmt.Sprintf("%d", result.SalesBuckets)},
		{Key: "Labor Rows", Value: fmt.Sprintf("%d", result.LaborRows)},
		{Key: "Item Mix Rows", Value: fmt.Sprintf("%d", result.ItemMixRows)},
		{Key: "Inventory Rows", Value: fmt.Sprintf("%d", result.InventoryRows)},
		{Key: "Duration", Value: result.Duration.Round(time.Millisecond).String()},
		{Key: "Status", Value: "Success"},
	}

	fmt.Println(u.SummaryBox("Generation Complete", items))
}
