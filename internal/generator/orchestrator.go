package generator

import (
	"fmt"
	"sync"
	"time"
)

// Orchestrator coordinates generation runs across many locations and
// streams their output into the shared per-table CSV files. Each
// location is one independent deterministic run, so locations fan out
// across workers with no coordination beyond the table writers' locks.
type Orchestrator struct {
	config       OrchestratorConfig
	verbose      bool
	showProgress bool
}

// OrchestratorConfig holds settings for a multi-location run
type OrchestratorConfig struct {
	Locations   []string  // location identities, one run each
	HorizonDays int       // days of history per location
	AsOf        time.Time // final generated day

	// Base params applied to every location; the identity field is
	// overwritten per run.
	Params Params

	OutputDir string

	// Performance settings
	Workers int // Number of parallel workers (0 = auto-detect CPUs)

	// Output settings
	Compress bool // Enable xz compression (creates .csv.xz files)
}

// GenerationResult holds statistics from the generation run
type GenerationResult struct {
	LocationCount int
	SalesBuckets  int64
	LaborRows     int64
	ItemMixRows   int64
	InventoryRows int64
	Duration      time.Duration
	OutputDir     string
}

// OrchestratorOptions holds optional settings for the orchestrator
type OrchestratorOptions struct {
	Verbose      bool
	ShowProgress bool
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(config OrchestratorConfig, opts OrchestratorOptions) (*Orchestrator, error) {
	if len(config.Locations) == 0 {
		return nil, fmt.Errorf("no locations configured")
	}

	// Validate once up front with a representative identity so a bad
	// config fails before any files are created.
	probe := config.Params
	probe.Identity = config.Locations[0]
	probe.HorizonDays = config.HorizonDays
	probe.AsOf = config.AsOf
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	return &Orchestrator{
		config:       config,
		verbose:      opts.Verbose,
		showProgress: opts.ShowProgress,
	}, nil
}

// GenerateAll runs every configured location and writes the four table
// files under the output directory.
func (o *Orchestrator) GenerateAll() (*GenerationResult, error) {
	startTime := time.Now()

	if o.config.Compress {
		if err := CheckXZAvailable(); err != nil {
			return nil, err
		}
	}

	writers, err := newDatasetWriters(o.config.OutputDir, o.config.Compress)
	if err != nil {
		return nil, err
	}

	workerCount := GetWorkerCount(o.config.Workers)
	if workerCount > len(o.config.Locations) {
		workerCount = len(o.config.Locations)
	}
	partitions := PartitionLocations(o.config.Locations, workerCount)

	o.log("Generating %d days for %d locations using %d workers...",
		o.config.HorizonDays, len(o.config.Locations), workerCount)

	var progress *AggregatedProgressReporter
	if o.showProgress {
		progress = NewAggregatedProgressReporter(AggregatedProgressConfig{
			Total:       EstimateRowCount(o.baseParams(""), len(o.config.Locations)),
			Label:       "  Rows",
			WorkerCount: workerCount,
		})
		progress.Start()
	}

	var wg sync.WaitGroup
	results := make([]WorkerResult, workerCount)
	errChan := make(chan error, workerCount)

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			workerStart := time.Now()
			var written int64

			for _, location := range partitions[workerID] {
				ds, err := Generate(o.baseParams(location))
				if err != nil {
					errChan <- fmt.Errorf("worker %d: location %s: %w", workerID, location, err)
					return
				}

				n, err := writers.WriteDataset(ds)
				if err != nil {
					errChan <- fmt.Errorf("worker %d: location %s: %w", workerID, location, err)
					return
				}
				written += n

				if progress != nil {
					progress.ReportProgress(workerID, written)
				}
			}

			results[workerID] = WorkerResult{
				WorkerID:  workerID,
				Locations: len(partitions[workerID]),
				RowCount:  written,
				Duration:  time.Since(workerStart),
			}
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if progress != nil {
			progress.Finish()
		}
		writers.Close()
		return nil, err
	}

	if progress != nil {
		progress.Finish()
	}

	if err := writers.Close(); err != nil {
		return nil, err
	}

	result := &GenerationResult{
		LocationCount: len(o.config.Locations),
		SalesBuckets:  writers.sales.RowCount(),
		LaborRows:     writers.labor.RowCount(),
		ItemMixRows:   writers.itemMix.RowCount(),
		InventoryRows: writers.inventory.RowCount(),
		Duration:      time.Since(startTime),
		OutputDir:     o.config.OutputDir,
	}
	return result, nil
}

// baseParams builds the per-location run parameters.
func (o *Orchestrator) baseParams(location string) Params {
	p := o.config.Params
	p.Identity = location
	p.HorizonDays = o.config.HorizonDays
	p.AsOf = o.config.AsOf
	return p
}

// log prints a message if verbose mode is enabled
func (o *Orchestrator) log(format string, args ...interface{}) {
	if o.verbose {
		fmt.Printf(format+"\n", args...)
	}
}

// PrintSummary prints a summary of the generation results
func PrintSummary(result *GenerationResult) {
	fmt.Println()
	fmt.Println("=== Generation Complete ===")
	fmt.Printf("Locations:      %d\n", result.LocationCount)
	fmt.Printf("Sales buckets:  %d\n", result.SalesBuckets)
	fmt.Printf("Labor rows:     %d\n", result.LaborRows)
	fmt.Printf("Item mix rows:  %d\n", result.ItemMixRows)
	fmt.Printf("Inventory rows: %d\n", result.InventoryRows)
	fmt.Printf("Duration:       %s\n", result.Duration.Round(time.Millisecond))
	fmt.Println()
}
