package generator

import (
	"runtime"
	"sort"
	"time"
)

// WorkerResult contains results from a completed per-location worker
type WorkerResult struct {
	WorkerID  int
	Locations int
	RowCount  int64
	Duration  time.Duration
}

// GetWorkerCount returns the number of workers to use.
// If configured workers is 0, auto-detects using runtime.NumCPU().
func GetWorkerCount(configured int) int {
	if configured > 0 {
		return configured
	}
	cpus := runtime.NumCPU()
	if cpus < 1 {
		return 1
	}
	return cpus
}

// PartitionLocations distributes location identities across workers
// round-robin over the sorted list. Sorting first keeps the assignment
// deterministic regardless of input order; each location's output is
// already independent of every other's, so any split is correct.
func PartitionLocations(locations []string, workerCount int) [][]string {
	if workerCount <= 0 {
		workerCount = 1
	}

	sorted := make([]string, len(locations))
	copy(sorted, locations)
	sort.Strings(sorted)

	parts := make([][]string, workerCount)
	for i, loc := range sorted {
		idx := i % workerCount
		parts[idx] = append(parts[idx], loc)
	}
	return parts
}

// EstimateRowCount estimates the total rows one generation run will
// emit across all four tables, for progress reporting.
func EstimateRowCount(p Params, numLocations int) int64 {
	perDay := int64(p.Window.Slots() + 1 + len(p.Menu) + len(p.Ingredients))
	return int64(numLocations) * int64(p.HorizonDays) * perDay
}
