package generator

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// AggregatedProgressReporter collects progress from multiple workers and
// displays combined progress. It receives updates through channels from
// parallel workers and aggregates them into a single progress display.
type AggregatedProgressReporter struct {
	mu sync.Mutex

	// Configuration
	output      io.Writer
	total       int64
	label       string
	workerCount int
	updateFreq  time.Duration
	isTTY       bool

	// State
	workerCounts []int64 // Count per worker
	current      int64   // Total count across all workers
	startTime    time.Time
	lastPrint    time.Time
	done         bool

	// Channels
	progressChan chan workerProgress
	doneChan     chan struct{}
}

// workerProgress represents a progress update from a worker
type workerProgress struct {
	workerID int
	count    int64
}

// AggregatedProgressConfig holds settings for the aggregated progress reporter
type AggregatedProgressConfig struct {
	// Total number of items to process (0 for indeterminate)
	Total int64
	// Label to display (e.g., "Rows")
	Label string
	// Number of workers reporting progress
	WorkerCount int
	// Output writer (defaults to os.Stderr)
	Output io.Writer
	// Minimum time between updates (defaults to 100ms)
	UpdateFrequency time.Duration
}

// NewAggregatedProgressReporter creates a new aggregated progress reporter
func NewAggregatedProgressReporter(cfg AggregatedProgressConfig) *AggregatedProgressReporter {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	updateFreq := cfg.UpdateFrequency
	if updateFreq == 0 {
		updateFreq = 100 * time.Millisecond
	}

	workerCount := cfg.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
	}

	// Check if output is a TTY
	isTTY := false
	if f, ok := output.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}

	return &AggregatedProgressReporter{
		output:       output,
		total:        cfg.Total,
		label:        cfg.Label,
		workerCount:  workerCount,
		updateFreq:   updateFreq,
		isTTY:        isTTY,
		workerCounts: make([]int64, workerCount),
		startTime:    time.Now(),
		progressChan: make(chan workerProgress, workerCount*100), // Buffered channel
		doneChan:     make(chan struct{}),
	}
}

// Start begins listening for progress updates from workers.
// Call this in a goroutine before workers start.
func (a *AggregatedProgressReporter) Start() {
	go a.listen()
}

// listen processes incoming progress updates
func (a *AggregatedProgressReporter) listen() {
	ticker := time.NewTicker(a.updateFreq)
	defer ticker.Stop()

	for {
		select {
		case update := <-a.progressChan:
			a.mu.Lock()
			if update.workerID >= 0 && update.workerID < len(a.workerCounts) {
				a.workerCounts[update.workerID] = update.count
				a.current = 0
				for _, c := range a.workerCounts {
					a.current += c
				}
			}
			a.mu.Unlock()

		case <-ticker.C:
			a.mu.Lock()
			if !a.done {
				a.render()
			}
			a.mu.Unlock()

		case <-a.doneChan:
			// Drain any remaining updates
			for {
				select {
				case update := <-a.progressChan:
					a.mu.Lock()
					if update.workerID >= 0 && update.workerID < len(a.workerCounts) {
						a.workerCounts[update.workerID] = update.count
						a.current = 0
						for _, c := range a.workerCounts {
							a.current += c
						}
					}
					a.mu.Unlock()
				default:
					return
				}
			}
		}
	}
}

// ReportProgress sends a progress update from a worker.
// This is safe to call from multiple goroutines.
func (a *AggregatedProgressReporter) ReportProgress(workerID int, count int64) {
	select {
	case a.progressChan <- workerProgress{workerID: workerID, count: count}:
	default:
		// Channel full, skip this update (next one will catch up)
	}
}

// render outputs the current aggregated progress
func (a *AggregatedProgressReporter) render() {
	now := time.Now()
	if now.Sub(a.lastPrint) < a.updateFreq {
		return
	}
	a.lastPrint = now

	elapsed := time.Since(a.startTime)
	rate := float64(a.current) / elapsed.Seconds()
	if elapsed.Seconds() < 0.01 {
		rate = 0
	}

	var sb strings.Builder

	if a.isTTY {
		sb.WriteString("\r")
	}

	if a.label != "" {
		sb.WriteString(a.label)
		sb.WriteString(": ")
	}

	if a.total > 0 {
		pct := float64(a.current) / float64(a.total) * 100
		sb.WriteString(fmt.Sprintf("%d/%d (%.1f%%)", a.current, a.total, pct))

		if a.isTTY {
			sb.WriteString(" ")
			barWidth := 20
			filled := int(float64(barWidth) * float64(a.current) / float64(a.total))
			if filled > barWidth {
				filled = barWidth
			}
			sb.WriteString("[")
			sb.WriteString(strings.Repeat("=", filled))
			if filled < barWidth {
				sb.WriteString(">")
				sb.WriteString(strings.Repeat(" ", barWidth-filled-1))
			}
			sb.WriteString("]")
		}

		if rate > 0 && a.current < a.total {
			remaining := float64(a.total-a.current) / rate
			eta := time.Duration(remaining * float64(time.Second))
			sb.WriteString(fmt.Sprintf(" ETA: %s", formatDuration(eta)))
		}
	} else {
		sb.WriteString(fmt.Sprintf("%d", a.current))
	}

	sb.WriteString(fmt.Sprintf(" (%.0f/s) [%d workers]", rate, a.workerCount))

	if a.isTTY {
		sb.WriteString("\033[K")
	} else {
		sb.WriteString("\n")
	}

	fmt.Fprint(a.output, sb.String())
}

// Finish completes the aggregated progress and prints final stats
func (a *AggregatedProgressReporter) Finish() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.done {
		return
	}
	a.done = true

	// Signal listener to stop
	close(a.doneChan)

	// Final count
	a.current = 0
	for _, c := range a.workerCounts {
		a.current += c
	}

	elapsed := time.Since(a.startTime)
	rate := float64(a.current) / elapsed.Seconds()
	if elapsed.Seconds() < 0.01 {
		rate = 0
	}

	var sb strings.Builder

	if a.isTTY {
		sb.WriteString("\r")
	}

	if a.label != "" {
		sb.WriteString(a.label)
		sb.WriteString(": ")
	}

	sb.WriteString(fmt.Sprintf("%d items in %s (%.0f/s) [%d workers]",
		a.current,
		formatDuration(elapsed),
		rate,
		a.workerCount))

	if a.isTTY {
		sb.WriteString("\033[K")
	}
	sb.WriteString("\n")

	fmt.Fprint(a.output, sb.String())
}
