package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"

	"github.com/bistroboard/demogen/internal/config"
	"github.com/bistroboard/demogen/internal/database"
	"github.com/bistroboard/demogen/internal/generator"
	"github.com/bistroboard/demogen/internal/ui"
)

var (
	loadDBConnection string
	loadInputDir     string
	loadMaxOpenConns int
	loadMaxIdleConns int
	loadSkipVerify   bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load CSV data into a MySQL/MariaDB database",
	Long: `Load generated CSV data into a MySQL/MariaDB database using LOAD DATA LOCAL INFILE.

This command performs bulk data loading with automatic parallelization.
It handles both plain CSV files and xz-compressed files (.csv.xz).

The load process:
1. Creates tables if they don't exist
2. Disables foreign key and unique checks for speed
3. Loads all tables in parallel with progress reporting
4. Creates indexes after loading
5. Verifies row counts and date ranges

Examples:
  demogen load --db "user:pass@tcp(localhost:3306)/demo"
  demogen load --db "user:pass@tcp(localhost:3306)/demo" --input ./my-data`,
	Run: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadDBConnection, "db", "", "database connection string (required)")
	loadCmd.Flags().StringVar(&loadInputDir, "input", "./output", "input directory containing CSV files")
	loadCmd.Flags().IntVar(&loadMaxOpenConns, "db-max-open", 10, "max open database connections")
	loadCmd.Flags().IntVar(&loadMaxIdleConns, "db-max-idle", 10, "max idle database connections")
	loadCmd.Flags().BoolVar(&loadSkipVerify, "skip-verify", false, "skip post-load verification queries")

	loadCmd.MarkFlagRequired("db")
}

// tableConfig holds metadata for loading a single table
type tableConfig struct {
	name    string
	csvFile string
	loadSQL string
}

// loadResult holds the result of loading a table
type loadResult struct {
	table    string
	rows     int64
	duration time.Duration
	err      error
}

// All tables with their LOAD DATA INFILE SQL. Every column is NOT NULL
// in the generated CSVs so no NULLIF handling is needed.
var tablesToLoad = []tableConfig{
	{
		name:    generator.TableSalesBuckets,
		csvFile: generator.TableSalesBuckets,
		loadSQL: `LOAD DATA LOCAL INFILE '%s'
INTO TABLE sales_buckets
FIELDS TERMINATED BY ','
ENCLOSED BY '"'
LINES TERMINATED BY '\n'
IGNORE 1 LINES
(location_id, ts, sales_gross, sales_net, tickets, covers,
 discounts, voids, comps, refunds,
 channel_dine_in, channel_pickup, channel_delivery)`,
	},
	{
		name:    generator.TableLaborDaily,
		csvFile: generator.TableLaborDaily,
		loadSQL: `LOAD DATA LOCAL INFILE '%s'
INTO TABLE labor_daily
FIELDS TERMINATED BY ','
ENCLOSED BY '"'
LINES TERMINATED BY '\n'
IGNORE 1 LINES
(location_id, date, scheduled_hours, actual_hours, labor_cost_est,
 overtime_hours, headcount)`,
	},
	{
		name:    generator.TableItemMixDaily,
		csvFile: generator.TableItemMixDaily,
		loadSQL: `LOAD DATA LOCAL INFILE '%s'
INTO TABLE item_mix_daily
FIELDS TERMINATED BY ','
ENCLOSED BY '"'
LINES TERMINATED BY '\n'
IGNORE 1 LINES
(location_id, date, item_id, item_name,
 qty, revenue_net, margin_est, attach_rate)`,
	},
	{
		name:    generator.TableInventory,
		csvFile: generator.TableInventory,
		loadSQL: `LOAD DATA LOCAL INFILE '%s'
INTO TABLE inventory_daily
FIELDS TERMINATED BY ','
ENCLOSED BY '"'
LINES TERMINATED BY '\n'
IGNORE 1 LINES
(location_id, date, item_id, item_name,
 stock_on_hand, stock_in, stock_out, waste_est, stockout_flag)`,
	},
}

func runLoad(cmd *cobra.Command, args []string) {
	// Initialize UI
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	fmt.Println(u.Header("Restaurant Demo Data Loader"))
	fmt.Println()
	fmt.Println(u.KeyValue("Database", maskDSN(loadDBConnection)))
	fmt.Println(u.KeyValue("Input", loadInputDir))
	fmt.Println(u.KeyValue("DB Pool", fmt.Sprintf("%d open / %d idle", loadMaxOpenConns, loadMaxIdleConns)))
	fmt.Println()

	// Validate input directory
	if err := validateInputDir(loadInputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Check xz availability if we have compressed files
	if hasCompressedFiles(loadInputDir) {
		if _, err := exec.LookPath("xz"); err != nil {
			fmt.Fprintln(os.Stderr, "Error: xz not found but compressed files detected")
			fmt.Fprintln(os.Stderr, "Install xz-utils (Linux) or xz (macOS via Homebrew)")
			os.Exit(1)
		}
	}

	pool, err := database.NewPool(config.DatabaseConfig{
		DSN:             ensureLocalInfileEnabled(loadDBConnection),
		Driver:          config.DBDriver,
		MaxOpenConns:    loadMaxOpenConns,
		MaxIdleConns:    loadMaxIdleConns,
		ConnMaxLifetime: config.DBConnMaxLifetime,
		ConnMaxIdleTime: config.DBConnMaxIdleTime,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Test connection
	ctx := context.Background()
	spin := u.NewSpinner("Connecting to database")
	spin.Start()
	if err := pool.Connect(ctx); err != nil {
		spin.Error("connection failed: " + err.Error())
		os.Exit(1)
	}
	spin.Success("connected!")

	// Create schema if needed
	spinTables := u.NewSpinner("Creating tables")
	spinTables.Start()
	if err := createTablesIfNotExist(ctx, pool); err != nil {
		spinTables.Error("failed: " + err.Error())
		os.Exit(1)
	}
	spinTables.Success("tables ready")

	// Disable checks for bulk loading
	if err := disableChecks(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Error disabling checks: %v\n", err)
		os.Exit(1)
	}

	// Load all tables in parallel
	u.Section("Loading data...")
	startTime := time.Now()
	results, loadErr := loadTablesParallel(ctx, pool, loadInputDir, u)
	loadDuration := time.Since(startTime)

	// Stop early if any table failed
	if loadErr != nil {
		fmt.Fprintln(os.Stderr, u.Error("Load stopped due to error"))
		printLoadSummary(u, results, loadDuration)
		os.Exit(1)
	}

	// Re-enable checks
	if err := enableChecks(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Error re-enabling checks: %v\n", err)
		os.Exit(1)
	}

	// Create indexes
	u.Section("Creating indexes...")
	if err := createIndexes(ctx, pool, u); err != nil {
		fmt.Fprintln(os.Stderr, u.Error("Error creating indexes: "+err.Error()))
		os.Exit(1)
	}

	// Verify what landed
	if loadSkipVerify {
		fmt.Println(u.Warning("Skipping post-load verification"))
	} else {
		u.Section("Verifying...")
		if err := verifyLoad(ctx, pool, u); err != nil {
			fmt.Fprintln(os.Stderr, u.Error("Verification failed: "+err.Error()))
			os.Exit(1)
		}
	}

	if verbose {
		stats := pool.Stats()
		fmt.Println(u.KeyValue("Queries", fmt.Sprintf("%d (%d failed)", stats.TotalQueries, stats.FailedQueries)))
		fmt.Println(u.KeyValue("Avg latency", stats.AvgLatency.String()))
	}

	// Print summary
	printLoadSummary(u, results, loadDuration)
}

// createTablesIfNotExist creates tables using CREATE TABLE IF NOT EXISTS
func createTablesIfNotExist(ctx context.Context, pool *database.Pool) error {
	content, err := schemaFS.ReadFile("schemas/schema_no_indexes.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	// Extract and modify CREATE TABLE statements
	lines := strings.Split(string(content), "\n")
	var currentStmt strings.Builder
	inCreateTable := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Skip comments, empty lines, DROP/USE/CREATE DATABASE statements
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(trimmed), "DROP ") ||
			strings.HasPrefix(strings.ToUpper(trimmed), "USE ") ||
			strings.HasPrefix(strings.ToUpper(trimmed), "CREATE DATABASE") {
			continue
		}

		// Track CREATE TABLE blocks
		if strings.HasPrefix(strings.ToUpper(trimmed), "CREATE TABLE") {
			inCreateTable = true
			// Add IF NOT EXISTS
			modified := strings.Replace(trimmed, "CREATE TABLE", "CREATE TABLE IF NOT EXISTS", 1)
			currentStmt.WriteString(modified)
			currentStmt.WriteString("\n")
			continue
		}

		if inCreateTable {
			currentStmt.WriteString(line)
			currentStmt.WriteString("\n")

			// Check if statement ends
			if strings.HasSuffix(trimmed, ";") {
				stmt := currentStmt.String()
				if _, err := pool.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("failed to create table: %w", err)
				}
				currentStmt.Reset()
				inCreateTable = false
			}
		}
	}

	return nil
}

// createIndexes creates indexes after data load
func createIndexes(ctx context.Context, pool *database.Pool, u *ui.UI) error {
	content, err := schemaFS.ReadFile("schemas/schema_indexes.sql")
	if err != nil {
		return fmt.Errorf("failed to read index schema: %w", err)
	}

	// Split into statements and execute
	statements := splitSQLStatements(string(content))

	// Count actual statements (excluding comments and USE)
	var validStmts []string
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" || strings.HasPrefix(stmt, "--") {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(stmt), "USE ") {
			continue
		}
		validStmts = append(validStmts, stmt)
	}

	total := len(validStmts)
	progress := u.NewIndexProgress(total)

	for i, stmt := range validStmts {
		progress.Update(i + 1)

		if _, err := pool.ExecContext(ctx, stmt); err != nil {
			// Ignore "already exists" errors for indexes and keys
			errStr := err.Error()
			if strings.Contains(errStr, "Duplicate") ||
				strings.Contains(errStr, "already exists") {
				continue
			}
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	progress.Complete()

	return nil
}

// verifyLoad runs sanity queries against the loaded tables
func verifyLoad(ctx context.Context, pool *database.Pool, u *ui.UI) error {
	q := database.NewQueries(pool)

	for _, tbl := range tablesToLoad {
		count, err := q.TableCount(ctx, tbl.name)
		if err != nil {
			return fmt.Errorf("%s: %w", tbl.name, err)
		}
		fmt.Println(u.KeyValue(tbl.name, formatNumber(count)+" rows"))
	}

	locations, err := q.LocationCount(ctx, generator.TableSalesBuckets)
	if err != nil {
		return err
	}
	fmt.Println(u.KeyValue("Locations", fmt.Sprintf("%d", locations)))

	first, last, err := q.DateRange(ctx, generator.TableSalesBuckets, "ts")
	if err != nil {
		return err
	}
	fmt.Println(u.KeyValue("Date range",
		first.Format("2006-01-02")+" to "+last.Format("2006-01-02")))

	return nil
}

// loadTablesParallel loads all tables concurrently with fail-fast behavior
func loadTablesParallel(ctx context.Context, pool *database.Pool, inputDir string, u *ui.UI) ([]loadResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]loadResult, len(tablesToLoad))
	var mu sync.Mutex
	var firstErr error
	var wg sync.WaitGroup

	for i, table := range tablesToLoad {
		wg.Add(1)
		go func(idx int, tbl tableConfig) {
			defer wg.Done()

			// Check if cancelled before starting
			select {
			case <-ctx.Done():
				return
			default:
			}

			result := loadTable(ctx, pool, inputDir, tbl, u)
			results[idx] = result

			if result.err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = result.err
				}
				mu.Unlock()
				cancel() // Immediately cancel all other goroutines
			}
		}(i, table)
	}

	wg.Wait()
	return results, firstErr
}

// loadTable loads a single table from CSV (prefers .csv.xz over .csv)
func loadTable(ctx context.Context, pool *database.Pool, inputDir string, tbl tableConfig, u *ui.UI) loadResult {
	start := time.Now()
	result := loadResult{table: tbl.name}

	csvPath := filepath.Join(inputDir, tbl.csvFile+".csv")
	xzPath := filepath.Join(inputDir, tbl.csvFile+".csv.xz")

	var filePath string
	var isCompressed bool

	if _, err := os.Stat(xzPath); err == nil {
		filePath = xzPath
		isCompressed = true
	} else if _, err := os.Stat(csvPath); err == nil {
		filePath = csvPath
		isCompressed = false
	} else {
		result.err = fmt.Errorf("file not found: %s or %s", csvPath, xzPath)
		u.PrintSkipped(tbl.name, "no file")
		return result
	}

	// Load the data
	if isCompressed {
		result.rows, result.err = loadCompressedFile(ctx, pool, filePath, tbl)
	} else {
		result.rows, result.err = loadPlainFile(ctx, pool, filePath, tbl)
	}

	result.duration = time.Since(start)

	// Print result
	u.PrintTableLoadResult(tbl.name, result.rows, result.duration, result.err)

	return result
}

// loadPlainFile loads an uncompressed CSV file
func loadPlainFile(ctx context.Context, pool *database.Pool, filePath string, tbl tableConfig) (int64, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to get absolute path: %w", err)
	}

	mysql.RegisterLocalFile(absPath)
	defer mysql.DeregisterLocalFile(absPath)

	loadSQL := fmt.Sprintf(tbl.loadSQL, absPath)
	res, err := pool.ExecContext(ctx, loadSQL)
	if err != nil {
		printManualLoadCommand(filePath, tbl, false)
		return 0, fmt.Errorf("LOAD DATA failed: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows, nil
}

// loadCompressedFile decompresses an xz file to a temp file, then loads it
func loadCompressedFile(ctx context.Context, pool *database.Pool, xzPath string, tbl tableConfig) (int64, error) {
	// Create temp file
	tmpFile, err := os.CreateTemp("", fmt.Sprintf("demogen_%s_*.csv", tbl.name))
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	// Decompress xz to temp file
	xzCmd := exec.CommandContext(ctx, "xz", "-d", "-c", xzPath)
	xzCmd.Stdout = tmpFile
	xzCmd.Stderr = os.Stderr

	if err := xzCmd.Run(); err != nil {
		tmpFile.Close()
		printManualLoadCommand(xzPath, tbl, true)
		return 0, fmt.Errorf("xz decompression failed: %w", err)
	}
	tmpFile.Close()

	// Load from temp file - use inline loading to show correct xz path on error
	absPath, err := filepath.Abs(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("failed to get absolute path: %w", err)
	}

	mysql.RegisterLocalFile(absPath)
	defer mysql.DeregisterLocalFile(absPath)

	loadSQL := fmt.Sprintf(tbl.loadSQL, absPath)
	res, err := pool.ExecContext(ctx, loadSQL)
	if err != nil {
		printManualLoadCommand(xzPath, tbl, true)
		return 0, fmt.Errorf("LOAD DATA failed: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows, nil
}

// Helper functions

func ensureLocalInfileEnabled(dsn string) string {
	if strings.Contains(dsn, "allowAllFiles") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&allowAllFiles=true"
	}
	return dsn + "?allowAllFiles=true"
}

func disableChecks(ctx context.Context, pool *database.Pool) error {
	queries := []string{
		"SET FOREIGN_KEY_CHECKS = 0",
		"SET UNIQUE_CHECKS = 0",
	}
	for _, q := range queries {
		if _, err := pool.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func enableChecks(ctx context.Context, pool *database.Pool) error {
	queries := []string{
		"SET UNIQUE_CHECKS = 1",
		"SET FOREIGN_KEY_CHECKS = 1",
	}
	for _, q := range queries {
		if _, err := pool.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func maskDSN(dsn string) string {
	// Mask password between : and @
	if colonIdx := strings.Index(dsn, ":"); colonIdx > 0 {
		rest := dsn[colonIdx:]
		if atIdx := strings.Index(rest, "@"); atIdx > 0 {
			return dsn[:colonIdx+1] + "***" + rest[atIdx:]
		}
	}
	return dsn
}

// parseDSN extracts connection details from a DSN string
// Format: user:pass@tcp(host:port)/dbname
func parseDSN(dsn string) (user, pass, host, port, dbname string) {
	// Remove any query params
	if idx := strings.Index(dsn, "?"); idx > 0 {
		dsn = dsn[:idx]
	}

	// Extract user:pass
	if atIdx := strings.Index(dsn, "@"); atIdx > 0 {
		userPass := dsn[:atIdx]
		if colonIdx := strings.Index(userPass, ":"); colonIdx > 0 {
			user = userPass[:colonIdx]
			pass = userPass[colonIdx+1:]
		} else {
			user = userPass
		}
		dsn = dsn[atIdx+1:]
	}

	// Extract tcp(host:port)
	if strings.HasPrefix(dsn, "tcp(") {
		endParen := strings.Index(dsn, ")")
		if endParen > 0 {
			hostPort := dsn[4:endParen]
			if colonIdx := strings.Index(hostPort, ":"); colonIdx > 0 {
				host = hostPort[:colonIdx]
				port = hostPort[colonIdx+1:]
			} else {
				host = hostPort
				port = "3306"
			}
			dsn = dsn[endParen+1:]
		}
	}

	// Extract dbname (after /)
	if strings.HasPrefix(dsn, "/") {
		dbname = dsn[1:]
	}

	return
}

// printManualLoadCommand prints a user-friendly command for manual debugging
func printManualLoadCommand(filePath string, tbl tableConfig, isCompressed bool) {
	user, pass, host, port, dbname := parseDSN(loadDBConnection)

	absPath, _ := filepath.Abs(filePath)

	fmt.Println("\n    To debug manually, run:")
	fmt.Println("    ─────────────────────────────────────────────")

	if isCompressed {
		// Stream decompressed data directly via /dev/stdin
		loadSQL := fmt.Sprintf(tbl.loadSQL, "/dev/stdin")
		fmt.Printf("    xz -d -c %s | mariadb -u%s -p%s -h %s -P %s --local-infile=1 %s -e \"\n", absPath, user, pass, host, port, dbname)
		fmt.Printf("    SET FOREIGN_KEY_CHECKS = 0;\n")
		fmt.Printf("    %s;\n", loadSQL)
		fmt.Println("    \"")
	} else {
		loadSQL := fmt.Sprintf(tbl.loadSQL, absPath)
		fmt.Printf("    mariadb -u%s -p%s -h %s -P %s --local-infile=1 %s <<'EOF'\n", user, pass, host, port, dbname)
		fmt.Printf("    SET FOREIGN_KEY_CHECKS = 0;\n")
		fmt.Printf("    %s;\n", loadSQL)
		fmt.Println("    EOF")
	}
	fmt.Println("    ─────────────────────────────────────────────")
}

func validateInputDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", dir)
	}
	if err != nil {
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	// Check for at least one expected file
	for _, tbl := range tablesToLoad {
		csvPath := filepath.Join(dir, tbl.csvFile+".csv")
		xzPath := filepath.Join(dir, tbl.csvFile+".csv.xz")
		if _, err := os.Stat(csvPath); err == nil {
			return nil
		}
		if _, err := os.Stat(xzPath); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no CSV files found in %s", dir)
}

func hasCompressedFiles(dir string) bool {
	for _, tbl := range tablesToLoad {
		xzPath := filepath.Join(dir, tbl.csvFile+".csv.xz")
		if _, err := os.Stat(xzPath); err == nil {
			return true
		}
	}
	return false
}

func splitSQLStatements(content string) []string {
	var statements []string
	var current strings.Builder

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	return statements
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}

func formatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

func printLoadSummary(u *ui.UI, results []loadResult, totalDuration time.Duration) {
	var totalRows int64
	var failures int

	for _, r := range results {
		if r.err != nil {
			failures++
		} else {
			totalRows += r.rows
		}
	}

	items := []ui.KV{
		{Key: "Total rows", Value: formatNumber(totalRows)},
		{Key: "Total time", Value: formatDuration(totalDuration)},
	}

	if failures > 0 {
		items = append(items, ui.KV{Key: "Failed", Value: fmt.Sprintf("%d tables", failures)})
		items = append(items, ui.KV{Key: "Status", Value: "Failed"})
	} else {
		items = append(items, ui.KV{Key: "Status", Value: "Success"})
	}

	fmt.Println(u.SummaryBox("Load Summary", items))

	if failures > 0 {
		os.Exit(1)
	}
}
