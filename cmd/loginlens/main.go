package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/loginlens/analytics"
	"github.com/vegasq/loginlens/output"
	"github.com/vegasq/loginlens/reader"
)

var (
	reportFlag = flag.String("r", "first-login", "Report: first-login, first-kit, cumulative, consecutive")
	formatFlag = flag.String("f", "jsonl", "Output format: json, jsonl, csv, table")
	limitFlag  = flag.Int("limit", 0, "Limit number of result rows (0 = unlimited)")
	schemaFlag = flag.Bool("schema", false, "Show parquet schema information instead of running a report")
	strictFlag = flag.Bool("strict", false, "Fail when the input contains malformed rows instead of skipping them")
	userFlag   = flag.Int64("user", 0, "Restrict the report to a single user id (0 = all users)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <logins.parquet>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to run login/session reports over parquet login tables.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nReports:\n")
		fmt.Fprintf(os.Stderr, "  first-login   each user's earliest login date(s)\n")
		fmt.Fprintf(os.Stderr, "  first-kit     the kit(s) used on each user's earliest login date\n")
		fmt.Fprintf(os.Stderr, "  cumulative    running session totals per user over time\n")
		fmt.Fprintf(os.Stderr, "  consecutive   users who logged in on consecutive days\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s logins.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -r cumulative -f csv logins.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -r consecutive \"exports/logins-*.parquet\"\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing parquet file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	pattern := flag.Arg(0)

	if *schemaFlag {
		handleSchemaMode(pattern, *formatFlag)
		os.Exit(0)
	}

	rows, err := reader.ReadMultipleFiles(pattern)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", pattern)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	records, validation := analytics.DecodeRecords(rows)
	if validation.Skipped > 0 {
		if *strictFlag {
			fmt.Fprintf(os.Stderr, "Error: %d of %d rows are malformed:\n", validation.Skipped, validation.Total)
			for reason, count := range validation.Reasons {
				fmt.Fprintf(os.Stderr, "  %d x %s\n", count, reason)
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Warning: skipped %d of %d malformed rows\n", validation.Skipped, validation.Total)
	}

	if *userFlag != 0 {
		records = filterByUser(records, *userFlag)
	}

	table, err := buildReport(*reportFlag, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Supported reports: first-login, first-kit, cumulative, consecutive\n")
		os.Exit(1)
	}

	if *limitFlag > 0 && len(table.Rows) > *limitFlag {
		table.Rows = table.Rows[:*limitFlag]
	}

	formatter, err := newFormatter(*formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Supported formats: json, jsonl, csv, table\n")
		os.Exit(1)
	}

	if err := formatter.Format(table); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// buildReport runs the named report and shapes the result as an output table.
func buildReport(name string, records []analytics.LoginRecord) (output.Table, error) {
	switch name {
	case "first-login":
		firsts := analytics.FirstLoginDates(records)
		table := output.Table{Columns: []string{"user_id", "login_date"}}
		for _, first := range firsts {
			table.Rows = append(table.Rows, []interface{}{first.UserID, first.LoginDate})
		}
		return table, nil

	case "first-kit":
		kits := analytics.FirstKitsUsed(records)
		table := output.Table{Columns: []string{"user_id", "kit_id"}}
		for _, kit := range kits {
			table.Rows = append(table.Rows, []interface{}{kit.UserID, kit.KitID})
		}
		return table, nil

	case "cumulative":
		totals := analytics.CumulativeSessions(records)
		table := output.Table{Columns: []string{"user_id", "login_date", "games_played_so_far"}}
		for _, total := range totals {
			table.Rows = append(table.Rows, []interface{}{total.UserID, total.LoginDate, total.GamesPlayedSoFar})
		}
		return table, nil

	case "consecutive":
		users := analytics.ConsecutiveLoginUsers(records)
		table := output.Table{Columns: []string{"user_id"}}
		for _, userID := range users {
			table.Rows = append(table.Rows, []interface{}{userID})
		}
		return table, nil

	default:
		return output.Table{}, fmt.Errorf("unknown report %q", name)
	}
}

// newFormatter selects an output formatter by name.
func newFormatter(format string) (output.Formatter, error) {
	switch format {
	case "json", "jsonl":
		return output.NewJSONFormatter(os.Stdout), nil
	case "csv":
		return output.NewCSVFormatter(os.Stdout), nil
	case "table":
		return output.NewTableFormatter(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// filterByUser keeps only the records of a single user.
func filterByUser(records []analytics.LoginRecord, userID int64) []analytics.LoginRecord {
	filtered := make([]analytics.LoginRecord, 0, len(records))
	for _, record := range records {
		if record.UserID == userID {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// handleSchemaMode handles the -schema flag by extracting and displaying
// schema information for the input file.
func handleSchemaMode(pattern string, format string) {
	filePath := pattern

	// For glob patterns, describe the first match.
	if strings.ContainsAny(pattern, "*?[]{}") {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid glob pattern: %v\n", err)
			os.Exit(1)
		}
		if len(matches) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no files match pattern: %s\n", pattern)
			os.Exit(1)
		}
		filePath = matches[0]
	}

	infos, err := reader.ExtractSchemaInfo(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading schema: %v\n", err)
		os.Exit(1)
	}

	table := output.Table{Columns: []string{"name", "type", "optional"}}
	for _, info := range infos {
		table.Rows = append(table.Rows, []interface{}{info.Name, info.Type, info.Optional})
	}

	formatter, err := newFormatter(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := formatter.Format(table); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting schema: %v\n", err)
		os.Exit(1)
	}
}
