// Package analytics implements the login-table reports.
//
// The input is a flat table of LoginRecord rows, one per (user, day) login
// event, typically decoded from parquet row maps via DecodeRecords. Four
// pure report functions are provided:
//
//   - FirstLoginDates: each user's earliest login date(s)
//   - FirstKitsUsed: the kit(s) used on each user's earliest login date
//   - CumulativeSessions: running session totals per user over time
//   - ConsecutiveLoginUsers: users with logins on consecutive days
//
// All four partition by user and order by login date, sharing a single
// partition/sort/rank implementation so their notion of "first" and "next"
// is consistent. Rows tied on a user's minimum date are all reported (ties
// are not broken further), and running totals treat tied dates as one
// inclusive group.
//
// # Basic Usage
//
// Decode rows read from a parquet file, then run a report:
//
//	records, report := analytics.DecodeRecords(rows)
//	if report.Skipped > 0 {
//	    log.Printf("skipped %d malformed rows", report.Skipped)
//	}
//
//	for _, first := range analytics.FirstLoginDates(records) {
//	    fmt.Println(first.UserID, first.LoginDate)
//	}
//
// The report functions never mutate their input; each returns a fresh slice
// ordered by UserID. Empty input yields empty output.
package analytics
