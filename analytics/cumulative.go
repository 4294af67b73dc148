package analytics

// SessionRunningTotal is one row of the cumulative-sessions report.
type SessionRunningTotal struct {
	UserID           int64
	LoginDate        string
	GamesPlayedSoFar int64
}

// CumulativeSessions computes, per user in ascending date order, the running
// inclusive sum of session counts.
//
// Rows tied on LoginDate all receive the sum over every row at or before
// that date (the whole tie group is included before any of its rows is
// emitted), matching a window frame of "all rows with the same or earlier
// order key". With non-negative session counts the totals are monotonically
// non-decreasing per user. Output is ordered by UserID, then LoginDate.
func CumulativeSessions(records []LoginRecord) []SessionRunningTotal {
	result := make([]SessionRunningTotal, 0, len(records))

	for _, partition := range partitionByUser(records) {
		sorted := partition.Records
		running := int64(0)

		for i := 0; i < len(sorted); {
			// Advance past the tie group sharing this date, summing as we go.
			j := i
			groupSum := int64(0)
			for j < len(sorted) && sorted[j].LoginDate.Equal(sorted[i].LoginDate) {
				groupSum += sorted[j].SessionCount
				j++
			}
			running += groupSum

			for ; i < j; i++ {
				result = append(result, SessionRunningTotal{
					UserID:           sorted[i].UserID,
					LoginDate:        sorted[i].LoginDate.Format(DateLayout),
					GamesPlayedSoFar: running,
				})
			}
		}
	}

	return result
}
