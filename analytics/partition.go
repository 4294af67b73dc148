package analytics

import "sort"

// userPartition holds one user's login history, sorted ascending by date.
type userPartition struct {
	UserID  int64
	Records []LoginRecord
}

// partitionByUser splits records into per-user partitions.
//
// Partitions come back sorted by UserID and each partition's records sorted
// ascending by LoginDate. The sort is stable so rows tied on date keep their
// input order. Input is never mutated.
func partitionByUser(records []LoginRecord) []userPartition {
	byUser := make(map[int64][]LoginRecord)
	for _, record := range records {
		byUser[record.UserID] = append(byUser[record.UserID], record)
	}

	partitions := make([]userPartition, 0, len(byUser))
	for userID, userRecords := range byUser {
		sort.SliceStable(userRecords, func(i, j int) bool {
			return userRecords[i].LoginDate.Before(userRecords[j].LoginDate)
		})
		partitions = append(partitions, userPartition{UserID: userID, Records: userRecords})
	}

	sort.Slice(partitions, func(i, j int) bool {
		return partitions[i].UserID < partitions[j].UserID
	})

	return partitions
}

// ranksByDate assigns competition ranks to a date-sorted partition.
//
// Rows tied on LoginDate receive the same rank; the rank after a tie group
// skips ahead by the tie count (1, 1, 3 rather than 1, 1, 2).
func ranksByDate(sorted []LoginRecord) []int64 {
	ranks := make([]int64, len(sorted))
	rank := int64(1)

	for i := range sorted {
		if i > 0 && !sorted[i].LoginDate.Equal(sorted[i-1].LoginDate) {
			rank = int64(i + 1)
		}
		ranks[i] = rank
	}

	return ranks
}
