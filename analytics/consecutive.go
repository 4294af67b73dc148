package analytics

// ConsecutiveLoginUsers returns the users who logged in on at least two
// consecutive calendar days.
//
// Per user, records are ordered ascending by LoginDate and each row is
// compared against the immediately next row in that ordering. A gap of
// exactly one day qualifies the user; duplicate dates produce a zero-day gap
// and do not. Users appear at most once, sorted ascending by UserID.
func ConsecutiveLoginUsers(records []LoginRecord) []int64 {
	var users []int64

	for _, partition := range partitionByUser(records) {
		sorted := partition.Records
		for i := 0; i+1 < len(sorted); i++ {
			next := sorted[i].LoginDate.AddDate(0, 0, 1)
			if sorted[i+1].LoginDate.Equal(next) {
				users = append(users, partition.UserID)
				break
			}
		}
	}

	return users
}
