package analytics

// FirstLogin is one row of the first-login report.
type FirstLogin struct {
	UserID    int64
	LoginDate string
}

// FirstKit is one row of the first-kit report.
type FirstKit struct {
	UserID int64
	KitID  int64
}

// FirstLoginDates returns, for each user, the row(s) holding their earliest
// login date.
//
// Ranking is competition-style over LoginDate per user: every row ranked 1 is
// returned, so a user with several rows tied on the minimum date contributes
// all of them. "First" is therefore not guaranteed unique per user. Output is
// ordered by UserID, ties in input order.
func FirstLoginDates(records []LoginRecord) []FirstLogin {
	first := firstRankedRows(records)

	result := make([]FirstLogin, 0, len(first))
	for _, record := range first {
		result = append(result, FirstLogin{
			UserID:    record.UserID,
			LoginDate: record.LoginDate.Format(DateLayout),
		})
	}
	return result
}

// FirstKitsUsed returns, for each user, the kit(s) used on their earliest
// login date.
//
// Shares the ranking of FirstLoginDates (same partition and order key), so
// the two reports always agree on which rows count as "first". Tied rows all
// contribute their kit.
func FirstKitsUsed(records []LoginRecord) []FirstKit {
	first := firstRankedRows(records)

	result := make([]FirstKit, 0, len(first))
	for _, record := range first {
		result = append(result, FirstKit{
			UserID: record.UserID,
			KitID:  record.KitID,
		})
	}
	return result
}

// firstRankedRows collects every rank-1 row from each user partition.
func firstRankedRows(records []LoginRecord) []LoginRecord {
	var first []LoginRecord

	for _, partition := range partitionByUser(records) {
		ranks := ranksByDate(partition.Records)
		for i, rank := range ranks {
			if rank != 1 {
				break
			}
			first = append(first, partition.Records[i])
		}
	}

	return first
}
