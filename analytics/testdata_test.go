package analytics

import (
	"testing"
	"time"
)

// date builds a login date at midnight UTC.
func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

// record builds a LoginRecord from its four column values.
func record(t *testing.T, userID, kitID int64, loginDate string, sessions int64) LoginRecord {
	t.Helper()
	return LoginRecord{
		UserID:       userID,
		KitID:        kitID,
		LoginDate:    date(t, loginDate),
		SessionCount: sessions,
	}
}

// exampleRecords returns the canonical five-row login table used across the
// report tests.
func exampleRecords(t *testing.T) []LoginRecord {
	t.Helper()
	return []LoginRecord{
		{UserID: 1, KitID: 2, LoginDate: date(t, "2016-03-01"), SessionCount: 5},
		{UserID: 1, KitID: 2, LoginDate: date(t, "2016-03-02"), SessionCount: 6},
		{UserID: 2, KitID: 3, LoginDate: date(t, "2017-06-25"), SessionCount: 1},
		{UserID: 3, KitID: 1, LoginDate: date(t, "2016-03-02"), SessionCount: 0},
		{UserID: 3, KitID: 4, LoginDate: date(t, "2018-07-03"), SessionCount: 5},
	}
}
