package analytics

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the canonical textual form of a login date.
const DateLayout = "2006-01-02"

// Column names expected in the input table.
const (
	ColumnUserID       = "user_id"
	ColumnKitID        = "kit_id"
	ColumnLoginDate    = "login_date"
	ColumnSessionCount = "session_count"
)

// LoginRecord is one row of the login table: a (user, day) login event.
//
// There is no uniqueness constraint on (UserID, LoginDate); duplicate dates
// per user are legal input and are handled by the ranking tie rules in the
// report functions.
type LoginRecord struct {
	UserID       int64
	KitID        int64
	LoginDate    time.Time // normalized to midnight UTC
	SessionCount int64
}

// ValidationReport summarizes the outcome of decoding a batch of rows.
//
// Malformed rows are skipped rather than aborting the whole batch; the
// report carries counts so callers can surface them or fail hard.
type ValidationReport struct {
	Total   int
	Decoded int
	Skipped int
	Reasons map[string]int
}

func (r *ValidationReport) skip(reason string) {
	r.Skipped++
	if r.Reasons == nil {
		r.Reasons = make(map[string]int)
	}
	r.Reasons[reason]++
}

// DecodeRecord decodes a single row map into a LoginRecord.
//
// Integer columns accept any Go numeric width. The login_date column accepts
// time.Time values, RFC3339 or "2006-01-02" strings, and integer days since
// the Unix epoch (the physical representation of the parquet DATE type).
// Returns an error for missing columns, unparseable dates, or a negative
// session_count.
func DecodeRecord(row map[string]interface{}) (LoginRecord, error) {
	userID, err := int64Column(row, ColumnUserID)
	if err != nil {
		return LoginRecord{}, err
	}

	kitID, err := int64Column(row, ColumnKitID)
	if err != nil {
		return LoginRecord{}, err
	}

	rawDate, ok := row[ColumnLoginDate]
	if !ok || rawDate == nil {
		return LoginRecord{}, fmt.Errorf("missing column %q", ColumnLoginDate)
	}
	date, err := parseLoginDate(rawDate)
	if err != nil {
		return LoginRecord{}, fmt.Errorf("column %q: %w", ColumnLoginDate, err)
	}

	sessions, err := int64Column(row, ColumnSessionCount)
	if err != nil {
		return LoginRecord{}, err
	}
	if sessions < 0 {
		return LoginRecord{}, fmt.Errorf("column %q: negative value %d", ColumnSessionCount, sessions)
	}

	return LoginRecord{
		UserID:       userID,
		KitID:        kitID,
		LoginDate:    date,
		SessionCount: sessions,
	}, nil
}

// DecodeRecords decodes a batch of row maps, skipping malformed rows.
//
// The returned ValidationReport counts skipped rows per reason so callers
// can report them or treat any skip as fatal.
func DecodeRecords(rows []map[string]interface{}) ([]LoginRecord, *ValidationReport) {
	report := &ValidationReport{Total: len(rows)}
	records := make([]LoginRecord, 0, len(rows))

	for _, row := range rows {
		record, err := DecodeRecord(row)
		if err != nil {
			report.skip(err.Error())
			continue
		}
		records = append(records, record)
		report.Decoded++
	}

	return records, report
}

// int64Column extracts an integer column from a row, accepting any numeric width.
func int64Column(row map[string]interface{}, column string) (int64, error) {
	value, ok := row[column]
	if !ok || value == nil {
		return 0, fmt.Errorf("missing column %q", column)
	}

	n, ok := toInt64(value)
	if !ok {
		return 0, fmt.Errorf("column %q: cannot convert %T to integer", column, value)
	}
	return n, nil
}

// toInt64 converts a value to int64 if possible
func toInt64(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case uint:
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint64:
		return int64(val), true
	case float32:
		return toInt64(float64(val))
	case float64:
		if val != math.Trunc(val) {
			return 0, false
		}
		return int64(val), true
	default:
		return 0, false
	}
}

// parseLoginDate parses a login_date value into a date at midnight UTC.
func parseLoginDate(v interface{}) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return midnightUTC(val), nil
	case string:
		layouts := []string{
			DateLayout,
			time.RFC3339,
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, val); err == nil {
				return midnightUTC(t), nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse date: %s", val)
	default:
		// Parquet DATE columns surface as days since the Unix epoch.
		if days, ok := toInt64(v); ok {
			return time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(days)), nil
		}
		return time.Time{}, fmt.Errorf("cannot parse date from %T", v)
	}
}

// midnightUTC drops the time-of-day component of a timestamp.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
