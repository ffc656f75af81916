package report

import (
	"fmt"
	"landrecords/lib/chrono"
	"landrecords/lib/records"
	"landrecords/lib/textutil"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a recorder date of the form month/day/year. The year is
// taken literally, "2/3/24" is the year 24.
func ParseDate(text string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: expected month/day/year", text)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", text, err)
		}
		nums[i] = n
	}
	month, day, year := nums[0], nums[1], nums[2]

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if year < 1 || date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q: out of range", text)
	}
	return date, nil
}

type FilterOptions struct {
	// documents recorded more than this many days before today are dropped
	WindowDays int
	// if not empty, only documents of these types are kept
	Types []string
}

// FilterRecent keeps the documents recorded within the window and of an
// allowed type, dropping properties left without any. props is not modified.
func FilterRecent(props []records.Property, opts FilterOptions, now time.Time) ([]records.Property, error) {
	var allowed map[string]struct{}
	if len(opts.Types) > 0 {
		allowed = textutil.FoldSet(opts.Types)
	}

	recent := []records.Property{}
	for _, prop := range props {
		var docs []records.DocumentRow
		for _, doc := range prop.Docs {
			date, err := ParseDate(doc.Date())
			if err != nil {
				return nil, fmt.Errorf("property %q (%s): %w", prop.Address, prop.URL, err)
			}
			if chrono.DaysBetween(date, now) > opts.WindowDays {
				continue
			}
			if allowed != nil {
				_, ok := allowed[textutil.Fold(doc.Type())]
				if !ok {
					continue
				}
			}
			docs = append(docs, doc)
		}
		if len(docs) == 0 {
			continue
		}
		recent = append(recent, prop.WithDocs(docs))
	}
	return recent, nil
}
