package common

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var monthsRO = map[string]time.Month{
	"ianuarie":   time.January,
	"februarie":  time.February,
	"martie":     time.March,
	"aprilie":    time.April,
	"mai":        time.May,
	"iunie":      time.June,
	"iulie":      time.July,
	"august":     time.August,
	"septembrie": time.September,
	"octombrie":  time.October,
	"noiembrie":  time.November,
	"decembrie":  time.December,
}

// MonthRO resolves a Romanian month name (diacritics tolerated).
func MonthRO(name string) (time.Month, bool) {
	m, ok := monthsRO[NormalizeRO(name)]
	return m, ok
}

// ParseDateRO builds a date from "DD <romanian month> YYYY" components.
// An unrecognized month name is an error; callers treat the line as not
// being a transaction start.
func ParseDateRO(dd, mon, yyyy string) (time.Time, error) {
	m, ok := MonthRO(mon)
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month: %s", mon)
	}
	day, err := strconv.Atoi(dd)
	if err != nil {
		return time.Time{}, err
	}
	year, err := strconv.Atoi(yyyy)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, m, day, 0, 0, 0, 0, time.UTC), nil
}

var (
	periodSlashRegex = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4}).*?(\d{1,2})/(\d{1,2})/(\d{4})`)
	periodRORegex    = regexp.MustCompile(`(?i)(\d{1,2})\s+([a-zăâîșşțţ]+)\s+(\d{4}).*?(\d{1,2})\s+([a-zăâîșşțţ]+)\s+(\d{4})`)
)

// NormalizeStatementPeriod canonicalizes a statement period to
// "DD/MM/YYYY - DD/MM/YYYY". Slash-form input is structurally reparsed so
// separator and ordering are guaranteed; Romanian month names are
// converted to the same slash form. Anything else passes through.
func NormalizeStatementPeriod(value string) string {
	raw := CleanSpaces(value)
	if raw == "" {
		return raw
	}

	if m := periodSlashRegex.FindStringSubmatch(raw); m != nil {
		return formatPeriod(m[1], m[2], m[3], m[4], m[5], m[6])
	}

	if m := periodRORegex.FindStringSubmatch(raw); m != nil {
		mon1, ok1 := MonthRO(m[2])
		mon2, ok2 := MonthRO(m[5])
		if ok1 && ok2 {
			return formatPeriod(m[1], strconv.Itoa(int(mon1)), m[3], m[4], strconv.Itoa(int(mon2)), m[6])
		}
	}

	return raw
}

func formatPeriod(d1, m1, y1, d2, m2, y2 string) string {
	return fmt.Sprintf("%s - %s", formatDMY(d1, m1, y1), formatDMY(d2, m2, y2))
}

func formatDMY(d, m, y string) string {
	day, _ := strconv.Atoi(d)
	month, _ := strconv.Atoi(m)
	return fmt.Sprintf("%02d/%02d/%s", day, month, y)
}
