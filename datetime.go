package toml

import (
	"regexp"
	"strconv"
)

var (
	dateTimeRE = regexp.MustCompile(
		`^(\d{4})-(\d{2})-(\d{2})(?:[Tt ](\d{2}):(\d{2}):(\d{2})(\.\d+)?(Z|z|[+-]\d{2}:\d{2})?)?$`)
	timeOnlyRE = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})(\.\d+)?$`)

	daysInMonth = [...]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// classifyAndParseDateTime recognizes any of the four TOML date/time
// sub-kinds and validates calendar correctness.
func classifyAndParseDateTime(src string, offset int, tok string) (Value, bool, error) {
	if m := dateTimeRE.FindStringSubmatch(tok); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if err := validateDate(src, offset, year, month, day); err != nil {
			return Value{}, true, err
		}
		dt := DateTime{Year: year, Month: month, Day: day, Kind: DateTimeLocalDate}
		if m[4] == "" {
			return dateTimeValue(dt), true, nil
		}
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		second, _ := strconv.Atoi(m[6])
		if err := validateTime(src, offset, hour, minute, second); err != nil {
			return Value{}, true, err
		}
		dt.Hour, dt.Minute, dt.Second = hour, minute, second
		dt.Nanosecond = fractionToNanos(m[7])
		if m[8] != "" {
			dt.Kind = DateTimeOffset
			dt.HasOffset = true
			offMin, err := parseOffset(src, offset, m[8])
			if err != nil {
				return Value{}, true, err
			}
			dt.OffsetMinutes = offMin
		} else {
			dt.Kind = DateTimeLocal
		}
		return dateTimeValue(dt), true, nil
	}

	if m := timeOnlyRE.FindStringSubmatch(tok); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		second, _ := strconv.Atoi(m[3])
		if err := validateTime(src, offset, hour, minute, second); err != nil {
			return Value{}, true, err
		}
		dt := DateTime{
			Kind:       DateTimeLocalTime,
			Hour:       hour,
			Minute:     minute,
			Second:     second,
			Nanosecond: fractionToNanos(m[4]),
		}
		return dateTimeValue(dt), true, nil
	}

	return Value{}, false, nil
}

func validateDate(src string, offset, year, month, day int) error {
	if month < 1 || month > 12 {
		return newParseError(src, offset, "invalid month %d", month)
	}
	max := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		max = 29
	} else if month == 2 {
		max = 28
	}
	if day < 1 || day > max {
		return newParseError(src, offset, "invalid day %d for month %d", day, month)
	}
	return nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func validateTime(src string, offset, hour, minute, second int) error {
	if hour > 23 {
		return newParseError(src, offset, "invalid hour %d", hour)
	}
	if minute > 59 {
		return newParseError(src, offset, "invalid minute %d", minute)
	}
	if second > 59 {
		return newParseError(src, offset, "invalid second %d", second)
	}
	return nil
}

// fractionToNanos converts a ".123456789"-style fractional-seconds
// string to nanoseconds, truncating beyond nanosecond precision but
// never failing on longer input, per the parser's policy of accepting
// arbitrary-length fractions.
func fractionToNanos(frac string) int {
	if frac == "" {
		return 0
	}
	digits := frac[1:]
	if len(digits) > 9 {
		digits = digits[:9]
	}
	for len(digits) < 9 {
		digits += "0"
	}
	n, _ := strconv.Atoi(digits)
	return n
}

func parseOffset(src string, offset int, tok string) (int, error) {
	if tok == "Z" || tok == "z" {
		return 0, nil
	}
	sign := 1
	if tok[0] == '-' {
		sign = -1
	}
	hours, _ := strconv.Atoi(tok[1:3])
	minutes, _ := strconv.Atoi(tok[4:6])
	if hours > 23 || minutes > 59 {
		return 0, newParseError(src, offset, "invalid UTC offset %q", tok)
	}
	return sign * (hours*60 + minutes), nil
}
