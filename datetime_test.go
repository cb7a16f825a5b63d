package toml

import "testing"

func TestClassifyAndParseDateTime(t *testing.T) {
	for _, tc := range []struct {
		desc     string
		tok      string
		wantKind DateTimeKind
		check    func(t *testing.T, dt DateTime)
	}{
		{
			desc:     "offsetZ",
			tok:      "1979-05-27T07:32:00Z",
			wantKind: DateTimeOffset,
			check: func(t *testing.T, dt DateTime) {
				if dt.Year != 1979 || dt.Month != 5 || dt.Day != 27 {
					t.Errorf("date = %d-%d-%d, want 1979-05-27", dt.Year, dt.Month, dt.Day)
				}
				if !dt.HasOffset || dt.OffsetMinutes != 0 {
					t.Errorf("offset = %v/%d, want true/0", dt.HasOffset, dt.OffsetMinutes)
				}
			},
		},
		{
			desc:     "offsetNumeric",
			tok:      "1979-05-27T00:32:00-07:00",
			wantKind: DateTimeOffset,
			check: func(t *testing.T, dt DateTime) {
				if dt.OffsetMinutes != -420 {
					t.Errorf("offsetMinutes = %d, want -420", dt.OffsetMinutes)
				}
			},
		},
		{
			desc:     "localDateTime",
			tok:      "1979-05-27T07:32:00",
			wantKind: DateTimeLocal,
		},
		{
			desc:     "localDate",
			tok:      "1979-05-27",
			wantKind: DateTimeLocalDate,
		},
		{
			desc:     "localTime",
			tok:      "07:32:00",
			wantKind: DateTimeLocalTime,
		},
		{
			desc:     "fractionalSeconds",
			tok:      "1979-05-27T07:32:00.999999",
			wantKind: DateTimeLocal,
			check: func(t *testing.T, dt DateTime) {
				if dt.Nanosecond != 999999000 {
					t.Errorf("nanosecond = %d, want 999999000", dt.Nanosecond)
				}
			},
		},
		{
			desc:     "spaceSeparated",
			tok:      "1979-05-27 07:32:00",
			wantKind: DateTimeLocal,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			v, ok, err := classifyAndParseDateTime("", 0, tc.tok)
			if !ok {
				t.Fatalf("classifyAndParseDateTime(%q) ok = false", tc.tok)
			}
			if err != nil {
				t.Fatalf("classifyAndParseDateTime(%q) failed: %s", tc.tok, err)
			}
			dt, ok := v.DateTime()
			if !ok {
				t.Fatalf("classifyAndParseDateTime(%q) did not return a DateTime value", tc.tok)
			}
			if dt.Kind != tc.wantKind {
				t.Errorf("kind = %v, want %v", dt.Kind, tc.wantKind)
			}
			if tc.check != nil {
				tc.check(t, dt)
			}
		})
	}
}

func TestClassifyAndParseDateTimeInvalid(t *testing.T) {
	for _, tc := range []struct {
		desc string
		tok  string
	}{
		{desc: "monthZero", tok: "1979-00-27T07:32:00Z"},
		{desc: "monthThirteen", tok: "1979-13-27T07:32:00Z"},
		{desc: "dayTooHigh", tok: "1979-02-30T07:32:00Z"},
		{desc: "nonLeapFeb29", tok: "1979-02-29T07:32:00Z"},
		{desc: "hourOutOfRange", tok: "1979-05-27T24:00:00Z"},
		{desc: "offsetHourOutOfRange", tok: "1979-05-27T07:32:00+24:00"},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, ok, err := classifyAndParseDateTime("", 0, tc.tok)
			if !ok {
				t.Fatalf("classifyAndParseDateTime(%q) ok = false, want true with error", tc.tok)
			}
			if err == nil {
				t.Errorf("classifyAndParseDateTime(%q) succeeded, want error", tc.tok)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	for _, tc := range []struct {
		year int
		want bool
	}{
		{2000, true}, {1900, false}, {2024, true}, {2023, false}, {2004, true},
	} {
		if got := isLeapYear(tc.year); got != tc.want {
			t.Errorf("isLeapYear(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}
