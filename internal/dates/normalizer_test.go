package dates

import (
	"testing"
	"time"
)

func fixedNormalizer(now time.Time) *Normalizer {
	n := NewNormalizer()
	n.now = func() time.Time { return now }
	return n
}

func TestFaToEnDigits(t *testing.T) {
	t.Parallel()

	got := FaToEnDigits("۰۶/۰۴/۱۴۰۴")
	if got != "06/04/1404" {
		t.Fatalf("expected 06/04/1404, got %s", got)
	}

	// Mixed tokens keep non-digit runes untouched.
	got = FaToEnDigits("۱۰ تیر ۱۴۰۴ - ۱۵:۰۶")
	if got != "10 تیر 1404 - 15:06" {
		t.Fatalf("unexpected transliteration: %s", got)
	}
}

func TestNormalizeJalaliAMPM(t *testing.T) {
	t.Parallel()

	n := fixedNormalizer(time.Date(2025, 7, 2, 12, 0, 0, 0, Tehran))

	// 10 Tir 1404 at 03:06 marked afternoon must land on hour 15.
	got := n.Normalize("۱۰/۰۴/۱۴۰۴ ۰۳:۰۶:۴۸ ب.ظ", JalaliAMPM)
	if got.Approximate {
		t.Fatalf("expected exact date, got approximate")
	}
	if h := got.At.In(Tehran).Hour(); h != 15 {
		t.Fatalf("expected hour 15, got %d", h)
	}
	if m := got.At.In(Tehran).Minute(); m != 6 {
		t.Fatalf("expected minute 6, got %d", m)
	}
	// 10 Tir 1404 is 1 July 2025 in the Gregorian calendar.
	if y, mo, d := got.At.In(Tehran).Date(); y != 2025 || mo != time.July || d != 1 {
		t.Fatalf("expected 2025-07-01, got %04d-%02d-%02d", y, mo, d)
	}
}

func TestNormalizeJalaliAMPMBeforeNoonTwelve(t *testing.T) {
	t.Parallel()

	n := fixedNormalizer(time.Now())
	got := n.Normalize("10/04/1404 12:30:00 ق.ظ", JalaliAMPM)
	if h := got.At.In(Tehran).Hour(); h != 0 {
		t.Fatalf("expected before-noon 12 to normalize to hour 0, got %d", h)
	}
}

func TestNormalizeJalaliMonthName(t *testing.T) {
	t.Parallel()

	n := fixedNormalizer(time.Date(2025, 7, 2, 12, 0, 0, 0, Tehran))

	// Both yeh spellings of Tir must parse identically.
	for _, raw := range []string{"۰۶ تير ۱۴۰۴ - ۱۵:۰۶", "۶ تیر ۱۴۰۴ - ۱۵:۰۶"} {
		got := n.Normalize(raw, JalaliMonthName)
		if got.Approximate {
			t.Fatalf("%s: expected exact date", raw)
		}
		if y, mo, d := got.At.In(Tehran).Date(); y != 2025 || mo != time.June || d != 27 {
			t.Fatalf("%s: expected 2025-06-27, got %04d-%02d-%02d", raw, y, mo, d)
		}
		if h := got.At.In(Tehran).Hour(); h != 15 {
			t.Fatalf("%s: expected hour 15, got %d", raw, h)
		}
	}
}

func TestNormalizeJalaliNumeric(t *testing.T) {
	t.Parallel()

	n := fixedNormalizer(time.Date(2025, 6, 19, 12, 0, 0, 0, Tehran))
	got := n.Normalize("۱۴۰۴/۰۳/۲۸ ۱۶:۳۱:۰۸", JalaliNumeric)
	if got.Approximate {
		t.Fatalf("expected exact date")
	}
	if y, mo, d := got.At.In(Tehran).Date(); y != 2025 || mo != time.June || d != 18 {
		t.Fatalf("expected 2025-06-18, got %04d-%02d-%02d", y, mo, d)
	}
}

func TestNormalizeISO(t *testing.T) {
	t.Parallel()

	n := fixedNormalizer(time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC))
	got := n.Normalize("2025-07-01T11:36:00+03:30", ISO8601)
	if got.Approximate {
		t.Fatalf("expected exact date")
	}
	if !got.At.Equal(time.Date(2025, 7, 1, 11, 36, 0, 0, Tehran)) {
		t.Fatalf("unexpected timestamp: %v", got.At)
	}
	if got.Jalali == "" || got.Relative == "" {
		t.Fatalf("expected display strings, got %+v", got)
	}
}

func TestNormalizeFallsBackToNow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 2, 9, 30, 0, 0, Tehran)
	n := fixedNormalizer(now)

	for _, tc := range []struct {
		raw    string
		format Format
	}{
		{"", None},
		{"garbage", ISO8601},
		{"نامشخص", JalaliMonthName},
	} {
		got := n.Normalize(tc.raw, tc.format)
		if !got.Approximate {
			t.Fatalf("%q: expected approximate fallback", tc.raw)
		}
		if !got.At.Equal(now) {
			t.Fatalf("%q: expected fallback to now, got %v", tc.raw, got.At)
		}
	}
}
