package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Format identifies the publish-date representation an outlet exposes.
type Format int

const (
	// ISO8601 covers structured metadata and JSON-LD timestamps.
	ISO8601 Format = iota
	// JalaliAMPM is the rnews style: "06/04/1404 03:06:48 ب.ظ" (day/month/year).
	JalaliAMPM
	// JalaliMonthName is the on-page style: "۰۶ تير ۱۴۰۴ - ۱۵:۰۶".
	JalaliMonthName
	// JalaliNumeric is the listing style: "۱۴۰۴/۰۳/۲۸ ۱۶:۳۱:۰۸".
	JalaliNumeric
	// None marks outlets that never expose a reliable date.
	None
)

// Normalized is the canonical result of date normalization. Jalali and
// Relative are for display only; At is what gets persisted.
type Normalized struct {
	At          time.Time
	Jalali      string
	Relative    string
	Approximate bool
}

// Tehran pins the +03:30 offset the source outlets publish in.
var Tehran = time.FixedZone("Asia/Tehran", 3*3600+1800)

// Normalizer converts raw date tokens into canonical timestamps.
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

// NewNormalizer builds a normalizer anchored to the Tehran offset.
func NewNormalizer() *Normalizer {
	return &Normalizer{loc: Tehran, now: time.Now}
}

var faDigits = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

// FaToEnDigits transliterates Persian-Arabic digits to ASCII. It must run
// before any numeric parsing of an outlet token.
func FaToEnDigits(s string) string {
	return faDigits.Replace(s)
}

// Month spellings vary across outlets: Tasnim renders تير with the Arabic
// yeh while KhabarOnline uses the Persian تیر. Both map to the same month.
var faMonths = map[string]int{
	"فروردین": 1, "اردیبهشت": 2, "خرداد": 3,
	"تیر": 4, "تير": 4,
	"مرداد": 5, "شهریور": 6, "شهريور": 6, "مهر": 7,
	"آبان": 8, "آذر": 9, "دی": 10, "دي": 10,
	"بهمن": 11, "اسفند": 12,
}

var (
	ampmExpr      = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4}) (\d{1,2}):(\d{2}):(\d{2}) (ب\.ظ|ق\.ظ)`)
	monthNameExpr = regexp.MustCompile(`(\d{1,2}) (\S+) (\d{4})\s*-?\s*(\d{1,2}):(\d{2})`)
	numericExpr   = regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})[ T](\d{1,2}):(\d{2})(?::(\d{2}))?`)
)

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize converts a raw outlet token into a canonical timestamp plus
// display strings. When no date is recoverable it returns the current time
// with Approximate set instead of failing the pipeline run.
func (n *Normalizer) Normalize(raw string, format Format) Normalized {
	raw = strings.TrimSpace(FaToEnDigits(raw))

	var (
		at  time.Time
		err error
	)
	switch format {
	case ISO8601:
		at, err = n.parseISO(raw)
	case JalaliAMPM:
		at, err = n.parseJalaliAMPM(raw)
	case JalaliMonthName:
		at, err = n.parseJalaliMonthName(raw)
	case JalaliNumeric:
		at, err = n.parseJalaliNumeric(raw)
	default:
		err = fmt.Errorf("no date format for token %q", raw)
	}

	if err != nil || at.IsZero() {
		now := n.now().In(n.loc)
		return Normalized{
			At:          now,
			Jalali:      ptime.New(now).Format("yyyy/MM/dd HH:mm"),
			Relative:    "just now",
			Approximate: true,
		}
	}

	at = at.In(n.loc)
	return Normalized{
		At:       at,
		Jalali:   ptime.New(at).Format("yyyy/MM/dd HH:mm"),
		Relative: relative(n.now(), at),
	}
}

func (n *Normalizer) parseISO(raw string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized ISO token %q", raw)
}

func (n *Normalizer) parseJalaliAMPM(raw string) (time.Time, error) {
	m := ampmExpr.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognized jalali am/pm token %q", raw)
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])

	// ب.ظ marks afternoon, ق.ظ morning; a morning 12 is midnight.
	if m[7] == "ب.ظ" && hour < 12 {
		hour += 12
	}
	if m[7] == "ق.ظ" && hour == 12 {
		hour = 0
	}

	return n.jalaliTime(year, month, day, hour, minute, second)
}

func (n *Normalizer) parseJalaliMonthName(raw string) (time.Time, error) {
	m := monthNameExpr.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognized jalali month-name token %q", raw)
	}

	month, ok := faMonths[m[2]]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown persian month %q", m[2])
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	return n.jalaliTime(year, month, day, hour, minute, 0)
}

func (n *Normalizer) parseJalaliNumeric(raw string) (time.Time, error) {
	m := numericExpr.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognized jalali numeric token %q", raw)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second := 0
	if m[6] != "" {
		second, _ = strconv.Atoi(m[6])
	}

	return n.jalaliTime(year, month, day, hour, minute, second)
}

func (n *Normalizer) jalaliTime(year, month, day, hour, minute, second int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("jalali date out of range: %04d/%02d/%02d", year, month, day)
	}
	pt := ptime.Date(year, ptime.Month(month), day, hour, minute, second, 0, n.loc)
	return pt.Time(), nil
}

func relative(now, at time.Time) string {
	d := now.Sub(at)
	if d < 0 {
		d = -d
	}
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}
