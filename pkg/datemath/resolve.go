package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	punctRe      = regexp.MustCompile(`[^a-z0-9\-\s]+`)
	spaceRe      = regexp.MustCompile(`\s+`)
	withinRe     = regexp.MustCompile(`\b(?:in|within)\s+(?:the\s+next\s+)?(\d+|a|an|one|two|three|four|five|six|seven|eight|nine|ten|couple of)\s+(day|days|week|weeks|month|months)\b`)
	isoDateRe    = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	monthDayRe   = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s+(\d{4}))?\b`)
	dayMonthRe   = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)(?:\s+(\d{4}))?\b`)
	weekdayRe    = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	endOfWeekRe  = regexp.MustCompile(`\b(?:end of (?:the )?week|eow)\b`)
	endOfMonthRe = regexp.MustCompile(`\b(?:end of (?:the )?month|eom)\b`)
	todayRe      = regexp.MustCompile(`\b(?:today|tonight|eod|end of (?:the )?day|asap)\b`)
	tomorrowRe   = regexp.MustCompile(`\b(?:tomorrow|tmrw|tmr)\b`)
	dayAfterRe   = regexp.MustCompile(`\bday after tomorrow\b`)
	nextWeekRe   = regexp.MustCompile(`\bnext week\b`)
)

// weekdayAbbrRe only accepts an abbreviation after a deadline word or on its
// own; "sat" and "wed" are ordinary words too.
var weekdayAbbrRe = regexp.MustCompile(`\b(?:by|on|next|this|until|till|before|due)\s+(mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun)\b`)

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10, "couple of": 2,
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "sept": time.September, "oct": time.October,
	"nov": time.November, "dec": time.December,
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "june": time.June, "july": time.July, "august": time.August,
	"september": time.September, "october": time.October, "november": time.November,
	"december": time.December,
}

var weekdayAbbrev = map[string]string{
	"mon": "monday", "tue": "tuesday", "tues": "tuesday", "wed": "wednesday",
	"thu": "thursday", "thur": "thursday", "thurs": "thursday", "fri": "friday",
	"sat": "saturday", "sun": "sunday",
}

// ResolveDue turns a free-text deadline phrase ("by Friday", "within 5 days",
// "Jan 10") into the start of the matching day in the parser's timezone.
// It prefers the nearest future occurrence and reports false when the phrase
// carries no resolvable date.
func (p *Parser) ResolveDue(phrase string, now time.Time) (time.Time, bool) {
	s := normalizePhrase(phrase)
	if s == "" {
		return time.Time{}, false
	}
	now = now.In(p.location)

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return p.exactDate(y, time.Month(mo), d)
	}

	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		return p.monthDay(now, months[m[1]], m[2], m[3])
	}
	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		return p.monthDay(now, months[m[2]], m[1], m[3])
	}

	if dayAfterRe.MatchString(s) {
		return p.StartOfDay(now.AddDate(0, 0, 2)), true
	}
	if tomorrowRe.MatchString(s) {
		t, err := p.Parse("tomorrow", now)
		return t, err == nil
	}
	if todayRe.MatchString(s) {
		t, err := p.Parse("today", now)
		return t, err == nil
	}

	if m := withinRe.FindStringSubmatch(s); m != nil {
		amount, ok := numberWords[m[1]]
		if !ok {
			amount, _ = strconv.Atoi(m[1])
		}
		if m[1] == strconv.Itoa(amount) {
			t, err := p.Parse("in "+m[1]+" "+m[2], now)
			return t, err == nil
		}
		t, err := p.addUnit(now, amount, m[2])
		return t, err == nil
	}

	if endOfWeekRe.MatchString(s) {
		return p.upcoming(now, time.Friday), true
	}
	if endOfMonthRe.MatchString(s) {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, p.location)
		return first.AddDate(0, 1, -1), true
	}

	m := weekdayRe.FindStringSubmatch(s)
	if m == nil {
		m = weekdayAbbrRe.FindStringSubmatch(s)
	}
	if _, ok := weekdayAbbrev[s]; ok && m == nil {
		m = []string{s, s}
	}
	if m != nil {
		name := m[1]
		if full, ok := weekdayAbbrev[name]; ok {
			name = full
		}
		if strings.Contains(s, "next "+m[1]) {
			t, err := p.Parse("next "+name, now)
			return t, err == nil
		}
		return p.upcoming(now, weekdays[name]), true
	}

	if nextWeekRe.MatchString(s) {
		t, err := p.Parse("in 1 week", now)
		return t, err == nil
	}

	return time.Time{}, false
}

// upcoming returns the nearest day on or after now falling on wd.
func (p *Parser) upcoming(now time.Time, wd time.Weekday) time.Time {
	daysUntil := int(wd - now.Weekday())
	if daysUntil < 0 {
		daysUntil += 7
	}
	return p.StartOfDay(now.AddDate(0, 0, daysUntil))
}

func (p *Parser) exactDate(y int, m time.Month, d int) (time.Time, bool) {
	t := time.Date(y, m, d, 0, 0, 0, 0, p.location)
	if t.Year() != y || t.Month() != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// monthDay resolves a month/day pair; without an explicit year a date already
// past this year rolls over to the next one.
func (p *Parser) monthDay(now time.Time, m time.Month, dayStr, yearStr string) (time.Time, bool) {
	d, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	if yearStr != "" {
		y, _ := strconv.Atoi(yearStr)
		return p.exactDate(y, m, d)
	}

	t, ok := p.exactDate(now.Year(), m, d)
	if !ok {
		return time.Time{}, false
	}
	if t.Before(p.StartOfDay(now)) {
		return p.exactDate(now.Year()+1, m, d)
	}
	return t, true
}

func normalizePhrase(phrase string) string {
	s := strings.ToLower(strings.TrimSpace(phrase))
	s = punctRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
