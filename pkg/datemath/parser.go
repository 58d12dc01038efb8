// Package datemath resolves the day expressions accepted by the layout
// endpoints: plain dates and a small set of relative phrases.
package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the absolute day format.
const DateFormat = "2006-01-02"

// ErrUnrecognized is returned for expressions that are neither a date nor a
// known relative phrase.
var ErrUnrecognized = errors.New("datemath: unrecognized day expression")

var (
	offsetRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	agoRe    = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parser resolves day expressions in a fixed zone.
type Parser struct {
	location *time.Location
}

// NewParser returns a parser for loc. A nil loc means UTC.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Parse resolves expr relative to base and returns local midnight of the
// resulting day. Accepted forms: YYYY-MM-DD, today, tomorrow, yesterday,
// "in N days|weeks|months", "N days|weeks|months ago", "next <weekday>" and
// "last <weekday>".
func (p *Parser) Parse(expr string, base time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.Join(strings.Fields(expr), " "))

	if t, err := time.ParseInLocation(DateFormat, expr, p.location); err == nil {
		return t, nil
	}

	switch expr {
	case "today":
		return p.StartOfDay(base), nil
	case "tomorrow":
		return p.StartOfDay(base).AddDate(0, 0, 1), nil
	case "yesterday":
		return p.StartOfDay(base).AddDate(0, 0, -1), nil
	}

	if m := offsetRe.FindStringSubmatch(expr); m != nil {
		return p.shift(base, m[1], m[2], 1)
	}
	if m := agoRe.FindStringSubmatch(expr); m != nil {
		return p.shift(base, m[1], m[2], -1)
	}
	if name, ok := strings.CutPrefix(expr, "next "); ok {
		return p.weekday(base, name, 1)
	}
	if name, ok := strings.CutPrefix(expr, "last "); ok {
		return p.weekday(base, name, -1)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

func (p *Parser) shift(base time.Time, amount, unit string, sign int) (time.Time, error) {
	n, err := strconv.Atoi(amount)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, amount)
	}
	n *= sign
	day := p.StartOfDay(base)
	switch {
	case strings.HasPrefix(unit, "day"):
		return day.AddDate(0, 0, n), nil
	case strings.HasPrefix(unit, "week"):
		return day.AddDate(0, 0, 7*n), nil
	default:
		return day.AddDate(0, n, 0), nil
	}
}

// weekday moves to the nearest matching weekday strictly after (dir 1) or
// before (dir -1) base.
func (p *Parser) weekday(base time.Time, name string, dir int) (time.Time, error) {
	target, ok := weekdays[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, name)
	}
	day := p.StartOfDay(base)
	diff := (int(target) - int(day.Weekday())) * dir
	if diff <= 0 {
		diff += 7
	}
	return day.AddDate(0, 0, diff*dir), nil
}

// StartOfDay returns midnight of t's day in the parser's zone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// StartOfWeek returns midnight of the Sunday on or before t.
func (p *Parser) StartOfWeek(t time.Time) time.Time {
	day := p.StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
