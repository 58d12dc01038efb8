package usecase

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/model"
)

const (
	// MinSearchLength is the shortest query that is matched at all.
	MinSearchLength = 2
	// SearchLimit caps each result list.
	SearchLimit = 10
)

// Search matches the query case-insensitively against event titles and
// descriptions and calendar names, over every owned and shared calendar
// regardless of filters. It reads the session's cache and registry only.
// Queries shorter than MinSearchLength return empty lists.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input calendar.SearchInput) (calendar.SearchOutput, error) {
	out := calendar.SearchOutput{Events: []model.Event{}, Calendars: []model.Calendar{}}
	query := strings.ToLower(strings.TrimSpace(input.Query))
	if utf8.RuneCountInString(query) < MinSearchLength {
		return out, nil
	}

	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.SearchOutput{}, err
	}

	for _, ev := range s.Cache.LoadAll(ctx, false) {
		if matches(ev.Title, query) || matches(ev.Description, query) {
			out.Events = append(out.Events, ev)
		}
	}
	sort.SliceStable(out.Events, func(i, j int) bool {
		return out.Events[i].Start.Before(out.Events[j].Start)
	})
	if len(out.Events) > SearchLimit {
		out.Events = out.Events[:SearchLimit]
	}

	for _, cal := range append(s.Registry.Owned(), s.Registry.Shared()...) {
		if len(out.Calendars) == SearchLimit {
			break
		}
		if matches(cal.Name, query) {
			out.Calendars = append(out.Calendars, cal)
		}
	}

	uc.l.Debugf(ctx, "uc.Search: user=%s query=%q events=%d calendars=%d", sc.UserID, query, len(out.Events), len(out.Calendars))
	return out, nil
}

func matches(text, query string) bool {
	return text != "" && strings.Contains(strings.ToLower(text), query)
}
