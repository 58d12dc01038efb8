package usecase

import (
	"context"
	"errors"
	"strings"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/filter"
	"shared-calendar/internal/model"
	"shared-calendar/internal/prefs"
	"shared-calendar/internal/session"
)

// ListGroups returns the user's calendar groups with their visibility.
func (uc *implUseCase) ListGroups(ctx context.Context, sc model.Scope) ([]calendar.GroupView, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return nil, err
	}
	groups := s.Groups.List()
	out := make([]calendar.GroupView, 0, len(groups))
	for _, grp := range groups {
		out = append(out, groupView(s, grp))
	}
	return out, nil
}

// CreateGroup creates a group over the known calendars among input.CalendarIDs.
func (uc *implUseCase) CreateGroup(ctx context.Context, sc model.Scope, input calendar.GroupInput) (calendar.GroupView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return calendar.GroupView{}, calendar.ErrEmptyGroupName
	}
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.GroupView{}, err
	}
	grp := s.Groups.Add(name, input.Color, knownCalendars(s, input.CalendarIDs))
	s.SaveGroups(ctx)
	return groupView(s, grp), nil
}

// UpdateGroup renames, recolors or re-members a group. A nil CalendarIDs
// keeps the members.
func (uc *implUseCase) UpdateGroup(ctx context.Context, sc model.Scope, input calendar.GroupInput) (calendar.GroupView, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.GroupView{}, err
	}
	var ids []string
	if input.CalendarIDs != nil {
		ids = knownCalendars(s, input.CalendarIDs)
	}
	grp, err := s.Groups.Update(input.ID, strings.TrimSpace(input.Name), input.Color, ids)
	if err != nil {
		return calendar.GroupView{}, groupError(err)
	}
	s.SaveGroups(ctx)
	return groupView(s, grp), nil
}

// DeleteGroup removes a group. Its calendars keep their visibility.
func (uc *implUseCase) DeleteGroup(ctx context.Context, sc model.Scope, groupID string) error {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return err
	}
	if _, ok := s.Groups.Get(groupID); !ok {
		return calendar.ErrGroupNotFound
	}
	s.Groups.Delete(groupID)
	s.SaveGroups(ctx)
	return nil
}

// ToggleGroup hides a fully visible group and shows any other.
func (uc *implUseCase) ToggleGroup(ctx context.Context, sc model.Scope, groupID string) (calendar.GroupView, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.GroupView{}, err
	}
	if err := s.Groups.Toggle(groupID, s.Visibility); err != nil {
		return calendar.GroupView{}, groupError(err)
	}
	s.SaveVisibility(ctx)
	grp, _ := s.Groups.Get(groupID)
	return groupView(s, grp), nil
}

func groupView(s *session.Session, grp prefs.Group) calendar.GroupView {
	return calendar.GroupView{
		Group:            grp,
		Visible:          s.Groups.Visible(grp.ID, s.Visibility),
		PartiallyVisible: s.Groups.PartiallyVisible(grp.ID, s.Visibility),
	}
}

func knownCalendars(s *session.Session, ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		if _, ok := s.Registry.Lookup(id); !ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func groupError(err error) error {
	if errors.Is(err, filter.ErrGroupNotFound) {
		return calendar.ErrGroupNotFound
	}
	return err
}
