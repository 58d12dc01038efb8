package usecase

import (
	"context"

	"shared-calendar/internal/calendar"
	"shared-calendar/internal/model"
)

// SetVisibility shows, hides or toggles one calendar and persists the set.
func (uc *implUseCase) SetVisibility(ctx context.Context, sc model.Scope, input calendar.SetVisibilityInput) (bool, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return false, err
	}
	if _, ok := s.Registry.Lookup(input.CalendarID); !ok {
		return false, calendar.ErrCalendarNotFound
	}

	var visible bool
	if input.Visible == nil {
		visible = s.Visibility.Toggle(input.CalendarID)
	} else {
		visible = *input.Visible
		s.Visibility.SetVisible([]string{input.CalendarID}, visible)
	}
	s.SaveVisibility(ctx)
	return visible, nil
}

// ToggleCategory flips one category in the selection.
func (uc *implUseCase) ToggleCategory(ctx context.Context, sc model.Scope, category model.Category) (calendar.CategoriesOutput, error) {
	if !category.Valid() {
		return calendar.CategoriesOutput{}, calendar.ErrInvalidCategory
	}
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.CategoriesOutput{}, err
	}
	s.Categories.Toggle(category)
	s.SaveCategories(ctx)
	return calendar.CategoriesOutput{Selected: s.Categories.Values()}, nil
}

// SelectAllCategories selects every category.
func (uc *implUseCase) SelectAllCategories(ctx context.Context, sc model.Scope) (calendar.CategoriesOutput, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.CategoriesOutput{}, err
	}
	s.Categories.SelectAll()
	s.SaveCategories(ctx)
	return calendar.CategoriesOutput{Selected: s.Categories.Values()}, nil
}

// ClearCategories deselects every category. Uncategorized events stay visible.
func (uc *implUseCase) ClearCategories(ctx context.Context, sc model.Scope) (calendar.CategoriesOutput, error) {
	s, err := uc.session(ctx, sc)
	if err != nil {
		return calendar.CategoriesOutput{}, err
	}
	s.Categories.Clear()
	s.SaveCategories(ctx)
	return calendar.CategoriesOutput{Selected: s.Categories.Values()}, nil
}
