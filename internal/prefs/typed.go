package prefs

// Group is a user-defined set of calendars toggled together.
type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	CalendarIDs []string `json:"calendarIds"`
	CreatedAt   string   `json:"createdAt"`
}

// LoadVisibility returns the saved visible calendar ids, or nil when none were saved.
func (s *Store) LoadVisibility(userID string) ([]string, error) {
	var ids []string
	if _, err := s.Load(userID, KeyVisibility, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Store) SaveVisibility(userID string, ids []string) error {
	return s.Save(userID, KeyVisibility, nonNil(ids))
}

// LoadCategories returns the saved category selection, or nil when none was saved.
func (s *Store) LoadCategories(userID string) ([]string, error) {
	var values []string
	if _, err := s.Load(userID, KeyCategories, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *Store) SaveCategories(userID string, values []string) error {
	return s.Save(userID, KeyCategories, nonNil(values))
}

// LoadColors returns the calendar id → hex color map. Never nil.
func (s *Store) LoadColors(userID string) (map[string]string, error) {
	colors := map[string]string{}
	if _, err := s.Load(userID, KeyColors, &colors); err != nil {
		return map[string]string{}, err
	}
	if colors == nil {
		colors = map[string]string{}
	}
	return colors, nil
}

func (s *Store) SaveColors(userID string, colors map[string]string) error {
	return s.Save(userID, KeyColors, colors)
}

func (s *Store) LoadGroups(userID string) ([]Group, error) {
	var groups []Group
	if _, err := s.Load(userID, KeyGroups, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *Store) SaveGroups(userID string, groups []Group) error {
	if groups == nil {
		groups = []Group{}
	}
	return s.Save(userID, KeyGroups, groups)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
