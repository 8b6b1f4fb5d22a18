package domain

import "strings"

// Course is a catalog entry managed by admins.
type Course struct {
	ID          string   `json:"id"`
	Code        int      `json:"code"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Provider    string   `json:"provider"`
	Image       string   `json:"image"`
	Duration    int      `json:"duration"`
	CourseURL   string   `json:"courseurl"`
	Tags        []string `json:"tags"`
}

// CoursePatch carries a partial update. Nil fields are left untouched and a
// non-nil Tags replaces the whole list.
type CoursePatch struct {
	Title       *string
	Description *string
	Provider    *string
	Image       *string
	Duration    *int
	CourseURL   *string
	Tags        *[]string
}

// Apply overwrites the fields of c that are set in p.
func (p CoursePatch) Apply(c *Course) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Provider != nil {
		c.Provider = *p.Provider
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
	if p.Duration != nil {
		c.Duration = *p.Duration
	}
	if p.CourseURL != nil {
		c.CourseURL = *p.CourseURL
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), (*p.Tags)...)
	}
}

// Matches reports whether c satisfies a catalog search query.
//
// The query is trimmed and compared case-insensitively. A blank query matches
// everything. A leading '#' restricts the match to tags; otherwise title,
// description and provider are searched.
func (c Course) Matches(query string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return true
	}
	if tag, ok := strings.CutPrefix(needle, "#"); ok {
		for _, t := range c.Tags {
			if strings.Contains(strings.ToLower(t), tag) {
				return true
			}
		}
		return false
	}
	return containsFold(c.Title, needle) ||
		containsFold(c.Description, needle) ||
		containsFold(c.Provider, needle)
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
