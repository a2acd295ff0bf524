package project

import "time"

// Project is a single portfolio entry as returned by the project list backend.
// Records are treated as read-only once fetched; the listing pipeline only
// filters and reorders references to them.
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TechStack   []string   `json:"techStack"`
	GithubURL   string     `json:"githubUrl"`
	LiveDemo    string     `json:"liveDemo"`
	DateAdded   *time.Time `json:"dateAdded,omitempty"`
	Skills      []Skill    `json:"skills,omitempty"`
}

// Skill is a named proficiency rating shown on a project card.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// addedAt returns the project's date, or the zero time when it has none so
// that undated projects sort as the oldest.
func (p Project) addedAt() time.Time {
	if p.DateAdded == nil {
		return time.Time{}
	}
	return *p.DateAdded
}
