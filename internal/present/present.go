// Package present holds side-effect-free display helpers used by the templates.
package present

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/Zachkp/portfolio/internal/project"
)

// CardDescriptionLimit is the length after which a card description collapses
// behind "Read More".
const CardDescriptionLimit = 160

// Excerpt is a possibly shortened description.
type Excerpt struct {
	Short     string
	Full      string
	Truncated bool
}

// Truncate shortens text to max runes followed by "..." when it is longer.
func Truncate(text string, max int) Excerpt {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return Excerpt{Short: text, Full: text}
	}
	runes := []rune(text)
	return Excerpt{
		Short:     string(runes[:max]) + "...",
		Full:      text,
		Truncated: true,
	}
}

// Progress clamps a proficiency level to a 0-100 bar width.
func Progress(level int) int {
	return min(max(level, 0), 100)
}

var defaultSkills = []project.Skill{
	{Name: "React", Level: 80},
	{Name: "JS", Level: 75},
	{Name: "Material-UI", Level: 85},
}

// SkillsOrDefault returns skills, or the placeholder ratings shown on cards
// for projects that have none.
func SkillsOrDefault(skills []project.Skill) []project.Skill {
	if len(skills) > 0 {
		return skills
	}
	out := make([]project.Skill, len(defaultSkills))
	copy(out, defaultSkills)
	return out
}

// DomID turns a label into a stable element id fragment. Labels that are
// not already lowercase slugs get a short hash of the raw label appended, so
// "a_1" and "a-1" never share an id.
func DomID(prefix, label string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == label {
		return prefix + "-" + slug
	}
	h := fnv.New32a()
	h.Write([]byte(label))
	if slug == "" {
		return fmt.Sprintf("%s-%08x", prefix, h.Sum32())
	}
	return fmt.Sprintf("%s-%s-%08x", prefix, slug, h.Sum32())
}
