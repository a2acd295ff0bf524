package present

import (
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/project"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	short := Truncate("short text", CardDescriptionLimit)
	assert.False(t, short.Truncated)
	assert.Equal(t, "short text", short.Short)

	long := strings.Repeat("a", 200)
	got := Truncate(long, CardDescriptionLimit)
	assert.True(t, got.Truncated)
	assert.Equal(t, strings.Repeat("a", 160)+"...", got.Short)
	assert.Equal(t, long, got.Full)

	exact := strings.Repeat("b", 160)
	assert.False(t, Truncate(exact, CardDescriptionLimit).Truncated)

	multibyte := Truncate("héllo wörld", 5)
	assert.Equal(t, "héllo...", multibyte.Short)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(-5))
	assert.Equal(t, 42, Progress(42))
	assert.Equal(t, 100, Progress(140))
}

func TestSkillsOrDefault(t *testing.T) {
	own := []project.Skill{{Name: "Go", Level: 90}}
	assert.Equal(t, own, SkillsOrDefault(own))

	fallback := SkillsOrDefault(nil)
	assert.Len(t, fallback, 3)
	assert.Equal(t, "React", fallback[0].Name)

	fallback[0].Name = "changed"
	assert.Equal(t, "React", SkillsOrDefault(nil)[0].Name)
}

func TestDomID(t *testing.T) {
	assert.Equal(t, "project-title-42", DomID("project-title", "42"))
	assert.Equal(t, "project-weather-app", DomID("project", "weather-app"))

	assert.Regexp(t, `^skill-node-js-[0-9a-f]{8}$`, DomID("skill", "Node.js"))
	assert.Regexp(t, `^skill-css-html5-[0-9a-f]{8}$`, DomID("skill", "CSS & HTML5"))
	assert.Regexp(t, `^project-[0-9a-f]{8}$`, DomID("project", "???"))
	assert.Equal(t, DomID("skill", "Node.js"), DomID("skill", "Node.js"))
}

func TestDomIDDistinctLabels(t *testing.T) {
	pairs := [][2]string{
		{"a_1", "a-1"},
		{"A1", "a1"},
		{"C#", "C++"},
		{"Node.js", "node js"},
	}
	for _, p := range pairs {
		assert.NotEqual(t, DomID("project", p[0]), DomID("project", p[1]), "%q vs %q", p[0], p[1])
	}
}
