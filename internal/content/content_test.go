package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Your Name", c.Owner.Name)
	assert.Len(t, c.Roles, 4)
	assert.Len(t, c.HomeSkills, 6)
	assert.Equal(t, "CSS & HTML5", c.HomeSkills[4].Name)
	assert.Len(t, c.Stats, 3)
	assert.Len(t, c.About.Experience, 2)
	assert.Equal(t, "Innovatech Solutions", c.About.Experience[0].Organization)
	assert.Len(t, c.About.Education, 1)
	assert.Equal(t, []string{"Home", "About", "Projects"}, []string{c.Nav[0].Label, c.Nav[1].Label, c.Nav[2].Label})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
owner:
  name: Ada
nav:
  - { label: Home, href: / }
home_skills:
  - { name: Go, level: 99 }
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.Owner.Name)
	assert.Equal(t, 99, c.HomeSkills[0].Level)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Your Name", c.Owner.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read content file")
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "owner: [",
		"no owner":      "nav:\n  - { label: Home, href: / }\n",
		"no nav":        "owner:\n  name: Ada\n",
		"skill too big": "owner:\n  name: Ada\nnav:\n  - { label: Home, href: / }\nabout:\n  skills:\n    - { name: Go, level: 101 }\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLinkExternal(t *testing.T) {
	assert.True(t, Link{Href: "https://github.com/me"}.External())
	assert.False(t, Link{Href: "/about"}.External())
}
