// Package content holds the site copy: owner details, skills, experience and
// links. A default set is embedded; a YAML file can replace it.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type Content struct {
	Owner      Owner    `yaml:"owner"`
	Roles      []string `yaml:"roles"`
	HomeSkills []Skill  `yaml:"home_skills"`
	Stats      []Stat   `yaml:"stats"`
	About      About    `yaml:"about"`
	Nav        []Link   `yaml:"nav"`
	Socials    []Link   `yaml:"socials"`
	Resources  []Link   `yaml:"resources"`
}

type Owner struct {
	Name   string `yaml:"name"`
	Avatar string `yaml:"avatar"`
	Intro  string `yaml:"intro"`
	Email  string `yaml:"email"`
	Phone  string `yaml:"phone"`
	Resume string `yaml:"resume"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type Stat struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type About struct {
	Skills     []Skill `yaml:"skills"`
	Experience []Entry `yaml:"experience"`
	Education  []Entry `yaml:"education"`
}

// Entry is one position or degree on the about page.
type Entry struct {
	Title        string `yaml:"title"`
	Organization string `yaml:"organization"`
	Duration     string `yaml:"duration"`
	Details      string `yaml:"details"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// External reports whether the link leaves the site.
func (l Link) External() bool {
	return strings.HasPrefix(l.Href, "http://") || strings.HasPrefix(l.Href, "https://")
}

// Default returns the embedded site copy.
func Default() (*Content, error) {
	return Parse(defaultContent)
}

// Load reads site copy from path, or the embedded default when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) Validate() error {
	if strings.TrimSpace(c.Owner.Name) == "" {
		return errors.New("content: owner.name is required")
	}
	if len(c.Nav) == 0 {
		return errors.New("content: at least one nav link is required")
	}
	for _, s := range append(append([]Skill{}, c.HomeSkills...), c.About.Skills...) {
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("content: skill %q level %d outside 0-100", s.Name, s.Level)
		}
	}
	return nil
}
