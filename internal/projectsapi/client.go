package projectsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/project"
)

// DefaultTimeout bounds a listing request when the caller does not set one.
const DefaultTimeout = 10 * time.Second

// maxBody caps how much of a listing response is read.
const maxBody = 4 << 20

// Client talks to the project list backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. A non-positive
// timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListProjects fetches every available project in backend order.
func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream returned status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}

	var records []wireProject
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", ErrFetchFailed, err)
	}

	out := make([]project.Project, 0, len(records))
	for _, r := range records {
		out = append(out, r.toProject())
	}
	return out, nil
}

type wireProject struct {
	ID          flexibleID   `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	TechStack   []string     `json:"techStack"`
	GithubURL   string       `json:"githubUrl"`
	LiveDemo    string       `json:"liveDemo"`
	DateAdded   flexibleDate `json:"dateAdded"`
	Skills      []wireSkill  `json:"skills"`
}

type wireSkill struct {
	Name  string        `json:"name"`
	Level flexibleLevel `json:"level"`
}

func (w wireProject) toProject() project.Project {
	p := project.Project{
		ID:          string(w.ID),
		Title:       w.Title,
		Description: w.Description,
		TechStack:   w.TechStack,
		GithubURL:   w.GithubURL,
		LiveDemo:    w.LiveDemo,
		DateAdded:   w.DateAdded.t,
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	for _, s := range w.Skills {
		p.Skills = append(p.Skills, project.Skill{Name: s.Name, Level: int(s.Level)})
	}
	return p
}

// flexibleID accepts both JSON strings and numbers.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = flexibleID(n.String())
	return nil
}

// flexibleDate accepts date strings and epoch milliseconds. Anything else,
// including strings that do not parse, decodes as no date.
type flexibleDate struct {
	t *time.Time
}

func (d *flexibleDate) UnmarshalJSON(data []byte) error {
	d.t = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			d.t = parseDate(s)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var ms float64
		if err := json.Unmarshal(data, &ms); err == nil {
			t := time.UnixMilli(int64(ms)).UTC()
			d.t = &t
		}
	}
	return nil
}

// flexibleLevel accepts numbers and numeric strings; other values decode as 0.
type flexibleLevel float64

func (l *flexibleLevel) UnmarshalJSON(data []byte) error {
	*l = 0
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(strings.TrimSpace(s))
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*l = flexibleLevel(f)
	}
	return nil
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate returns nil for empty or unrecognised values, which the list
// then orders as the earliest possible date.
func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
