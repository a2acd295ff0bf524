// Package listing holds the view state of the project list: the fetched
// projects, the user's query, and the page currently visible.
package listing

import (
	"context"
	"sync"

	"github.com/Zachkp/portfolio/internal/project"
)

// FetchFailedMessage is shown whenever the project list cannot be loaded.
const FetchFailedMessage = "Failed to fetch projects. Please try again later."

// State is the lifecycle of a project list view.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Fetcher lists every available project.
type Fetcher interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
}

// View is a snapshot of what the list should render.
type View struct {
	State      State
	Error      string
	Items      []project.Project
	Query      project.Query
	Page       int
	TotalPages int
	Total      int
	// Filtered reports whether search, category or sort differ from their defaults.
	Filtered bool
}

// Controller owns one mounted project list. The fetched source slice is never
// modified; every query change recomputes the visible page from it.
type Controller struct {
	fetcher Fetcher

	mu       sync.Mutex
	state    State
	errMsg   string
	source   []project.Project
	query    project.Query
	filtered []project.Project
	visible  []project.Project
	closed   bool
	// loads counts Load calls so that only the latest one may settle.
	loads int
}

// New returns a controller in the loading state with the default query.
func New(fetcher Fetcher) *Controller {
	return &Controller{
		fetcher: fetcher,
		state:   StateLoading,
		query:   project.DefaultQuery(),
	}
}

// Load fetches the projects and settles the controller into ready or error.
// A result that arrives after Close, or after ctx is cancelled, is dropped
// and the context error is returned instead.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return context.Canceled
	}
	c.state = StateLoading
	c.errMsg = ""
	c.loads++
	seq := c.loads
	c.mu.Unlock()

	projects, err := c.fetcher.ListProjects(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || seq != c.loads {
		return context.Canceled
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		c.state = StateError
		c.errMsg = FetchFailedMessage
		c.source = nil
		c.filtered = nil
		c.visible = nil
		return err
	}

	c.state = StateReady
	c.source = projects
	c.recompute()
	return nil
}

// Close tears the view down. Pending loads will not update it.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetSearch replaces the search text and returns to the first page.
func (c *Controller) SetSearch(text string) {
	c.update(func(q *project.Query) {
		q.Search = text
		q.Page = 1
	})
}

// SetCategory replaces the category filter and returns to the first page.
// An empty category removes the filter.
func (c *Controller) SetCategory(category string) {
	c.update(func(q *project.Query) {
		q.Category = category
		q.Page = 1
	})
}

// SetSort replaces the ordering and returns to the first page.
func (c *Controller) SetSort(key project.SortKey) {
	c.update(func(q *project.Query) {
		q.Sort = key
		q.Page = 1
	})
}

// SetPage moves to page, clamped to the available pages.
func (c *Controller) SetPage(page int) {
	c.update(func(q *project.Query) {
		q.Page = page
	})
}

// Apply restores a whole query at once, as when a list is mounted from a
// bookmarked URL. The page is clamped like SetPage.
func (c *Controller) Apply(q project.Query) {
	c.update(func(cur *project.Query) {
		*cur = q
		if cur.Sort == "" {
			cur.Sort = project.DefaultSort
		}
	})
}

// ClearFilters restores the default search, category, sort and page in one step.
func (c *Controller) ClearFilters() {
	c.update(func(q *project.Query) {
		*q = project.DefaultQuery()
	})
}

// View returns a snapshot for rendering.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		State:    c.state,
		Error:    c.errMsg,
		Query:    c.query,
		Page:     c.query.Page,
		Filtered: !c.query.IsDefault(),
	}
	if c.state == StateReady {
		v.Items = c.visible
		v.Total = len(c.filtered)
		v.TotalPages = project.TotalPages(len(c.filtered), project.PageSize)
	}
	return v
}

// update applies fn to the query while ready. In any other state the query
// is left alone and the pipeline does not run.
func (c *Controller) update(fn func(q *project.Query)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady || c.closed {
		return
	}
	fn(&c.query)
	c.recompute()
}

// recompute runs filter, sort and paginate over the source. The caller holds mu.
func (c *Controller) recompute() {
	matched := project.Filter(c.source, c.query)
	c.filtered = project.Sort(matched, c.query.Sort)
	c.query.Page = project.ClampPage(c.query.Page, project.TotalPages(len(c.filtered), project.PageSize))
	c.visible = project.Paginate(c.filtered, c.query.Page, project.PageSize)
}
