package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/listing"
	"github.com/Zachkp/portfolio/internal/project"
)

// pageLink is one entry of the pagination bar.
type pageLink struct {
	Number  int
	URL     string
	PushURL string
	Current bool
}

// listPage is the data behind the project list fragment.
type listPage struct {
	listing.View
	Pages   []pageLink
	Prev    *pageLink
	Next    *pageLink
	Cleared bool
}

// queryFromRequest reads q, category, sort and page. Anything unknown falls
// back to its default.
func queryFromRequest(c *gin.Context) project.Query {
	q := project.DefaultQuery()
	q.Search = c.Query("q")
	q.Category = project.ParseCategory(c.Query("category"))
	q.Sort = project.ParseSortKey(c.Query("sort"))
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = page
	}
	return q
}

func encodeQuery(q project.Query, page int) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Sort != "" && q.Sort != project.DefaultSort {
		v.Set("sort", string(q.Sort))
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return v.Encode()
}

func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

func newListPage(v listing.View, cleared bool) listPage {
	lp := listPage{View: v, Cleared: cleared}
	if v.State != listing.StateReady || len(v.Items) == 0 {
		return lp
	}
	link := func(n int) *pageLink {
		enc := encodeQuery(v.Query, n)
		return &pageLink{
			Number:  n,
			URL:     withQuery("/projects/list", enc),
			PushURL: withQuery("/projects", enc),
			Current: n == v.Page,
		}
	}
	for n := 1; n <= v.TotalPages; n++ {
		lp.Pages = append(lp.Pages, *link(n))
	}
	if v.Page > 1 {
		lp.Prev = link(v.Page - 1)
	}
	if v.Page < v.TotalPages {
		lp.Next = link(v.Page + 1)
	}
	return lp
}

// projectsPage renders the shell in the loading state. The list itself is
// fetched by HTMX from /projects/list with the same query.
func (s *Server) projectsPage(c *gin.Context) {
	q := queryFromRequest(c)
	s.render(c, http.StatusOK, "projects.html", "Selected Projects", gin.H{
		"query":       q,
		"listURL":     withQuery("/projects/list", encodeQuery(q, q.Page)),
		"categories":  project.Categories,
		"sortOptions": project.SortOptions,
	})
}

// projectsList mounts one list view: fetch, apply the query, render, tear down.
func (s *Server) projectsList(c *gin.Context) {
	ctrl := listing.New(s.deps.Projects)
	defer ctrl.Close()

	ctx := c.Request.Context()
	if err := ctrl.Load(ctx); err != nil {
		if ctx.Err() != nil {
			// The visitor went away; nothing will read the fragment.
			c.Abort()
			return
		}
		s.deps.Log.Warn("project list fetch", "error", err)
	}

	cleared := c.Query("clear") != ""
	if cleared {
		ctrl.ClearFilters()
	} else {
		ctrl.Apply(queryFromRequest(c))
	}

	v := ctrl.View()
	status := http.StatusOK
	if isHTMX(c) {
		c.Header("HX-Push-Url", withQuery("/projects", encodeQuery(v.Query, v.Page)))
	} else if v.State == listing.StateError {
		// HTMX only swaps 2xx responses, so the error status is for direct requests.
		status = http.StatusBadGateway
	}

	c.HTML(status, "projects-list.html", gin.H{
		"list":        newListPage(v, cleared),
		"query":       v.Query,
		"categories":  project.Categories,
		"sortOptions": project.SortOptions,
	})
}
