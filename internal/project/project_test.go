package project

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func titles(ps []Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func ids(ps []Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func numbered(n int) []Project {
	ps := make([]Project, n)
	for i := range ps {
		ps[i] = Project{ID: fmt.Sprint(i + 1), Title: fmt.Sprintf("Project %02d", i+1)}
	}
	return ps
}

func TestMatchesCategory(t *testing.T) {
	p := Project{TechStack: []string{"ReactJS", "Node.js"}}

	assert.True(t, MatchesCategory(p, ""))
	assert.True(t, MatchesCategory(p, "react"))
	assert.True(t, MatchesCategory(p, "NODE"))
	assert.False(t, MatchesCategory(p, "Design"))
	assert.False(t, MatchesCategory(Project{}, "API"))
}

func TestMatchesSearch(t *testing.T) {
	p := Project{Title: "Weather Dashboard", Description: "Forecasts built with a public API"}

	assert.True(t, MatchesSearch(p, ""))
	assert.True(t, MatchesSearch(p, "   "))
	assert.True(t, MatchesSearch(p, "  weather "))
	assert.True(t, MatchesSearch(p, "PUBLIC api"))
	assert.False(t, MatchesSearch(p, "react"))
}

func TestMatchesIsConjunction(t *testing.T) {
	p := Project{Title: "Shop", Description: "E-commerce storefront", TechStack: []string{"React"}}

	cases := []struct {
		name  string
		query Query
		want  bool
	}{
		{"both hold", Query{Category: "React", Search: "shop"}, true},
		{"category only fails", Query{Category: "Design", Search: "shop"}, false},
		{"search only fails", Query{Category: "React", Search: "blog"}, false},
		{"both fail", Query{Category: "Design", Search: "blog"}, false},
		{"no filters", Query{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Matches(p, tc.query))
			assert.Equal(t, MatchesCategory(p, tc.query.Category) && MatchesSearch(p, tc.query.Search), Matches(p, tc.query))
		})
	}
}

func TestFilterSearchIgnoresTechStack(t *testing.T) {
	ps := []Project{
		{ID: "1", Title: "Portfolio", Description: "Personal site", TechStack: []string{"React"}},
		{ID: "2", Title: "React Native Todo", Description: "Mobile tasks", TechStack: []string{"Expo"}},
		{ID: "3", Title: "CLI", Description: "Terminal tool", TechStack: []string{"Go"}},
	}

	got := Filter(ps, Query{Search: "react"})

	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterByCategoryKeepsOrder(t *testing.T) {
	ps := []Project{
		{ID: "a", TechStack: []string{"React"}},
		{ID: "b", TechStack: []string{"Go"}},
		{ID: "c", TechStack: []string{"react-router"}},
	}

	assert.Equal(t, []string{"a", "c"}, ids(Filter(ps, Query{Category: "React"})))
}

func TestSortByTitle(t *testing.T) {
	ps := []Project{{Title: "Zeta"}, {Title: "Alpha"}}

	assert.Equal(t, []string{"Alpha", "Zeta"}, titles(Sort(ps, SortTitleAsc)))
	assert.Equal(t, []string{"Zeta", "Alpha"}, titles(Sort(ps, SortTitleDesc)))
	assert.Equal(t, []string{"Zeta", "Alpha"}, titles(ps), "input must not be reordered")
}

func TestSortByTitleIsLocaleAware(t *testing.T) {
	ps := []Project{{Title: "beta"}, {Title: "Éclair"}, {Title: "Alpha"}, {Title: "delta"}}

	assert.Equal(t, []string{"Alpha", "beta", "delta", "Éclair"}, titles(Sort(ps, SortTitleAsc)))
}

func TestSortByDateTreatsMissingAsOldest(t *testing.T) {
	ps := []Project{
		{ID: "undated"},
		{ID: "mid", DateAdded: date("2023-05-01")},
		{ID: "new", DateAdded: date("2024-01-15")},
		{ID: "old", DateAdded: date("2021-09-30")},
	}

	assert.Equal(t, []string{"new", "mid", "old", "undated"}, ids(Sort(ps, SortDateNewest)))
	assert.Equal(t, []string{"undated", "old", "mid", "new"}, ids(Sort(ps, SortDateOldest)))
}

func TestSortIsStable(t *testing.T) {
	ps := []Project{
		{ID: "1", Title: "Same"},
		{ID: "2", Title: "Other"},
		{ID: "3", Title: "Same"},
		{ID: "4"},
		{ID: "5"},
	}

	assert.Equal(t, []string{"4", "5", "2", "1", "3"}, ids(Sort(ps, SortTitleAsc)))
	assert.Equal(t, []string{"1", "3", "2", "4", "5"}, ids(Sort(ps, SortTitleDesc)))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(Sort(ps, SortDateNewest)))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(Sort(ps, SortDateOldest)))
}

func TestSortIsIdempotent(t *testing.T) {
	ps := []Project{
		{ID: "1", Title: "Mango", DateAdded: date("2022-01-01")},
		{ID: "2", Title: "apple"},
		{ID: "3", Title: "Kiwi", DateAdded: date("2022-01-01")},
		{ID: "4", Title: "Banana", DateAdded: date("2020-06-01")},
	}

	for _, opt := range SortOptions {
		t.Run(string(opt.Key), func(t *testing.T) {
			once := Sort(ps, opt.Key)
			assert.Equal(t, once, Sort(once, opt.Key))
		})
	}
}

func TestSortUnknownKeyCopies(t *testing.T) {
	ps := []Project{{ID: "b"}, {ID: "a"}}

	got := Sort(ps, SortKey("random"))
	assert.Equal(t, ids(ps), ids(got))
	got[0].ID = "changed"
	assert.Equal(t, "b", ps[0].ID)
}

func TestPaginateThirteen(t *testing.T) {
	ps := numbered(13)

	assert.Equal(t, 3, TotalPages(len(ps), PageSize))
	assert.Len(t, Paginate(ps, 1, PageSize), 6)
	assert.Len(t, Paginate(ps, 2, PageSize), 6)
	assert.Equal(t, []string{"13"}, ids(Paginate(ps, 3, PageSize)))
	assert.Empty(t, Paginate(ps, 4, PageSize))
	assert.Empty(t, Paginate(ps, 0, PageSize))
}

func TestPaginateReconstructsSequence(t *testing.T) {
	for n := 0; n <= 20; n++ {
		ps := numbered(n)
		pages := TotalPages(n, PageSize)

		var joined []Project
		for page := 1; page <= pages; page++ {
			joined = append(joined, Paginate(ps, page, PageSize)...)
		}
		assert.Equal(t, ids(ps), ids(joined), "n=%d", n)

		wantLast := n % PageSize
		if n > 0 && wantLast == 0 {
			wantLast = PageSize
		}
		assert.Len(t, Paginate(ps, max(pages, 1), PageSize), wantLast, "n=%d", n)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(9, 3))
	assert.Equal(t, 1, ClampPage(4, 0))
}

func TestQueryParsing(t *testing.T) {
	assert.Equal(t, SortDateOldest, ParseSortKey(" date_oldest"))
	assert.Equal(t, DefaultSort, ParseSortKey("bogus"))
	assert.Equal(t, "Node.js", ParseCategory("node.js"))
	assert.Equal(t, "", ParseCategory("COBOL"))

	q := DefaultQuery()
	assert.True(t, q.IsDefault())
	assert.Equal(t, 1, q.Page)
	q.Sort = SortTitleDesc
	assert.False(t, q.IsDefault())
}
