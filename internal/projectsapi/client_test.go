package projectsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListProjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 7, "title": "Weather", "description": "Forecasts", "techStack": ["React", "API"],
			 "githubUrl": "https://github.com/me/weather", "liveDemo": "https://weather.example.com",
			 "dateAdded": "2024-03-01T10:00:00Z", "skills": [{"name": "React", "level": 80}]},
			{"id": "abc", "title": "Blog", "description": "Notes", "techStack": null, "dateAdded": "2023-11-20"},
			{"id": 3.0, "title": "Odd", "description": "", "techStack": ["Go"], "dateAdded": "not a date"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", time.Second)
	got, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, []string{"React", "API"}, got[0].TechStack)
	require.NotNil(t, got[0].DateAdded)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), got[0].DateAdded.UTC())
	require.Len(t, got[0].Skills, 1)
	assert.Equal(t, 80, got[0].Skills[0].Level)

	assert.Equal(t, "abc", got[1].ID)
	assert.Empty(t, got[1].TechStack)
	require.NotNil(t, got[1].DateAdded)
	assert.Equal(t, 2023, got[1].DateAdded.Year())
	assert.Nil(t, got[1].Skills)

	assert.Equal(t, "3.0", got[2].ID)
	assert.Nil(t, got[2].DateAdded)
}

func TestClient_ListProjects_LooseFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "title": "Epoch", "dateAdded": 1700000000000, "skills": [{"name": "Go", "level": "75"}]},
			{"id": 2, "title": "Bogus", "dateAdded": "someday", "skills": [{"name": "SQL", "level": "lots"}]},
			{"id": 3, "title": "Odd", "dateAdded": {"at": "2024"}, "skills": [{"name": "CSS", "level": true}]}
		]`))
	}))
	defer server.Close()

	got, err := NewClient(server.URL, time.Second).ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.NotNil(t, got[0].DateAdded)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), got[0].DateAdded.UTC())
	assert.Equal(t, 75, got[0].Skills[0].Level)

	assert.Nil(t, got[1].DateAdded)
	assert.Equal(t, 0, got[1].Skills[0].Level)

	assert.Nil(t, got[2].DateAdded)
	assert.Equal(t, 0, got[2].Skills[0].Level)
}

func TestClient_ListProjects_Failures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"projects": `))
		}},
		{"object instead of array", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"projects": []}`))
		}},
		{"bad id", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": true}]`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			_, err := NewClient(server.URL, time.Second).ListProjects(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFetchFailed))
		})
	}
}

func TestClient_ListProjects_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := NewClient(server.URL, 50*time.Millisecond).ListProjects(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestClient_ListProjects_Unreachable(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist.invalid", time.Second)

	_, err := client.ListProjects(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestNewClientDefaultsTimeout(t *testing.T) {
	client := NewClient("http://localhost:5000", 0)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	assert.Equal(t, "http://localhost:5000", client.baseURL)
}
