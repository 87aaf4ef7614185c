package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableSources struct {
	mu   sync.Mutex
	rows map[core.SourceKey][]core.Row
}

func (t *tableSources) FetchSource(_ context.Context, _ string, key core.SourceKey) ([]core.Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows[key], nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(context.Context, string) (string, error) {
	return s.text, s.err
}

func newTestServer(t *testing.T, extractor core.TextExtractor) (*httptest.Server, *tableSources) {
	t.Helper()
	src := &tableSources{rows: map[core.SourceKey][]core.Row{
		core.SourceSettings: {{"Key": "Name", "Value": "Jane Doe"}},
		core.SourceResume: {
			{"Section": "Summary", "Details": "FX artist."},
			{"Section": "ResumeLink", "Details": "https://cdn.test/cv.pdf"},
		},
		core.SourceContact: {
			{"Type": "blurb", "Value": "Say hello"},
			{"Type": "Phone", "Value": "+1 (555) 010"},
		},
		core.SourceCatalog: {
			{"Title": "Pyro", "URL": "https://youtu.be/abc", "Tags": "fx"},
			{"Title": "Brief", "URL": "https://cdn.test/b.mp4", "Status": "WIP", "Description": "https://cdn.test/brief.pdf"},
		},
	}}
	s := site.New(src, site.URLs{}, nil)
	s.LoadAll(context.Background())

	server := httptest.NewServer(New(s, extractor, nil).Handler())
	t.Cleanup(server.Close)
	return server, src
}

func getJSON(t *testing.T, url string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t, stubExtractor{})
	var body map[string]string
	getJSON(t, server.URL+"/healthz", http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestSettings(t *testing.T) {
	server, _ := newTestServer(t, stubExtractor{})
	var body settingsResponse
	getJSON(t, server.URL+"/api/settings", http.StatusOK, &body)

	assert.Equal(t, "Jane Doe", body.Settings[core.SettingName])
	assert.Empty(t, body.ReelURL)
	assert.Equal(t, "Add ReelURL in SiteSettings to enable this link.", body.ReelNotice)
	assert.Equal(t, "https://cdn.test/cv.pdf", body.ResumeLink)
}

func TestResumeAndContact(t *testing.T) {
	server, _ := newTestServer(t, stubExtractor{})

	var resume core.Resume
	getJSON(t, server.URL+"/api/resume", http.StatusOK, &resume)
	assert.Equal(t, "FX artist.", resume.Summary)

	var contact contactResponse
	getJSON(t, server.URL+"/api/contact", http.StatusOK, &contact)
	assert.Equal(t, "Say hello", contact.Blurb)
	require.Len(t, contact.Links, 1)
	assert.Equal(t, contactLink{Kind: "phone", Label: "+1 (555) 010", Href: "tel:+1555010"}, contact.Links[0])
}

func TestWorks_LoadsAndFilters(t *testing.T) {
	server, _ := newTestServer(t, stubExtractor{})

	var all worksResponse
	getJSON(t, server.URL+"/api/works", http.StatusOK, &all)
	assert.Equal(t, []string{"ALL", "WIP", "FX"}, all.Categories)
	assert.Equal(t, "ALL", all.Active)
	require.Len(t, all.Items, 2)
	assert.Equal(t, "https://i.ytimg.com/vi/abc/hqdefault.jpg", all.Items[0].Thumbnail)
	assert.Equal(t, "youtube", all.Items[0].EmbedKind)

	var wip worksResponse
	getJSON(t, server.URL+"/api/works?filter=WIP", http.StatusOK, &wip)
	assert.Equal(t, "WIP", wip.Active)
	require.Len(t, wip.Items, 1)
	assert.Equal(t, "Brief", wip.Items[0].Title)
	assert.Equal(t, 0, wip.Items[0].Index)

	var unknown worksResponse
	getJSON(t, server.URL+"/api/works?filter=NOPE", http.StatusOK, &unknown)
	assert.Equal(t, "ALL", unknown.Active)
}

func TestWorks_FilterIsPerRequest(t *testing.T) {
	server, _ := newTestServer(t, stubExtractor{})

	var fx, wip, plain worksResponse
	getJSON(t, server.URL+"/api/works?filter=fx", http.StatusOK, &fx)
	getJSON(t, server.URL+"/api/works?filter=WIP", http.StatusOK, &wip)
	getJSON(t, server.URL+"/api/works", http.StatusOK, &plain)

	assert.Equal(t, "FX", fx.Active)
	assert.Equal(t, "WIP", wip.Active)
	assert.Equal(t, "ALL", plain.Active)
	assert.Len(t, plain.Items, 2)
}

func TestPopup(t *testing.T) {
	server, _ := newTestServer(t, stubExtractor{err: errors.New("blocked")})

	var works worksResponse
	getJSON(t, server.URL+"/api/works", http.StatusOK, &works)

	var view struct {
		State     string `json:"state"`
		Title     string `json:"title"`
		ViewerURL string `json:"viewer_url"`
		Player    struct {
			Tag string `json:"tag"`
		} `json:"player"`
	}
	getJSON(t, server.URL+"/api/works/1/popup", http.StatusOK, &view)
	assert.Equal(t, "fallback_viewer", view.State)
	assert.Equal(t, "Brief", view.Title)
	assert.Equal(t, "video", view.Player.Tag)
	assert.Equal(t, "https://docs.google.com/gview?embedded=1&url=https%3A%2F%2Fcdn.test%2Fbrief.pdf", view.ViewerURL)

	getJSON(t, server.URL+"/api/works/0/popup", http.StatusOK, &view)
	assert.Equal(t, "plain_description", view.State)
}

func TestPopup_IndexFollowsRequestFilter(t *testing.T) {
	server, _ := newTestServer(t, stubExtractor{err: errors.New("blocked")})

	var view struct {
		Title string `json:"title"`
	}
	getJSON(t, server.URL+"/api/works/0/popup?filter=WIP", http.StatusOK, &view)
	assert.Equal(t, "Brief", view.Title)

	// A filtered request elsewhere does not shift the unfiltered view.
	getJSON(t, server.URL+"/api/works/0/popup", http.StatusOK, &view)
	assert.Equal(t, "Pyro", view.Title)

	var body errorResponse
	getJSON(t, server.URL+"/api/works/1/popup?filter=WIP", http.StatusNotFound, &body)
}

func TestPopup_BadIndex(t *testing.T) {
	server, _ := newTestServer(t, stubExtractor{})

	var body errorResponse
	getJSON(t, server.URL+"/api/works/7/popup", http.StatusNotFound, &body)
	assert.Contains(t, body.Error, "7")

	getJSON(t, server.URL+"/api/works/x/popup", http.StatusBadRequest, &body)
	assert.Equal(t, "index must be an integer", body.Error)
}
