package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<html><body>
<a href="/docs/math_5.pdf">Математика 5 клас</a>
<a href="/docs/math_5.pdf">Дубль</a>
<a href="https://other.example/bio_6.pdf"><b>Біологія 6 клас</b></a>
<a href="/news/2026.html">Новини</a>
</body></html>`

func TestFindDocuments_ExtractsPDFLinks(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(listingHTML))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	links, err := c.FindDocuments(context.Background(), "математика")
	require.NoError(t, err)

	require.Len(t, links, 2, "duplicates and non-PDF links must be dropped")
	assert.Equal(t, "Математика 5 клас", links[0].Title)
	assert.Equal(t, srv.URL+"/docs/math_5.pdf", links[0].URL)
	assert.Equal(t, "Біологія 6 клас", links[1].Title)
	assert.Equal(t, "https://other.example/bio_6.pdf", links[1].URL)
	assert.Equal(t, userAgent, gotUA)
}

func TestFindDocuments_UsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(listingHTML))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewCache(t.TempDir(), DefaultTTL))

	_, err := c.FindDocuments(context.Background(), "математика")
	require.NoError(t, err)
	_, err = c.FindDocuments(context.Background(), "математика")
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second lookup must be served from cache")
}

func TestFindDocuments_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.FindDocuments(context.Background(), "x")
	assert.Error(t, err)
}

func TestFetchDocument_CachesBody(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("%PDF-1.4 зміст"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewCache(t.TempDir(), DefaultTTL))

	body, err := c.FetchDocument(context.Background(), srv.URL+"/doc.pdf")
	require.NoError(t, err)
	assert.Contains(t, string(body), "%PDF")

	again, err := c.FetchDocument(context.Background(), srv.URL+"/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, body, again)
	assert.Equal(t, 1, hits)
}
