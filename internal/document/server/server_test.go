package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/hypertabs/internal/document"
)

func TestServesDocuments(t *testing.T) {
	docs := fstest.MapFS{
		"home.xml":        {Data: []byte("<doc/>")},
		"tabs/search.xml": {Data: []byte("<doc><search/></doc>")},
		"notes.txt":       {Data: []byte("nope")},
	}
	srv := httptest.NewServer(New(docs, zerolog.Nop()))
	t.Cleanup(srv.Close)

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/home.xml", http.StatusOK, "<doc/>"},
		{"/tabs/search.xml", http.StatusOK, "<doc><search/></doc>"},
		{"/missing.xml", http.StatusNotFound, ""},
		{"/notes.txt", http.StatusNotFound, ""},
		{"/healthz", http.StatusOK, "ok"},
	}
	for _, tc := range cases {
		resp, err := http.Get(srv.URL + tc.path)
		require.NoError(t, err, tc.path)
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		require.NoError(t, err)
		require.Equal(t, tc.status, resp.StatusCode, tc.path)
		if tc.status == http.StatusOK && tc.path != "/healthz" {
			require.Equal(t, document.ContentType, resp.Header.Get("Content-Type"))
		}
		if tc.body != "" {
			require.Equal(t, tc.body, string(body))
		}
	}
}
