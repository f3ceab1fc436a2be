package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body><button id="b" on-click="count++"></button></body></html>`

func TestLoadDocumentFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(file, []byte(page), 0o644))

	doc, err := LoadDocument(file)
	require.NoError(t, err)
	assert.NotNil(t, doc.GetElementByID("b"))

	_, err = LoadDocument(filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDocumentFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/page" {
			http.NotFound(w, r)
			return
		}
		assert.Contains(t, r.UserAgent(), "onevent/")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	assert.True(t, IsURL(srv.URL))
	doc, err := LoadDocument(srv.URL + "/page")
	require.NoError(t, err)
	assert.NotNil(t, doc.GetElementByID("b"))

	_, err = LoadDocument(srv.URL + "/nope")
	assert.Error(t, err)
}
