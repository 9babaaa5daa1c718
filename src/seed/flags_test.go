package seed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nflag")

// newFlagServer serves a fake flag for every code except "zz".
func newFlagServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/zz.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(pngBytes)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestDownloader(t *testing.T, baseURL string) *FlagDownloader {
	t.Helper()
	return &FlagDownloader{
		Dir:     filepath.Join(t.TempDir(), "media", "flags"),
		BaseURL: baseURL,
		Client:  http.DefaultClient,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestFlagDownloadThenCache(t *testing.T) {
	srv, hits := newFlagServer(t)
	d := newTestDownloader(t, srv.URL)

	res, err := d.Save(context.Background(), "us")
	require.NoError(t, err)
	assert.Equal(t, FlagDownloaded, res)

	data, err := os.ReadFile(d.Path("us"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	res, err = d.Save(context.Background(), "us")
	require.NoError(t, err)
	assert.Equal(t, FlagCached, res)
	assert.EqualValues(t, 1, hits.Load())
}

func TestFlagExistingFileSkipsNetwork(t *testing.T) {
	srv, hits := newFlagServer(t)
	d := newTestDownloader(t, srv.URL)
	require.NoError(t, os.MkdirAll(d.Dir, 0o755))
	require.NoError(t, os.WriteFile(d.Path("de"), []byte("old"), 0o644))

	res, err := d.Save(context.Background(), "de")
	require.NoError(t, err)
	assert.Equal(t, FlagCached, res)
	assert.EqualValues(t, 0, hits.Load())

	data, err := os.ReadFile(d.Path("de"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestFlagNon200IsNotFatal(t *testing.T) {
	srv, _ := newFlagServer(t)
	d := newTestDownloader(t, srv.URL)

	res, err := d.Save(context.Background(), "zz")
	require.NoError(t, err)
	assert.Equal(t, FlagFailed, res)
	assert.NoFileExists(t, d.Path("zz"))
	assert.DirExists(t, d.Dir)
}

func TestFlagUnreachableCDNIsNotFatal(t *testing.T) {
	srv, _ := newFlagServer(t)
	srv.Close()
	d := newTestDownloader(t, srv.URL)

	res, err := d.Save(context.Background(), "fr")
	require.NoError(t, err)
	assert.Equal(t, FlagFailed, res)
	assert.NoFileExists(t, d.Path("fr"))
}
