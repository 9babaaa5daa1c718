package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/AdventureLog/worldtravel-backend/src/config"
)

// FlagResult describes what Save did for one country.
type FlagResult int

const (
	FlagCached FlagResult = iota
	FlagDownloaded
	FlagFailed
)

func (r FlagResult) String() string {
	switch r {
	case FlagCached:
		return "cached"
	case FlagDownloaded:
		return "downloaded"
	default:
		return "failed"
	}
}

// FlagDownloader keeps a local copy of every country flag.
type FlagDownloader struct {
	Dir     string
	BaseURL string
	Client  *http.Client
	Logger  *slog.Logger
}

// NewFlagDownloader stores flags under <MediaRoot>/flags.
func NewFlagDownloader(cfg *config.Config, logger *slog.Logger) *FlagDownloader {
	return &FlagDownloader{
		Dir:     cfg.FlagsDir(),
		BaseURL: cfg.FlagCDNURL,
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:  logger,
	}
}

// Path returns where the flag for code is stored.
func (d *FlagDownloader) Path(code string) string {
	return filepath.Join(d.Dir, code+".png")
}

// Save makes sure the flag for code exists on disk. An existing file is
// never re-downloaded. Download failures are logged and reported as
// FlagFailed; only local filesystem errors are returned.
func (d *FlagDownloader) Save(ctx context.Context, code string) (FlagResult, error) {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return FlagFailed, fmt.Errorf("create flags dir: %w", err)
	}

	path := d.Path(code)
	if _, err := os.Stat(path); err == nil {
		d.Logger.Debug("flag already exists", "country", code)
		return FlagCached, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return FlagFailed, fmt.Errorf("stat flag: %w", err)
	}

	url := strings.TrimRight(d.BaseURL, "/") + "/" + code + ".png"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return FlagFailed, fmt.Errorf("build flag request: %w", err)
	}

	resp, err := d.client().Do(req)
	if err != nil {
		d.Logger.Warn("error downloading flag", "country", code, "err", err)
		return FlagFailed, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		d.Logger.Warn("error downloading flag", "country", code, "status", resp.StatusCode)
		return FlagFailed, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		d.Logger.Warn("error downloading flag", "country", code, "err", err)
		return FlagFailed, nil
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return FlagFailed, fmt.Errorf("write flag: %w", err)
	}

	d.Logger.Info("flag downloaded", "country", code)
	return FlagDownloaded, nil
}

func (d *FlagDownloader) client() *http.Client {
	if d.Client != nil {
		return d.Client
	}
	return http.DefaultClient
}
