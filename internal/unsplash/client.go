package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NiHaiden/wally/internal/domain"
	"go.uber.org/zap"
)

const (
	_apiBase   = "https://api.unsplash.com"
	_userAgent = "wallyd/1.0"
)

// Client talks to the Unsplash HTTP API. It implements both the image
// provider and the download attribution notifier consumed by the
// rotation scheduler.
type Client struct {
	logger   *zap.Logger
	client   *http.Client
	settings domain.SettingsStore
	res      *domain.ScreenResolution
	baseURL  string
}

var (
	_ domain.ImageProvider    = (*Client)(nil)
	_ domain.DownloadNotifier = (*Client)(nil)
)

// NewClient creates an Unsplash API client. The settings store supplies
// the access key at call time so key changes take effect without
// reconstructing the client.
func NewClient(logger *zap.Logger, settings domain.SettingsStore, res *domain.ScreenResolution) *Client {
	return &Client{
		logger: logger,
		client: &http.Client{
			Timeout: 15 * time.Second, // Essential to prevent blocking the daemon
		},
		settings: settings,
		res:      res,
		baseURL:  _apiBase,
	}
}

// FetchRandom returns one random landscape photo, scoped to collectionID
// when non-empty.
func (c *Client) FetchRandom(ctx context.Context, collectionID string) (*domain.UnsplashImage, error) {
	settings, err := c.settings.Read()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if settings.APIKey == "" {
		return nil, errors.New("API key not configured")
	}

	endpoint := c.baseURL + "/photos/random?orientation=landscape"
	if collectionID != "" {
		endpoint += "&collections=" + url.QueryEscape(collectionID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+settings.APIKey)
	req.Header.Set("User-Agent", _userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("API error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var image domain.UnsplashImage
	if err := json.NewDecoder(resp.Body).Decode(&image); err != nil {
		return nil, fmt.Errorf("failed to decode image descriptor: %w", err)
	}

	c.sizeFullURL(&image)

	c.logger.Debug("Random image fetched",
		zap.String("id", image.ID),
		zap.String("author", image.User.Username))
	return &image, nil
}

// sizeFullURL appends rendering hints to the full URL so the applier
// downloads an image sized for the primary display instead of the
// multi-megabyte original. Unsplash image URLs accept imgix-style
// w/h/fit query parameters.
func (c *Client) sizeFullURL(image *domain.UnsplashImage) {
	if c.res == nil || c.res.Width <= 0 || c.res.Height <= 0 {
		return
	}
	full, err := url.Parse(image.URLs.Full)
	if err != nil {
		return
	}
	q := full.Query()
	q.Set("w", strconv.Itoa(c.res.Width))
	q.Set("h", strconv.Itoa(c.res.Height))
	q.Set("fit", "max")
	full.RawQuery = q.Encode()
	image.URLs.Full = full.String()
}

// NotifyDownload reports a wallpaper download to the photo service, as
// the Unsplash guidelines require. Without a configured key there is
// nothing to report and the call is a silent no-op.
func (c *Client) NotifyDownload(ctx context.Context, downloadLocation string) error {
	if downloadLocation == "" {
		return nil
	}

	settings, err := c.settings.Read()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if settings.APIKey == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadLocation, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+settings.APIKey)
	req.Header.Set("User-Agent", _userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	c.logger.Debug("Download reported", zap.String("location", downloadLocation))
	return nil
}
