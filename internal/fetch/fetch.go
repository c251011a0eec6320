// Package fetch downloads the base ruleset release and unpacks it into a
// project's .rules directory.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rulekit-labs/rulekit/internal/branding"
)

const defaultAPIBase = "https://api.github.com"

// Client fetches ruleset releases from a GitHub-style release API.
type Client struct {
	httpClient *http.Client
	apiBase    string
	repo       string
	token      string
}

// NewClient returns a release client. Empty apiBase and repo fall back to the
// defaults baked into branding. The token is optional and only raises API
// rate limits.
func NewClient(apiBase, repo, token string) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	if repo == "" {
		repo = branding.RulesetRepo()
	}
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiBase:    strings.TrimRight(apiBase, "/"),
		repo:       repo,
		token:      token,
	}
}

// Release describes one published ruleset version.
type Release struct {
	Version string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
}

// LatestRelease fetches metadata for the newest published ruleset.
func (c *Client) LatestRelease(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.apiBase, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", branding.CLIName())
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("no ruleset release found for %s", c.repo)
	case http.StatusForbidden:
		return nil, fmt.Errorf("release API rate limit exceeded; set %s for higher limits", branding.EnvVar("FETCH_TOKEN"))
	default:
		return nil, fmt.Errorf("release API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}

	return &release, nil
}

// DownloadRuleset streams the release's ruleset archive and unpacks it into
// destDir, then records the release version there. The archive asset is the
// first .tar.gz attached to the release.
func (c *Client) DownloadRuleset(ctx context.Context, release *Release, destDir string) error {
	asset, err := selectArchive(release.Assets)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.DownloadURL, nil)
	if err != nil {
		return fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", branding.CLIName())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", asset.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	if err := ExtractTarGz(resp.Body, destDir); err != nil {
		return fmt.Errorf("unpacking %s: %w", asset.Name, err)
	}

	if err := WriteLocalVersion(destDir, release.Version); err != nil {
		return err
	}

	return nil
}

// selectArchive picks the ruleset archive from the release assets.
func selectArchive(assets []Asset) (*Asset, error) {
	for i := range assets {
		if strings.HasSuffix(assets[i].Name, ".tar.gz") {
			return &assets[i], nil
		}
	}
	return nil, fmt.Errorf("release has no .tar.gz ruleset asset")
}
