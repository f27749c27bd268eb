// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ensembl resolves species tokens to core-database identifiers
// using the public Ensembl FTP listings.
package ensembl

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/genome-engine/internal/httputil"
	"github.com/pdiddy/genome-engine/pkg/types"
)

// Registry base URLs. Declared as vars so tests can substitute httptest
// servers.
var (
	vertebrateRegistryBase = "http://ftp.ensembl.org/pub/"
	plantRegistryBase      = "http://ftp.ensemblgenomes.org/pub/plants/"
)

// releasePattern matches release directory links like "release-106/".
var releasePattern = regexp.MustCompile(`release-(\d+)/?$`)

// Registry reads release numbers and database listings from one Ensembl
// FTP mirror over HTTP.
type Registry struct {
	Client *http.Client
	Base   string
	Config types.HTTPConfig
}

// LatestRelease scrapes the registry index and returns the highest release
// number listed.
func (r *Registry) LatestRelease(ctx context.Context) (int, error) {
	doc, err := r.fetchListing(ctx, r.Base)
	if err != nil {
		return 0, err
	}

	latest := 0
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		m := releasePattern.FindStringSubmatch(href)
		if m == nil {
			return
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > latest {
			latest = n
		}
	})

	if latest == 0 {
		return 0, fmt.Errorf("no release directories listed at %s", r.Base)
	}
	return latest, nil
}

// CoreDatabases returns the core database identifiers available for the
// given release, plus the release that was actually listed. A zero release
// selects the registry's latest. Requesting a release newer than the latest
// is an error.
func (r *Registry) CoreDatabases(ctx context.Context, release int) ([]string, int, error) {
	latest, err := r.LatestRelease(ctx)
	if err != nil {
		return nil, 0, err
	}
	switch {
	case release == 0:
		release = latest
	case release > latest:
		return nil, 0, fmt.Errorf("release %d is not available: latest release at %s is %d", release, r.Base, latest)
	}

	url := r.listingURL(release)
	doc, err := r.fetchListing(ctx, url)
	if err != nil {
		return nil, 0, err
	}

	var dbs []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.Contains(href, "core") {
			return
		}
		if name := strings.SplitN(href, "/", 2)[0]; name != "" {
			dbs = append(dbs, name)
		}
	})
	return dbs, release, nil
}

// listingURL returns the MySQL dump listing for one release, which is
// also the page users are pointed at in resolution errors.
func (r *Registry) listingURL(release int) string {
	return fmt.Sprintf("%srelease-%d/mysql/", r.Base, release)
}

// fetchListing retrieves an FTP directory listing over HTTP and parses it.
func (r *Registry) fetchListing(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", r.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, r.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing %s returned HTTP %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing listing %s: %w", url, err)
	}
	return doc, nil
}
