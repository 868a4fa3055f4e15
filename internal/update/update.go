package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

const checkTimeout = 10 * time.Second

// Release holds information about an available update.
type Release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

// Check queries GitHub Releases for a newer version. Returns nil when the
// current version is already the latest, or when version is "dev": local
// builds never prompt.
func Check(currentVersion, repo string) (*Release, error) {
	if currentVersion == "dev" || currentVersion == "" {
		return nil, nil
	}

	current, err := parseSemver(currentVersion)
	if err != nil {
		return nil, nil // unparseable version (e.g. dirty build), skip silently
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, nil
	}

	latestVer, err := semver.NewVersion(latest.Version())
	if err != nil {
		return nil, nil
	}
	if !latestVer.GreaterThan(current) {
		return nil, nil
	}

	return &Release{
		Version:      latest.Version(),
		URL:          latest.URL,
		ReleaseNotes: latest.ReleaseNotes,
	}, nil
}

// Apply downloads the latest release binary and replaces the current
// executable.
func Apply(currentVersion, repo string) (*Release, error) {
	if currentVersion == "dev" || currentVersion == "" {
		return nil, fmt.Errorf("cannot update a development build; install from a release first")
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rel, err := updater.UpdateSelf(ctx, strings.TrimPrefix(currentVersion, "v"), selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}

	return &Release{
		Version:      rel.Version(),
		URL:          rel.URL,
		ReleaseNotes: rel.ReleaseNotes,
	}, nil
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

// parseSemver strips a leading "v" and handles git-describe suffixes
// like "0.1.0-3-gabcdef" by parsing only the base version.
func parseSemver(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(s, "v")
	return semver.NewVersion(s)
}
