package release

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ErrListFailed indicates that a release source could not be queried or its
// output could not be decoded.
var ErrListFailed = errors.New("release listing failed")

// Lister supplies the canonical releases for one gallery run.
type Lister interface {
	// List returns every release of the configured source, already in
	// canonical shape.
	List(ctx context.Context) ([]Release, error)
}

// Ensure both adapters converge on the Lister seam.
var (
	_ Lister = (*GitHubLister)(nil)
	_ Lister = (*FileLister)(nil)
)

// GitHubLister queries releases from a GitHub repository by invoking the
// external 'gh' CLI, which handles authentication, pagination and rate
// limiting. The REST response shape is normalized before being returned.
type GitHubLister struct {
	logger hclog.Logger
	repo   string
}

// NewGitHubLister creates a lister scoped to the given "owner/name" repository.
func NewGitHubLister(logger hclog.Logger, repo string) (*GitHubLister, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return nil, fmt.Errorf("%w: repository cannot be empty", ErrListFailed)
	}

	return &GitHubLister{
		logger: logger.Named("release"),
		repo:   repo,
	}, nil
}

// List runs 'gh api' against the repository's releases endpoint and returns
// the normalized records.
func (l *GitHubLister) List(ctx context.Context) ([]Release, error) {
	endpoint := fmt.Sprintf("repos/%s/releases", l.repo)
	ghCommand := exec.CommandContext(ctx, "gh", "api", endpoint, "--paginate")

	var stdout, stderr bytes.Buffer
	ghCommand.Stdout = &stdout
	ghCommand.Stderr = &stderr

	l.logger.Debug("Listing releases", "repo", l.repo)

	if err := ghCommand.Run(); err != nil {
		return nil, fmt.Errorf(
			"%w: gh api %s: %w: %s",
			ErrListFailed, endpoint, err, strings.TrimSpace(stderr.String()),
		)
	}

	raw, err := decodeAPIReleases(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode gh output for %s: %w", ErrListFailed, l.repo, err)
	}

	l.logger.Debug("Listed releases", "repo", l.repo, "count", len(raw))

	return Normalize(raw), nil
}

// decodeAPIReleases parses gh output. With --paginate, gh emits one JSON
// array per page back to back, so decoding continues until the stream is
// exhausted.
func decodeAPIReleases(data []byte) ([]APIRelease, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var all []APIRelease
	for dec.More() {
		var page []APIRelease
		if err := dec.Decode(&page); err != nil {
			return nil, err
		}
		all = append(all, page...)
	}

	return all, nil
}

// FileLister reads releases already in canonical shape from a JSON file.
// Used for offline runs and fixtures.
type FileLister struct {
	logger hclog.Logger
	path   string
}

// NewFileLister creates a lister backed by the JSON file at path.
func NewFileLister(logger hclog.Logger, path string) (*FileLister, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: releases file path cannot be empty", ErrListFailed)
	}

	return &FileLister{
		logger: logger.Named("release"),
		path:   path,
	}, nil
}

// List decodes the canonical release records from the configured file.
func (l *FileLister) List(_ context.Context) ([]Release, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read releases file (%s): %w", ErrListFailed, l.path, err)
	}

	var releases []Release
	if err := json.Unmarshal(data, &releases); err != nil {
		return nil, fmt.Errorf("%w: failed to decode releases file (%s): %w", ErrListFailed, l.path, err)
	}

	l.logger.Debug("Loaded releases from file", "path", l.path, "count", len(releases))

	return releases, nil
}
