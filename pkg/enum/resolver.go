// Package enum resolves file tokens into in-memory sources.
package enum

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/praetorian-inc/linegrep/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrUnreadable is wrapped by every per-file load failure.
var ErrUnreadable = errors.New("could not read file")

// UnreadableError reports a file token that produced no source.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("Error: could not read file %s", e.Path)
}

func (e *UnreadableError) Unwrap() []error {
	return []error{ErrUnreadable, e.Err}
}

// Config for file resolution.
type Config struct {
	// Jobs is the number of files read concurrently (values below 1 mean 1).
	Jobs int

	// Logger receives debug records about skipped files (nil = disabled).
	Logger *zerolog.Logger
}

// FileResolver turns file tokens into loaded sources.
type FileResolver struct {
	config Config
	logger zerolog.Logger
}

// NewFileResolver creates a resolver.
func NewFileResolver(config Config) *FileResolver {
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	return &FileResolver{
		config: config,
		logger: logger.With().Str("component", "enum").Logger(),
	}
}

// Resolve expands and loads tokens in order. Tokens that yield no readable
// file are passed to onSkip and left out; the returned list may be empty.
func (r *FileResolver) Resolve(ctx context.Context, tokens []string, onSkip func(error)) ([]types.Source, error) {
	paths, errs := r.Expand(tokens)
	for _, err := range errs {
		onSkip(err)
	}
	return r.Load(ctx, paths, onSkip)
}

// Expand replaces glob tokens with their sorted matches and drops repeated
// paths, keeping the first occurrence.
func (r *FileResolver) Expand(tokens []string) ([]string, []error) {
	var paths []string
	var errs []error
	seen := make(map[string]bool)

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, token := range tokens {
		if !isGlob(token) {
			add(token)
			continue
		}

		matches, err := doublestar.FilepathGlob(token, doublestar.WithFilesOnly())
		if err != nil || len(matches) == 0 {
			if err == nil {
				err = os.ErrNotExist
			}
			errs = append(errs, &UnreadableError{Path: token, Err: err})
			continue
		}
		sort.Strings(matches)
		r.logger.Debug().Str("glob", token).Int("matches", len(matches)).Msg("expanded glob")
		for _, m := range matches {
			add(m)
		}
	}
	return paths, errs
}

// loaded is the outcome of reading one path.
type loaded struct {
	src *types.FileSource
	err error
}

// Load reads every path into memory.
// With Jobs > 1 files are read in parallel, but the returned sources and the
// onSkip calls keep the order of paths.
func (r *FileResolver) Load(ctx context.Context, paths []string, onSkip func(error)) ([]types.Source, error) {
	results := make([]loaded, len(paths))

	jobs := r.config.Jobs
	if jobs < 1 {
		jobs = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = r.loadFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// All reads may have finished before noticing the cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sources := make([]types.Source, 0, len(paths))
	for _, res := range results {
		if res.err != nil {
			onSkip(res.err)
			continue
		}
		if res.src != nil {
			sources = append(sources, res.src)
		}
	}
	return sources, nil
}

// loadFile reads a single file. Binary files yield neither a source nor an
// error.
func (r *FileResolver) loadFile(path string) loaded {
	content, err := os.ReadFile(path)
	if err != nil {
		return loaded{err: &UnreadableError{Path: path, Err: err}}
	}
	if types.IsBinary(content) {
		r.logger.Debug().Str("path", path).Msg("skipping binary file")
		return loaded{}
	}
	return loaded{src: types.NewFileSource(path, content)}
}

// isGlob reports whether token contains glob metacharacters.
func isGlob(token string) bool {
	return strings.ContainsAny(token, "*?[{")
}
