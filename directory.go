// Copyright 2026 OPD Navigator Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package opdnav is a directory-lookup service for two hospital
// campuses. It loads department/location records from CSV files once
// at startup and answers free-text queries with ranked matches plus a
// fuzzy "did you mean" suggestion.
package opdnav

import (
	"log/slog"

	"github.com/opdnav/opdnav/core"
	"github.com/opdnav/opdnav/ingest"
	"github.com/opdnav/opdnav/match"
	"github.com/opdnav/opdnav/store"
)

// Config names the CSV sources for the two campuses.
type Config struct {
	AECPath string
	PGIPath string
}

// Directory owns the loaded record stores and their matchers. It is
// built once and read-only afterwards, so it is safe for concurrent
// searches without locking.
type Directory struct {
	aecStore store.AECStore
	pgiStore store.PGIStore
	aec      *match.AECMatcher
	pgi      *match.PGIMatcher
	logger   *slog.Logger
}

// Option configures a Directory.
type Option func(*directoryOptions)

type directoryOptions struct {
	logger *slog.Logger
	scorer match.Scorer
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *directoryOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// WithScorer sets the fuzzy similarity scorer used by both matchers.
func WithScorer(scorer match.Scorer) Option {
	return func(o *directoryOptions) {
		o.scorer = scorer
	}
}

// Open loads both campus CSV files and wires up the matchers. Load
// failures are absorbed into empty stores, so Open only fails when the
// loader itself cannot be constructed.
func Open(cfg Config, opts ...Option) (*Directory, error) {
	options := &directoryOptions{
		logger: slog.Default(),
		scorer: match.NewTokenSetScorer(),
	}
	for _, opt := range opts {
		opt(options)
	}

	loader, err := ingest.NewLoader(ingest.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}
	defer loader.Close()

	aecStore, pgiStore := loader.LoadAll(cfg.AECPath, cfg.PGIPath)

	matchOpts := []match.Option{
		match.WithLogger(options.logger),
		match.WithScorer(options.scorer),
	}
	aec, err := match.NewAECMatcher(aecStore, matchOpts...)
	if err != nil {
		return nil, err
	}
	pgi, err := match.NewPGIMatcher(pgiStore, matchOpts...)
	if err != nil {
		return nil, err
	}

	return &Directory{
		aecStore: aecStore,
		pgiStore: pgiStore,
		aec:      aec,
		pgi:      pgi,
		logger:   options.logger,
	}, nil
}

// SearchAEC sanitizes the raw query and runs the AEC cascade.
func (d *Directory) SearchAEC(raw string) ([]core.AECRecord, *string) {
	return d.aec.Search(match.Sanitize(raw))
}

// SearchPGI sanitizes the raw query and runs the PGI cascade.
func (d *Directory) SearchPGI(raw string) ([]core.PGIRecord, string) {
	return d.pgi.Search(match.Sanitize(raw))
}

// AECMatcher exposes the AEC matcher, e.g. for monitored searches.
func (d *Directory) AECMatcher() *match.AECMatcher { return d.aec }

// PGIMatcher exposes the PGI matcher, e.g. for monitored searches.
func (d *Directory) PGIMatcher() *match.PGIMatcher { return d.pgi }

// AECStore exposes the loaded AEC store.
func (d *Directory) AECStore() store.AECStore { return d.aecStore }

// PGIStore exposes the loaded PGI store.
func (d *Directory) PGIStore() store.PGIStore { return d.pgiStore }
