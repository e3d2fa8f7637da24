package match

import "log/slog"

// Option configures a matcher.
type Option func(*options)

type options struct {
	scorer Scorer
	logger *slog.Logger
}

func defaultOptions() *options {
	return &options{
		scorer: NewTokenSetScorer(),
		logger: slog.Default(),
	}
}

// WithScorer sets the fuzzy similarity scorer.
// Default is NewTokenSetScorer(); nil falls back to the default.
func WithScorer(scorer Scorer) Option {
	return func(o *options) {
		if scorer == nil {
			scorer = NewTokenSetScorer()
		}
		o.scorer = scorer
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}
