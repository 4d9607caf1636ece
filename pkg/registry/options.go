package registry

// Option configures how a catalog source is parsed.
type Option func(*Registry)

// WithComma sets the field delimiter (default ',').
func WithComma(comma rune) Option {
	return func(r *Registry) {
		r.comma = comma
	}
}

// WithComment sets a comment character; lines starting with it are skipped.
func WithComment(comment rune) Option {
	return func(r *Registry) {
		r.comment = comment
	}
}
