package urlbuilder

// defaultBuilder backs the package-level functions. It is shared process-wide
// mutable state: writes race under last-write-wins, which is acceptable only
// when callers configure it once per logical unit of work before use. Code
// that needs isolation (tests, concurrent handlers with differing bases)
// should hold its own Builder instead.
var defaultBuilder = &Builder{}

// SetDefaultRequest stores the process-wide default candidate consulted by
// Create when none is passed.
func SetDefaultRequest(candidate any) {
	defaultBuilder.SetDefaultRequest(candidate)
}

// SetFallbackBase stores the process-wide fallback base.
func SetFallbackBase(base string) {
	defaultBuilder.SetFallbackBase(base)
}

// FallbackBase returns the process-wide fallback base, or "" if unset.
func FallbackBase() string {
	return defaultBuilder.FallbackBase()
}

// SetLocation stores the process-wide ambient location.
func SetLocation(loc *Location) {
	defaultBuilder.SetLocation(loc)
}

// Create builds a URL value using the process-wide configuration. See
// Builder.Create.
func Create(path string, candidate ...any) (*URL, error) {
	return defaultBuilder.Create(path, candidate...)
}

// From is an alias for Create.
func From(path string, candidate ...any) (*URL, error) {
	return defaultBuilder.Create(path, candidate...)
}
