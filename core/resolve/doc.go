// Package resolve resolves command names against the directories listed in the
// PATH environment variable.
//
// PATH is read live on every lookup. The directory list is rebuilt only when
// the raw value changes and every rebuild bumps a generation number; a
// Resolver drops its memoized lookups whenever it sees a new generation.
package resolve
