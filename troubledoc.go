// Package troubledoc provides troubleshooting documentation search for
// cloud providers (currently AWS). It probes a fixed catalog of
// documentation pages per service, extracts structured content from the
// HTML (sections, troubleshooting steps, code examples, error codes),
// caches the parsed records in memory, and matches them against free-text
// queries with optional category filtering.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, gocache/).
package troubledoc
