// Package fetch loads every input artifact of one network — matrix texts,
// auxiliary node-data vectors, and the linkage table — as a single ordered
// batch, and hands downstream construction one fully parsed Bundle.
//
// What:
//
//   - Source: the seam to whatever holds the text (File, Reader, Bytes).
//   - Load: fetches all sources of a Request concurrently under an errgroup,
//     fails fast on the first error, and returns only when every result is
//     in. Results land in request order regardless of completion order, so
//     matrix indices and labels are deterministic.
//   - Bundle: the parsed results plus a convenience constructor for the
//     validated conmat.Set.
//
// The concurrency stops at Load's return: downstream of the Bundle the whole
// pipeline is synchronous and single-threaded. No Bundle ever leaves Load
// partially fetched.
//
// Errors: ErrEmptyRequest for a request without matrix sources; otherwise
// whatever the sources and parsers report, wrapped with the source name.
package fetch
