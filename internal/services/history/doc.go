// Package history owns the in-memory conversion history for one session.
//
// The sequence is loaded once from a domain.HistoryStore, appended to as the
// user opts in, and written back once by Flush.
package history
