// Package store provides file-based persistence for the conversion history.
//
// History is kept as plain text, two lines per record: the original input,
// then "<ConverterName>: <output>". Nothing is escaped, so an input containing
// a newline shifts every later record boundary. A trailing unpaired line is
// ignored on load and a missing file loads as an empty history. Carriage
// returns are stripped only when every line of the file ends in CRLF.
//
// The package includes:
//   - HistoryFileStore: the plain two-line text file
//   - SealedHistoryFileStore: the same text sealed with a passphrase
//     (scrypt + XChaCha20-Poly1305)
//
// All methods are concurrency-safe via internal locking, and every write goes
// through a temp file and rename.
package store
