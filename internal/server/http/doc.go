// Package httpserver exposes the JSON/HTTP surface: id generation and
// decomposition, node lease inspection and the operational journal.
//
// Raw 64-bit ids travel as decimal strings in JSON bodies; JavaScript
// numbers lose precision above 2^53.
package httpserver
