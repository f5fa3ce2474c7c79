// Package token provides the byte level scanning of inline flow text.
//
// A [Scanner] holds the text and a cursor. Parsing routines take the
// scanner, consume what they recognize and leave the cursor just past it,
// so that sibling routines resume where a child stopped.
//
// [ScanQuoted] and [ScanPlain] extract one scalar token, quoted or bare.
// [QuoteSingle] and [QuoteDouble] produce the quoted forms used when
// dumping.
//
// All offsets are byte offsets.
package token
