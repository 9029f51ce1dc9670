// Package metadata resolves the canonical field set for each game archive.
//
// A game's attributes come from up to three sources, tried in precedence
// order: a structured database record (wholesale when populated), the
// VERSION.NFO descriptor shipped inside the archive (wholesale when
// parseable), and finally the archive filename, which can supply nothing but
// the name. Every resolved record carries all fifteen fields; unpopulated
// fields take fixed defaults so template expansion never fails on a missing
// key.
//
// Descriptor parsing follows the GameBase conventions: a GAME INFO section
// with line-oriented Key: value pairs, a Genre value that may wrap across
// indented continuation lines and splits into primary/secondary on " - ",
// and file encodings ranging from UTF-8 to Windows-1252. Parse failures are
// data, not faults; the batch continues without the descriptor.
package metadata
