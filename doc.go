// Package runekit provides terminal rendering primitives: grapheme-accurate
// display width measurement, an escape-sequence-safe styled text model, and a
// box compositor that merges rendered children into bordered buffers.
//
// The package is organized as leaf-first layers. The Unicode oracle classifies
// code points, the width engine measures grapheme clusters in terminal
// columns, the ANSI model tokenizes and slices escape-laden text without
// corrupting escapes or splitting wide glyphs, and the box compositor uses
// both to paint component trees into line buffers. Layout geometry comes from
// the flexbox engine in internal/layout, re-exported here.
package runekit
