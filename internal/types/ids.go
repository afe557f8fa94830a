// Package types holds the identifier, range, and interning primitives shared
// by every other package in the indexer. Nothing here depends on a language,
// a store, or a pipeline stage.
package types

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// SymbolID uniquely identifies a Symbol within one process lifetime. Zero is
// reserved to mean "no symbol" so SymbolID can be embedded in structs without
// a separate presence flag.
type SymbolID uint32

// FileID uniquely identifies a registered file within one process lifetime.
// Zero is reserved to mean "no file".
type FileID uint32

// Valid reports whether the id is non-zero.
func (id SymbolID) Valid() bool { return id != 0 }

// Valid reports whether the id is non-zero.
func (id FileID) Valid() bool { return id != 0 }

func (id SymbolID) String() string { return fmt.Sprintf("sym#%d", uint32(id)) }
func (id FileID) String() string   { return fmt.Sprintf("file#%d", uint32(id)) }

// IDAllocator hands out monotonically increasing, non-zero ids. It is not
// safe for concurrent use without external synchronization; COLLECT owns one
// allocator per id space and serializes access to it per file.
type IDAllocator struct {
	next uint32
}

// NewIDAllocator returns an allocator whose first Next() call yields 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns the next value in the sequence, starting at 1.
func (a *IDAllocator) Next() uint32 {
	v := a.next
	a.next++
	return v
}

// Peek returns the value Next() would return without consuming it.
func (a *IDAllocator) Peek() uint32 { return a.next }

// Position represents a single point in a file: 1-indexed line, 0-indexed
// column (byte offset within the line), matching tree-sitter's convention.
type Position struct {
	Line   int
	Column int
}

// Range is a half-open [Start, End) span within one file.
type Range struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Start returns the range's starting Position.
func (r Range) Start() Position { return Position{Line: r.StartLine, Column: r.StartCol} }

// End returns the range's ending Position.
func (r Range) End() Position { return Position{Line: r.EndLine, Column: r.EndCol} }

// Contains reports whether line/col falls within the range, inclusive of
// start and exclusive of end.
func (r Range) Contains(line, col int) bool {
	if line < r.StartLine || line > r.EndLine {
		return false
	}
	if line == r.StartLine && col < r.StartCol {
		return false
	}
	if line == r.EndLine && col >= r.EndCol {
		return false
	}
	return true
}

// WithinLineCount reports whether the range fits inside a file with the
// given number of lines. Used to enforce invariant 1 of §8: every symbol's
// range lies within its owning file's line count.
func (r Range) WithinLineCount(lineCount int) bool {
	return r.StartLine >= 0 && r.EndLine < lineCount && r.StartLine <= r.EndLine
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.StartLine, r.StartCol, r.EndLine, r.EndCol)
}

// StableHash64 computes the content hash used for file-registration
// short-circuiting (§3 File registration, §4.5 READ). xxhash gives a fast,
// stable, allocation-free 64-bit digest so unchanged files never re-enter
// PARSE.
func StableHash64(content []byte) uint64 {
	return xxhash.Sum64(content)
}

// base63 alphabet used by CompactString: A-Za-z0-9_.
const base63Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_"

// CompactString returns a dense, URL-safe encoding of a (FileID, SymbolID)
// pair for use in external tool-surface responses, where a 64-bit composite
// key would otherwise need hex or base64 padding.
func CompactString(file FileID, sym SymbolID) string {
	combined := uint64(file) | (uint64(sym) << 32)
	if combined == 0 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for combined > 0 {
		i--
		buf[i] = base63Alphabet[combined%63]
		combined /= 63
	}
	return string(buf[i:])
}

// ParseCompactString reverses CompactString, splitting the pair back out.
func ParseCompactString(s string) (FileID, SymbolID, error) {
	if s == "" {
		return 0, 0, fmt.Errorf("types: empty compact string")
	}
	var combined uint64
	for _, c := range s {
		idx := indexBase63(byte(c))
		if idx < 0 {
			return 0, 0, fmt.Errorf("types: invalid compact string character %q", c)
		}
		combined = combined*63 + uint64(idx)
	}
	return FileID(combined & 0xFFFFFFFF), SymbolID(combined >> 32), nil
}

func indexBase63(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 26
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	case c == '_':
		return 62
	default:
		return -1
	}
}
