// Package source owns file buffers, byte-range spans, and identifier
// string interning for the whole compile. Nothing downstream touches the
// filesystem directly — every phase reads through a *FileSet.
package source

// FileID uniquely identifies a loaded source file within a FileSet.
type FileID uint32

// StringID uniquely identifies an interned string (identifier text).
type StringID uint32

// NoStringID marks the absence of an interned string.
const NoStringID StringID = 0

// FileFlags records metadata discovered while loading a file.
type FileFlags uint8

const (
	// FileVirtual marks a file added from memory rather than disk
	// (used by tests to avoid touching the filesystem).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedNFC
)

// File holds the content and derived metadata for one source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of each '\n', ascending
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable, 1-based position within a file.
type LineCol struct {
	Line uint32
	Col  uint32
}
