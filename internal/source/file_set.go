package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// FileSet is the registry of every source file loaded for one compile.
// It is owned by the driver for the lifetime of the compile and never
// mutated concurrently (spec.md §5: the pipeline is single-threaded).
type FileSet struct {
	files []File
	index map[string]FileID
}

// NewFileSet creates an empty registry.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]FileID)}
}

// Load reads path from disk, normalizes it, and registers it. I/O errors
// are returned to the caller (module graph loading, spec.md §4.1, treats
// them as fatal for that module but continues the rest of the graph).
func (fs *FileSet) Load(path string) (FileID, error) {
	if id, ok := fs.index[path]; ok {
		return id, nil
	}
	// #nosec G304 -- path originates from the module graph, not untrusted input
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	normalized, flags := normalize(content)
	return fs.add(path, normalized, flags), nil
}

// AddVirtual registers in-memory content (used by tests) under name.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	normalized, flags := normalize(content)
	return fs.add(name, normalized, flags|FileVirtual)
}

func normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	if bytes.HasPrefix(content, bomUTF8) {
		content = content[len(bomUTF8):]
		flags |= FileHadBOM
	}
	if !norm.NFC.IsNormal(content) {
		content = norm.NFC.Bytes(content)
		flags |= FileNormalizedNFC
	}
	return content, flags
}

func (fs *FileSet) add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("source: file set overflow: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    hash,
		Flags:   flags,
	})
	fs.index[path] = id
	return id
}

// Get returns the file metadata for id. Callers only ever hold IDs
// handed back by this FileSet, so no bounds check is exposed.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// Lookup returns the FileID already registered for path, if any.
func (fs *FileSet) Lookup(path string) (FileID, bool) {
	id, ok := fs.index[path]
	return id, ok
}

// Resolve converts a span into human-readable start/end positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, uint32(i))
		}
	}
	return idx
}

func toLineCol(lineIdx []uint32, offset uint32) LineCol {
	line := uint32(1)
	lineStart := uint32(0)
	for _, nl := range lineIdx {
		if nl >= offset {
			break
		}
		line++
		lineStart = nl + 1
	}
	return LineCol{Line: line, Col: offset - lineStart + 1}
}
