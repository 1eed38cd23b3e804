package project

import (
	"errors"
	"path"
	"strings"
)

// NormalizeModulePath canonicalizes a module path to forward-slash
// form with no "." or ".." segments, so two spellings of the same file
// ("./a/b.jsa", "a/b.jsa") register as one module (spec.md §4.1:
// "canonicalize its path").
func NormalizeModulePath(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimSuffix(p, Extension)
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == "" {
		return "", errors.New("project: empty module path")
	}
	if strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return "", errors.New("project: import path escapes project root")
	}
	return cleaned, nil
}

// ResolveImportPath resolves an import string against the directory of
// the importing file (spec.md §6: "Imports are resolved relative to
// the importing file's directory; absolute paths are accepted
// verbatim. No search path, no package index.").
func ResolveImportPath(importingFileDir, importPath string) (string, error) {
	if importPath == "" {
		return "", errors.New("project: empty import path")
	}
	if strings.HasPrefix(importPath, "/") {
		return NormalizeModulePath(importPath)
	}
	return NormalizeModulePath(path.Join(importingFileDir, importPath))
}
