package project

import "crypto/sha256"

// Digest is a content hash, compatible with source.File.Hash.
type Digest [32]byte

// CombineDigest folds a module's own content digest together with its
// dependencies' digests, in dependency order, into one digest for the
// whole subtree — used only for the determinism checks spec.md §8
// (property 5) asks for, not for any caching (spec.md §1 Non-goals:
// "no separate compilation with cached artifacts").
func CombineDigest(content Digest, deps ...Digest) Digest {
	h := sha256.New()
	h.Write(content[:])
	for _, d := range deps {
		h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
