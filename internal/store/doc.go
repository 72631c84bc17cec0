// Package store provides file-based persistence for moon images.
//
// ImageTable is the read-only phase -> filename mapping, optionally loaded
// from a YAML file. ImageFileStore keeps the static phase images and the
// generated ones in a single directory; writes go through a temp file and a
// rename, under a mutex, and generated names are unique.
package store
