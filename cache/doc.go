// Package cache provides the persistent document cache tier.
//
// A FileStore keeps one encoded document per cache key under a fixed
// directory, surviving process restarts. Writes go through a temporary file
// followed by an atomic rename, so a concurrent load never observes a torn
// file; saves with the same key are last-write-wins.
//
//	store, err := cache.NewFileStore()
//	if err != nil { ... }
//	_ = store.Save("url:https://example.com/api.yaml", doc)
//	doc, err := store.Load("url:https://example.com/api.yaml")
//
// Load distinguishes three outcomes: (doc, nil) on a hit, (nil, nil) when
// the key was never cached, and an error when the file is unreadable
// (IOError) or its payload no longer decodes (DecodeError). Callers decide
// whether a corrupt entry is fatal or just grounds for re-fetching.
package cache
