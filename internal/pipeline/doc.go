// Package pipeline orchestrates one collection at a time: discover chapter
// or episode links on the listing page, resolve each page's audio metadata,
// report the batch and its misses, then download every resolved file,
// skipping those already on disk.
package pipeline
