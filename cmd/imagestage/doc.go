// Package main hosts the imagestage CLI entrypoint and command graph.
//
// The Cobra-based command tree loads configuration once, builds staged images
// through internal/magick and renders results as tables or JSON. Transformation
// logic lives in the internal packages; commands here only parse flags and
// sequence operations.
package main
