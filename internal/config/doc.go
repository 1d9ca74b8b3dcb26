// Package config loads, normalizes, and validates imagestage configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// IMAGEMAGICK_PATH. The resolved ImageMagick directory is the only value the
// image pipeline strictly needs; everything else has a usable default.
package config
