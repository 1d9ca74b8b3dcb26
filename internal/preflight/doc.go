// Package preflight provides readiness checks for the filesystem paths and
// ImageMagick tools imagestage depends on.
//
// The CLI "deps" command runs RunAll after the binary lookup so a broken
// installation (a tool that exists but does not start, or a working-copy
// directory without write access) is reported before any image is touched.
package preflight
