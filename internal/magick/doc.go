// Package magick stages raster transformations for the ImageMagick command
// line tools.
//
// An Image owns a private working copy of a source file. Transformation
// methods queue one directive per slot (resize, crop, rotate, draw, options)
// and commit immediately: all pending directives run in a single convert
// invocation that rewrites the working copy, after which identify refreshes
// the cached width, height and format. Export and Save write the working copy
// to a destination in one separate convert run.
//
// Key types:
//   - Image: working copy, accumulator and processor
//   - Platform: host traits that decide how the tools are launched
//   - Error: failure with a Kind (io, inspection, state, processing, export,
//     argument) and the tool's diagnostic output
//
// Multi-frame inputs are always reduced to their first frame.
package magick
