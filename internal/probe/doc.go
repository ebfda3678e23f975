// Package probe reads the pixel dimensions of image and video files.
//
// A [Chain] tries its providers in order and returns the first usable
// answer:
//
//   - [ImageDecoder] decodes only the header of JPEG, PNG, GIF and WebP
//     files.
//   - [EXIF] reads PixelXDimension/PixelYDimension from JPEG EXIF blocks.
//   - [FFprobe] runs a single ffprobe JSON call and takes the primary video
//     stream; it handles every container ffprobe understands.
//
// Providers signal "not my kind of file" with [ErrNotApplicable]; the chain
// skips those silently. When no provider succeeds the chain returns an
// [*UnavailableError] that matches [ErrDimensionUnavailable].
package probe
