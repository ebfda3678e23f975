// Package pipeline drives a sort run: discover the media files directly
// inside the input directory, probe each for its pixel dimensions,
// approximate the aspect ratio, relocate the file into the matching
// ratio subdirectory, and report aggregate statistics.
//
// A failure on one file is logged and counted as skipped; only problems
// with the input or output directory abort a run (see [SetupError]).
package pipeline
