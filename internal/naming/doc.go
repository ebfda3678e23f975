// Package naming derives where a run writes its output: the collision-free
// output root next to the input directory and the per-ratio subdirectories
// beneath it.
//
// The root is named "<input>_sorted_L<limiter>". When that path is taken a
// " (1)", " (2)", ... suffix is appended until a free name is found. An
// [Allocator] also remembers the names it has already handed out, so two
// allocations in one process never collide even before either directory
// is created. Nothing here locks across processes.
package naming
