package display

import (
	"fmt"
	"io"

	"github.com/backmassage/aspectsort/internal/term"
)

// PrintBanner writes the ASCII art banner to w, in magenta when colors are on.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `                           _                  _
  __ _ ___ _ __   ___  ___| |_ ___  ___  _ __| |_
 / _`+"`"+` / __| '_ \ / _ \/ __| __/ __|/ _ \| '__| __|
| (_| \__ \ |_) |  __/ (__| |_\__ \ (_) | |  | |_
 \__,_|___/ .__/ \___|\___|\__|___/\___/|_|   \__|
          |_|
`)
	fmt.Fprint(w, term.NC)
}
