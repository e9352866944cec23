// coldsearch times binary search over arrays that have been flushed out of
// the CPU cache before every lookup.
//
// The results are written as absolute.csv and relative.csv, ready for
// plot.py.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
)

func main() {
	app := kingpin.New("coldsearch", "Time binary search with a cold cache.")
	addRunCommand(app)
	addInfoCommand(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
