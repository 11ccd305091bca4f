// Command numlex is a small CLI front end over the numlex engine: it
// exercises every parse/write operation end-to-end for manual
// verification and scriptable bulk conversion. It is a collaborator,
// not part of the CORE engine -- no I/O, logging, or configuration
// leaks back into the github.com/justintime4tea/numlex package itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
