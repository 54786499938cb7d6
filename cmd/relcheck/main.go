// SPDX-License-Identifier: Unlicense OR MIT

// Command relcheck aborts a release when the tag being published does
// not match the pack version. CI runs it with the tag as argument, or
// with the tag in GITHUB_REF_NAME.
package main

import (
	"fmt"
	"os"

	"github.com/gioext/widgets/internal/version"
)

func main() {
	tag := os.Getenv("GITHUB_REF_NAME")
	if len(os.Args) > 1 {
		tag = os.Args[1]
	}
	if tag == "" {
		fmt.Fprintln(os.Stderr, "relcheck: no tag given and GITHUB_REF_NAME unset")
		os.Exit(2)
	}
	if err := version.CheckTag(tag); err != nil {
		fmt.Fprintf(os.Stderr, "relcheck: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("releasing %s\n", tag)
}
