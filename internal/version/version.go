// SPDX-License-Identifier: Unlicense OR MIT

// Package version pins the pack version and checks release tags
// against it.
package version

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is the pack version, without the leading "v". It must be
// bumped together with the release tag.
const Version = "0.2.0"

// CheckTag verifies that tag is a canonical semver tag matching
// Version. Publishing proceeds only when it returns nil.
func CheckTag(tag string) error {
	if !semver.IsValid(tag) {
		return fmt.Errorf("tag %q is not a valid semver tag", tag)
	}
	if c := semver.Canonical(tag); c != tag {
		return fmt.Errorf("tag %q is not canonical (want %q)", tag, c)
	}
	if want := "v" + Version; tag != want {
		return fmt.Errorf("tag %q does not match the pack version %q", tag, want)
	}
	return nil
}
