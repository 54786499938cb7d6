// SPDX-License-Identifier: Unlicense OR MIT

package version

import "testing"

func TestCheckTag(t *testing.T) {
	tests := []struct {
		tag     string
		wantErr bool
	}{
		{"v" + Version, false},
		// Missing v prefix.
		{Version, true},
		// Prerelease of the right version still mismatches.
		{"v" + Version + "-rc1", true},
		{"v0.0.1", true},
		// Valid semver but not canonical.
		{"v1", true},
		{"not-a-tag", true},
		{"", true},
	}
	for _, tc := range tests {
		err := CheckTag(tc.tag)
		if gotErr := err != nil; gotErr != tc.wantErr {
			t.Errorf("CheckTag(%q) error = %v, want error %v", tc.tag, err, tc.wantErr)
		}
	}
}
