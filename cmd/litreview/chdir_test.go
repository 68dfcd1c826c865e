// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"testing"
)

// chdir changes the working directory to dir for the duration of the test and
// restores it on cleanup. It mirrors testing.T.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir: restoring %s: %v", old, err)
		}
	})
}
