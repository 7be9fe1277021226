//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the testbed binary into bin/cekidot.
func (Build) Engine() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/cekidot", "."), withStream()); err != nil {
		return err
	}
	return nil
}
