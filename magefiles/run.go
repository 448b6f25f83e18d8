//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Culls the scene named by $GXMATH_SCENE (scene.toml by default) and keeps
// watching it.
func (Run) Cull() error {
	mg.Deps(Build.CLI)

	scenePath := os.Getenv("GXMATH_SCENE")
	if scenePath == "" {
		scenePath = "scene.toml"
	}
	fmt.Println("Run cull on", scenePath)
	if _, err := executeCmd("bin/gxmath", withArgs("cull", "--scene", scenePath, "--watch"), withStream()); err != nil {
		return err
	}
	return nil
}
