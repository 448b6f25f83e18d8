/*
gxmath is a small command line front end to the engine math package: it
culls and picks boxes of a TOML scene and converts colours.
*/
package main

import "github.com/spaghettifunk/gxmath/cmd"

func main() {
	cmd.Execute()
}
