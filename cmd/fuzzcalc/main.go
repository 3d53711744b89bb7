/*
Fuzzcalc is a command line calculator for fuzzy numbers.

Fuzzy numbers are given as lists of breakpoints x:mu of a piecewise-linear
membership function, or as a single number for a crisp value:

	fuzzcalc add --a 0:0,2:1,4:0 --b 3
	fuzzcalc sub --a 0:0,1:1,2:0,3:0,4:1,5:0 --b 0:0,0.5:1,1:0 --tnorm product
	fuzzcalc eval --a 0:0,2:1,4:0 --x 1.5 --x 3
	fuzzcalc cuts --a 0:0,2:1,4:0 --levels 4

Defaults for all commands may be put into a TOML file given with --config.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fuzzcalc:", err)
		os.Exit(1)
	}
}
