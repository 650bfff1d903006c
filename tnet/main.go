// Command tnet is an interactive shell for tensor network indices.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import "github.com/npillmayer/tnet/tnet/cli"

func main() {
	cli.Execute()
}
