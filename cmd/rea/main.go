// SPDX-License-Identifier: MIT

// Command rea generates randomly exchanged and jittered variants of a
// crystal structure.
package main

import (
	"os"

	"github.com/CaptainDasheng/random-exchange-atoms/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
