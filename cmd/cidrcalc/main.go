// Command cidrcalc evaluates CIDR set expressions in batch or interactive
// mode. See `cidrcalc --help`.
package main

import (
	"os"

	"github.com/cidrcalc/cidrcalc/pkg/cli"
)

func main() {
	os.Exit(cli.Main())
}
