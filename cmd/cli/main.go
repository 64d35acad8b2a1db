// logtally - Log File Statistics Tool
//
// logtally is a batch log analysis tool that reads a log file line by line
// and reports total line count, per-severity counts, and the most frequent
// normalized messages.
package main

import (
	"os"

	"github.com/logtally/logtally/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
