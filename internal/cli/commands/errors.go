package commands

import "errors"

// ErrUsage marks invalid-argument failures. Errors wrapping it map to the
// invalid-arguments exit code with usage text on stdout, as opposed to
// runtime failures such as an unreadable log file.
var ErrUsage = errors.New("invalid arguments")
