// Command iterctl runs iterkit combinators over command-line arguments.
//
//	iterctl permutations -r 2 a b c
//	iterctl product --repeat 2 0,1
//	iterctl tee --n 3 x y z
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/iterkit/errors"
)

const serviceName = "iterctl"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close(context.Background())
	os.Exit(exitCode(err))
}

// exitCode prints err and maps it to a process status: 2 for bad
// arguments, 1 for anything else.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	appErr := errors.Wrap(err)
	fmt.Fprintln(os.Stderr, "error:", appErr)
	if appErr.Code == errors.ErrCodeInvalidArgument {
		return 2
	}
	return 1
}
