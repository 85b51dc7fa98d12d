package commands

import (
	"context"
	"fmt"
	"io"
)

// ExitCmd implements menu option 9.
type ExitCmd struct{}

func (c *ExitCmd) Name() string        { return "9" }
func (c *ExitCmd) Description() string { return "Exit" }
func (c *ExitCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	fmt.Fprintln(output, "Goodbye.")
	return ErrExitRequested
}
