package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"suite/pkg/todo"
)

// PromptConfirmer asks on out and reads a y/N answer from in.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c PromptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.Out, "%s (y/N): ", prompt)
	response, _ := bufio.NewReader(c.In).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// HandleClearCommand deletes every task after confirmation, which
// skipConfirm bypasses.
func HandleClearCommand(board *todo.Board, in io.Reader, out io.Writer, skipConfirm bool) error {
	var confirm todo.Confirmer = PromptConfirmer{In: in, Out: out}
	if skipConfirm {
		confirm = todo.ConfirmFunc(func(string) bool { return true })
	}

	count := len(board.Tasks())
	if !board.ClearAll(confirm) {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}

	fmt.Fprintf(out, "Successfully deleted %d task(s)\n", count)
	return nil
}
