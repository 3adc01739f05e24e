package diaglog

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const pausePrompt = "Press Enter to continue . . ."

// stdin feeds the default pause hook.
var stdin io.Reader = os.Stdin

// StdinPause returns a pause hook that prompts on out and waits for a line on
// in. EOF or a read error ends the wait.
func StdinPause(in io.Reader, out io.Writer) func() {
	r := bufio.NewReader(in)
	return func() {
		fmt.Fprint(out, pausePrompt)
		_, _ = r.ReadString('\n')
	}
}
