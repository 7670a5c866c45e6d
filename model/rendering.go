package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "░░"

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display writes the rendered dish to w
func (r *TerminalRenderer) Display(w io.Writer, d *Dish) error {
	_, err := io.WriteString(w, d.Render())
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
