package words

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Matcher runs the external dictionary-matching command against a written
// artifact. The contract with the collaborator is narrow: it receives the
// artifact path as its final argument, and its exit status decides success.
// Nothing else about its behavior is assumed.
type Matcher struct {
	command []string
}

// NewMatcher creates a Matcher for the given command (program plus leading
// arguments).
func NewMatcher(command []string) *Matcher {
	cmd := make([]string, len(command))
	copy(cmd, command)
	return &Matcher{command: cmd}
}

// Match runs the matcher against the artifact at the given path, inheriting
// this process's stdout and stderr. It returns a non-nil error if the command
// is empty, cannot be started, or exits with a non-zero status.
func (m *Matcher) Match(ctx context.Context, artifact string) error {
	if len(m.command) == 0 {
		return fmt.Errorf("no matcher command configured")
	}

	args := make([]string, 0, len(m.command))
	args = append(args, m.command[1:]...)
	args = append(args, artifact)
	cmd := exec.CommandContext(ctx, m.command[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running matcher %s: %w", m.command[0], err)
	}
	return nil
}
