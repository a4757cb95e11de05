package command

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// SafeBuilder builds subprocess invocations through an injectable Executor.
// Commands block until the process exits or ctx is cancelled.
type SafeBuilder struct {
	executor Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	if exec == nil {
		exec = &RealExecutor{}
	}
	return &SafeBuilder{executor: exec}
}

// Command represents a safe command configuration
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	dir      string
	executor Executor
}

// Build creates a new command with validation
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}
	if strings.ContainsAny(name, ";|&$`") {
		return nil, fmt.Errorf("command name contains invalid characters: %s", name)
	}

	return &Command{
		ctx:      ctx,
		name:     name,
		args:     args,
		executor: sb.executor,
	}, nil
}

// Dir sets the working directory for the command
func (c *Command) Dir(dir string) *Command {
	c.dir = dir
	return c
}

// String returns the command line for diagnostics
func (c *Command) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// Exec creates and returns an exec.Cmd
func (c *Command) Exec() *exec.Cmd {
	cmd := c.executor.CommandContext(c.ctx, c.name, c.args...) //nolint:gosec // name validated in Build
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	return cmd
}

// Output runs the command and returns its stdout.
func (c *Command) Output() ([]byte, error) {
	return c.Exec().Output()
}
