// Package generator produces the auxiliary data file tree (tags and loot
// tables) that the merger collects. The tree is rooted at
// <out>/data/minecraft.
package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrGenerator indicates the generator could not be run or failed.
var ErrGenerator = errors.New("data generator failed")

// OutputPlaceholder is replaced with the output directory in command arguments.
const OutputPlaceholder = "{output}"

// Generator writes data files under an output directory.
type Generator interface {
	Generate(ctx context.Context, outDir string) error
}

// Command runs an external data generator, e.g.
//
//	java -cp server.jar net.minecraft.data.Main --all --output={output}
type Command struct {
	args []string
	dir  string
	log  *zap.Logger
}

// NewCommand parses a whitespace separated command line. Arguments are not
// shell-interpreted.
func NewCommand(log *zap.Logger, commandLine, dir string) (*Command, error) {
	args := strings.Fields(commandLine)
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrGenerator)
	}
	return &Command{args: args, dir: dir, log: log}, nil
}

// Args returns the command arguments with the output directory substituted.
func (c *Command) Args(outDir string) []string {
	args := make([]string, len(c.args))
	for i, a := range c.args {
		args[i] = strings.ReplaceAll(a, OutputPlaceholder, outDir)
	}
	return args
}

// Generate runs the command and waits for it. A launch failure or non-zero
// exit is reported as ErrGenerator with the command's output attached.
func (c *Command) Generate(ctx context.Context, outDir string) error {
	args := c.Args(outDir)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = c.dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	c.log.Debug("running data generator", zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s: %v\n%s", ErrGenerator, args[0], err, strings.TrimSpace(output.String()))
	}
	c.log.Debug("data generator finished", zap.Int("output_bytes", output.Len()))
	return nil
}
