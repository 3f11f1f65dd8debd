// Package commands is the registry behind the in-app terminal. A line starting with "/" is split
// shell-style into a command name and arguments; each command parses its flags on a fresh
// pflag set, so flag values never leak from one invocation into the next.
package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/pflag"
)

// Prefix marks a terminal line as a command.
const Prefix = "/"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingCommand = errors.New("missing command")
)

// RunFunc runs a command with the positional arguments left after flag parsing.
type RunFunc func(args []string) error

// Command is one terminal command. Bind declares flags on fs (binding them to fresh local
// variables) and returns the function that runs once fs has parsed the arguments.
type Command struct {
	Name    string
	Usage   string
	Summary string
	Bind    func(fs *pflag.FlagSet) RunFunc
}

// Registry holds commands by name.
type Registry struct {
	cmds map[string]Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Register adds or replaces a command.
func (r *Registry) Register(c Command) {
	r.cmds[c.Name] = c
}

// Simple registers a flagless command.
func (r *Registry) Simple(name, usage, summary string, run RunFunc) {
	r.Register(Command{Name: name, Usage: usage, Summary: summary, Bind: func(*pflag.FlagSet) RunFunc { return run }})
}

// Parse interprets line as a terminal line. If it starts with Prefix the rest is split with
// shell quoting rules and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, Prefix) {
		return nil, false, nil
	}
	args, err = shellwords.Parse(line[len(Prefix):])
	if err != nil {
		return nil, true, fmt.Errorf("parse %q: %w", line, err)
	}
	return args, true, nil
}

// Execute runs the command in args[0] with args[1:] as flag and positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissingCommand
	}
	name := args[0]
	c, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := c.Bind(fs)
	if !fs.HasFlags() {
		// flagless commands take "-1" as a value, not a shorthand
		return run(args[1:])
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run(fs.Args())
}

// Names returns the registered command names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one line per command, in name order.
func (r *Registry) Help() []string {
	out := make([]string, 0, len(r.cmds))
	for _, n := range r.Names() {
		c := r.cmds[n]
		use := Prefix + c.Name
		if c.Usage != "" {
			use += " " + c.Usage
		}
		out = append(out, fmt.Sprintf("%-28s %s", use, c.Summary))
	}
	return out
}

// Flags returns the flag usage of command name, or "" if it takes none.
func (r *Registry) Flags(name string) string {
	c, ok := r.cmds[name]
	if !ok {
		return ""
	}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	c.Bind(fs)
	return fs.FlagUsages()
}
