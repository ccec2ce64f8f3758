package commands

import (
	"fmt"
	"sort"
)

// CommandFunc is the executable logic bound to a command name. It
// writes normal output to inv.Out and returns a typed error on
// failure; formatting of errors happens at the dispatcher boundary.
type CommandFunc func(inv *Invocation) error

// Command is one registry entry. Entries are immutable after startup.
type Command struct {
	Name  string
	Use   string
	Short string
	Run   CommandFunc
}

// allCommands maps command names to their handlers. Lookup is
// exact-match and case-sensitive.
var allCommands = make(map[string]*Command)

// mustRegister adds a built-in to the registry, panicking on duplicate
// names so collisions surface at startup rather than at dispatch.
func mustRegister(cmd *Command) {
	if _, exists := allCommands[cmd.Name]; exists {
		panic(fmt.Sprintf("duplicate command registered: %q", cmd.Name))
	}
	allCommands[cmd.Name] = cmd
}

// Resolve looks up a built-in by name.
func Resolve(name string) (*Command, bool) {
	cmd, ok := allCommands[name]
	return cmd, ok
}

// ListBuiltinCommands returns every registered command sorted by name.
func ListBuiltinCommands() []*Command {
	out := make([]*Command, 0, len(allCommands))
	for _, cmd := range allCommands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
