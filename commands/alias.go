package commands

import (
	"fmt"
	"strings"
)

// Alias implements the alias built-in: define, view, or remove command
// shortcuts. Bodies are expanded once by the dispatcher before command
// resolution.
func Alias(inv *Invocation) error {
	cmd := &SimpleCommand{
		Use:   "alias [-u NAME] [NAME[=BODY]...]",
		Short: "Define, view, or remove command aliases.",
	}

	unset := cmd.Flags().Bool('u', "remove the named alias")

	return cmd.Run(inv, func() error {
		args := cmd.Flags().Args()

		if *unset {
			if len(args) != 1 {
				return fmt.Errorf("usage: alias -u <name>")
			}
			if !inv.Session.RemoveAlias(args[0]) {
				return fmt.Errorf("%s: not found", args[0])
			}
			return nil
		}

		if len(args) == 0 {
			for _, name := range inv.Session.AliasNames() {
				body, _ := inv.Session.Alias(name)
				fmt.Fprintf(inv.Out, "alias %s='%s'\n", name, body)
			}
			return nil
		}

		var firstErr error
		for _, arg := range args {
			name, body, found := cutAssignment(arg)
			switch {
			case found:
				if name == "" || body == "" {
					return fmt.Errorf("usage: alias <name>=<body>")
				}
				inv.Session.SetAlias(name, body)
			default:
				existing, ok := inv.Session.Alias(arg)
				if !ok {
					if firstErr == nil {
						firstErr = fmt.Errorf("%s: not found", arg)
					}
					continue
				}
				fmt.Fprintf(inv.Out, "alias %s='%s'\n", arg, existing)
			}
		}
		return firstErr
	})
}

func cutAssignment(arg string) (name, body string, found bool) {
	idx := strings.Index(arg, "=")
	if idx < 0 {
		return arg, "", false
	}
	return strings.TrimSpace(arg[:idx]), strings.TrimSpace(arg[idx+1:]), true
}

func init() {
	mustRegister(&Command{
		Name:  "alias",
		Use:   "alias [name=body]",
		Short: "Manage command aliases.",
		Run:   Alias,
	})
}
