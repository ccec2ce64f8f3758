package core

import (
	"bufio"
	"fmt"
	"strings"
)

// maxScriptDepth bounds exec nesting so a script that execs itself
// can't recurse forever.
const maxScriptDepth = 8

// RunScript executes the script at the given absolute path, one line
// at a time through the normal pipeline. Blank lines and # comments
// are skipped; exit is ignored so a script can't end the session out
// from under the user.
func (s *Shell) RunScript(path string) error {
	if s.scriptDepth >= maxScriptDepth {
		return fmt.Errorf("%s: too many levels of nested scripts", path)
	}

	fd, err := s.session.FS().Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	s.scriptDepth++
	defer func() { s.scriptDepth-- }()

	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.EqualFold(line, "exit") {
			fmt.Fprintln(s.console, "exit: ignored inside script")
			continue
		}

		s.RunLine(line)
	}

	return scanner.Err()
}
