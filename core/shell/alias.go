package shell

import "strings"

// ApplyAliases rewrites every command whose program is an alias. The alias'
// own arguments come before the command's. Expansion happens once, an alias
// that names another alias isn't followed. Redirect targets are paths and are
// left alone.
func (cl *CommandList) ApplyAliases(aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	for i, cmd := range cl.Commands {
		if cl.redirectTarget(i) {
			continue
		}

		value, ok := aliases[cmd.Program]
		if !ok {
			continue
		}
		fields := strings.Fields(value)
		if len(fields) == 0 {
			continue
		}

		args := make([]string, 0, len(fields)-1+len(cmd.Args))
		args = append(args, fields[1:]...)
		args = append(args, cmd.Args...)

		cl.Commands[i] = Command{
			Program: fields[0],
			Args:    args,
		}
	}
}

// redirectTarget reports whether Commands[i] names the file of a redirect.
func (cl *CommandList) redirectTarget(i int) bool {
	return i > 0 && i-1 < len(cl.Operators) && cl.Operators[i-1].IsRedirect()
}
