package stepobject

import (
	"strings"

	"github.com/specialistvlad/stepliteral/internal/value"
)

// RedirectOptions selects which streams go to the log and whether the log
// is appended to.
type RedirectOptions struct {
	Stdout bool
	Stderr bool
	Append bool
}

// DefaultRedirect sends both streams to a truncated log.
var DefaultRedirect = RedirectOptions{Stdout: true, Stderr: true}

// ShellRedirect returns the redirection suffix for a shell command:
//
//	stdout stderr append  result
//	true   true   true    " >> log 2>&1"
//	true   false  true    " >> log"
//	false  true   true    " 2>> log"
//	true   true   false   " > log 2>&1"
//	true   false  false   " > log"
//	false  true   false   " 2> log"
//
// An empty log yields "" whatever the options, and so does a request that
// redirects neither stream.
func ShellRedirect(log string, opts RedirectOptions) string {
	if log == "" {
		return ""
	}
	op := ">"
	if opts.Append {
		op = ">>"
	}
	switch {
	case opts.Stdout && opts.Stderr:
		return " " + op + " " + log + " 2>&1"
	case opts.Stdout:
		return " " + op + " " + log
	case opts.Stderr:
		return " 2" + op + " " + log
	}
	return ""
}

// LogFmtShell returns the redirection suffix for the step's log files, so
// that shell commands in a script honour the log declared by the rule.
func (s *Step) LogFmtShell(opts RedirectOptions) string {
	return ShellRedirect(LogText(s.log), opts)
}

// LogText joins the log entries with spaces.
func LogText(nl *value.NamedList) string {
	var parts []string
	for v := range nl.Values() {
		parts = append(parts, value.Text(v))
	}
	return strings.Join(parts, " ")
}
