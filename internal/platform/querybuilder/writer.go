package querybuilder

import (
	"strconv"
	"strings"
)

// writer accumulates SQL text and its positional ($n) arguments.
type writer struct {
	buf  strings.Builder
	args []any
}

func (w *writer) write(parts ...string) {
	for _, part := range parts {
		w.buf.WriteString(part)
	}
}

func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes a fragment, binding one argument per '?'. Extra '?' are kept
// verbatim.
func (w *writer) expr(fragment string, args []any) {
	next := 0
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.buf.WriteByte(fragment[i])
	}
}

func (w *writer) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.write(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.write(" AND ")
		}
		c.writeSQL(w)
	}
}

func (w *writer) list(keyword string, parts []string) {
	if len(parts) == 0 {
		return
	}
	w.write(" ", keyword, " ", strings.Join(parts, ", "))
}

func (w *writer) result() (string, []any) {
	return w.buf.String(), w.args
}
