package querybuilder

import "strings"

type Condition interface {
	writeSQL(w *writer)
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func Eq(column string, value any) Condition {
	return compareCondition{column: column, op: "=", value: value}
}

func Ne(column string, value any) Condition {
	return compareCondition{column: column, op: "<>", value: value}
}

func (c compareCondition) writeSQL(w *writer) {
	w.write(c.column, " ", c.op, " ")
	w.bind(c.value)
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) writeSQL(w *writer) {
	if len(c.values) == 0 {
		w.write("1=0")
		return
	}
	w.write(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
}

type nullCondition struct {
	column string
	not    bool
}

func IsNull(column string) Condition {
	return nullCondition{column: column}
}

func IsNotNull(column string) Condition {
	return nullCondition{column: column, not: true}
}

func (c nullCondition) writeSQL(w *writer) {
	if c.not {
		w.write(c.column, " IS NOT NULL")
		return
	}
	w.write(c.column, " IS NULL")
}

type prefixCondition struct {
	column string
	prefix string
}

// HasPrefix matches column values starting with prefix. LIKE wildcards in
// prefix are escaped.
func HasPrefix(column, prefix string) Condition {
	return prefixCondition{column: column, prefix: prefix}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (c prefixCondition) writeSQL(w *writer) {
	w.write(c.column, " LIKE ")
	w.bind(likeEscaper.Replace(c.prefix) + "%")
}

type anyOfCondition struct {
	conditions []Condition
}

// Or joins conditions with OR inside parentheses. No conditions never match.
func Or(conditions ...Condition) Condition {
	return anyOfCondition{conditions: conditions}
}

func (c anyOfCondition) writeSQL(w *writer) {
	if len(c.conditions) == 0 {
		w.write("1=0")
		return
	}
	w.write("(")
	for i, cond := range c.conditions {
		if i > 0 {
			w.write(" OR ")
		}
		cond.writeSQL(w)
	}
	w.write(")")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr is a raw fragment whose '?' markers bind args in order.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) writeSQL(w *writer) {
	w.expr(c.expr, c.args)
}
