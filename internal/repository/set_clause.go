package repository

import (
	"fmt"
	"strings"
)

// setClause collects the column writes of a partial update. Only columns
// added to it are written; everything else keeps its stored value.
type setClause struct {
	columns []string
	args    []any
}

func (s *setClause) add(column string, value any) {
	s.args = append(s.args, value)
	s.columns = append(s.columns, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func (s *setClause) empty() bool {
	return len(s.columns) == 0
}

// build renders "UPDATE table SET ... WHERE key = $n" plus its args, with
// the id bound to the last placeholder.
func (s *setClause) build(table, keyColumn string, id int64) (string, []any) {
	args := append(append([]any(nil), s.args...), id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", table, strings.Join(s.columns, ", "), keyColumn, len(args))
	return query, args
}
