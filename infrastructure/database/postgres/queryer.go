package postgres

import "database/sql"

// Queryer é o subconjunto de operações usado pelos repositórios. Permite
// trocar a *Connection por um *sql.Tx dentro de uma transação.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
