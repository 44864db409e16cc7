package postgres

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeContains arma el patrón '%valor%' escapando los comodines del propio valor.
func likeContains(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}

// collectIDs lee una columna de IDs en un conjunto.
func collectIDs(rows pgx.Rows, op string) (repository.IDSet, error) {
	defer rows.Close()
	out := repository.IDSet{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s: %w", op, err)
		}
		out[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
