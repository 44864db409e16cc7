package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre el registro central (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, first_name, last_name, COALESCE(second_last_name, ''), status, registration_date`

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.SecondLastName, &c.Status, &c.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// SearchByName paso base de la búsqueda. Los nombres vacíos no restringen.
func (r *CustomerRepo) SearchByName(ctx context.Context, f entity.NameFilter) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE 1=1`
	var args []any
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, likeContains(value))
		query += fmt.Sprintf(" AND %s LIKE $%d", column, len(args))
	}
	add("first_name", f.FirstName)
	add("last_name", f.LastName)
	add("second_last_name", f.SecondLastName)
	query += " ORDER BY id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search customers by name: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.SecondLastName, &c.Status, &c.RegistrationDate); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListAddresses domicilios del cliente con los nombres de estado, municipio y colonia (LEFT JOIN).
func (r *CustomerRepo) ListAddresses(ctx context.Context, customerID string) ([]*entity.Address, error) {
	query := `
		SELECT a.id, a.customer_id, a.street, COALESCE(a.postal_code, ''),
		       a.state_id, a.municipality_id, COALESCE(a.neighborhood_id, ''), a.is_primary,
		       COALESCE(s.name, ''), COALESCE(m.name, ''), COALESCE(n.name, '')
		FROM addresses a
		LEFT JOIN states s ON s.id = a.state_id
		LEFT JOIN municipalities m ON m.id = a.municipality_id
		LEFT JOIN neighborhoods n ON n.id = a.neighborhood_id
		WHERE a.customer_id = $1
		ORDER BY a.is_primary DESC, a.id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(
			&a.ID, &a.CustomerID, &a.Street, &a.PostalCode,
			&a.StateID, &a.MunicipalityID, &a.NeighborhoodID, &a.IsPrimary,
			&a.StateName, &a.MunicipalityName, &a.NeighborhoodName,
		); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListPhones teléfonos del cliente en el orden natural del registro.
func (r *CustomerRepo) ListPhones(ctx context.Context, customerID string) ([]*entity.Phone, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, customer_id, number, type FROM phones WHERE customer_id = $1 ORDER BY id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Phone
	for rows.Next() {
		var p entity.Phone
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.Number, &p.Type); err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListGovernmentIDs identificaciones oficiales del cliente.
func (r *CustomerRepo) ListGovernmentIDs(ctx context.Context, customerID string) ([]*entity.GovernmentID, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, customer_id, type, number FROM government_ids WHERE customer_id = $1 ORDER BY id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list government ids: %w", err)
	}
	defer rows.Close()
	var list []*entity.GovernmentID
	for rows.Next() {
		var g entity.GovernmentID
		if err := rows.Scan(&g.ID, &g.CustomerID, &g.Type, &g.Number); err != nil {
			return nil, fmt.Errorf("scan government id: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// CustomerIDsByPhone clientes con algún teléfono igual a cualquiera de los números (OR).
func (r *CustomerRepo) CustomerIDsByPhone(ctx context.Context, numbers []string) (repository.IDSet, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT customer_id FROM phones WHERE number = ANY($1)`, numbers)
	if err != nil {
		return nil, fmt.Errorf("customer ids by phone: %w", err)
	}
	return collectIDs(rows, "customer ids by phone")
}

// CustomerIDsByGovernmentID clientes que cumplen cualquiera de los predicados tipo+número (OR).
func (r *CustomerRepo) CustomerIDsByGovernmentID(ctx context.Context, preds []entity.GovernmentIDPredicate) (repository.IDSet, error) {
	if len(preds) == 0 {
		return repository.IDSet{}, nil
	}
	conds := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds)*2)
	for _, p := range preds {
		args = append(args, p.Type, p.Number)
		conds = append(conds, fmt.Sprintf("(type = $%d AND number = $%d)", len(args)-1, len(args)))
	}
	query := `SELECT DISTINCT customer_id FROM government_ids WHERE ` + strings.Join(conds, " OR ")
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("customer ids by government id: %w", err)
	}
	return collectIDs(rows, "customer ids by government id")
}

// CustomerIDsByAddress clientes con un mismo domicilio que cumple todos los predicados no vacíos (AND).
func (r *CustomerRepo) CustomerIDsByAddress(ctx context.Context, pred entity.AddressPredicate) (repository.IDSet, error) {
	query := `SELECT DISTINCT customer_id FROM addresses WHERE 1=1`
	var args []any
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		query += fmt.Sprintf(" AND %s = $%d", column, len(args))
	}
	add("state_id", pred.StateID)
	add("municipality_id", pred.MunicipalityID)
	add("neighborhood_id", pred.NeighborhoodID)
	add("postal_code", pred.PostalCode)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("customer ids by address: %w", err)
	}
	return collectIDs(rows, "customer ids by address")
}
