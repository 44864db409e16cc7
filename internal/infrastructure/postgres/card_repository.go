package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

var _ repository.CardRepository = (*CardRepo)(nil)

// CardRepo lectura de tarjetas. Devuelve el PAN completo: solo lo consume la capa de tarjetas.
type CardRepo struct {
	q Querier
}

// NewCardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCardRepository(q Querier) *CardRepo {
	return &CardRepo{q: q}
}

const cardColumns = `id, customer_id, card_number, card_type, status, issuance_date, expiration_date`

func scanCard(row pgx.Row) (*entity.Card, error) {
	var c entity.Card
	if err := row.Scan(&c.ID, &c.CustomerID, &c.Number, &c.Type, &c.Status, &c.IssuanceDate, &c.ExpirationDate); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByCustomer tarjetas del cliente; lista vacía si no tiene ninguna.
func (r *CardRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Card, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE customer_id = $1 ORDER BY issuance_date DESC, id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Card, 0)
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene una tarjeta por ID. (nil, nil) si no existe.
func (r *CardRepo) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	c, err := scanCard(r.q.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card: %w", err)
	}
	return c, nil
}
