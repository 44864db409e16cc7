package repository

import (
	"context"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// IDSet conjunto de IDs de cliente devuelto por los pasos de acotamiento.
type IDSet map[string]struct{}

// NewIDSet construye un conjunto a partir de una lista.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has informa si el ID está en el conjunto.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// CustomerRepository puerto de lectura del registro central de clientes.
// GetByID devuelve (nil, nil) si el cliente no existe.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// SearchByName paso base: subcadena sensible a mayúsculas en cada nombre no vacío, orden por ID.
	SearchByName(ctx context.Context, f entity.NameFilter) ([]*entity.Customer, error)

	ListAddresses(ctx context.Context, customerID string) ([]*entity.Address, error)
	ListPhones(ctx context.Context, customerID string) ([]*entity.Phone, error)
	ListGovernmentIDs(ctx context.Context, customerID string) ([]*entity.GovernmentID, error)

	// Primitivas de acotamiento. Sin coincidencias se devuelve un conjunto vacío;
	// el caso de uso trata un nil igual que un conjunto vacío.
	CustomerIDsByPhone(ctx context.Context, numbers []string) (IDSet, error)
	CustomerIDsByGovernmentID(ctx context.Context, preds []entity.GovernmentIDPredicate) (IDSet, error)
	CustomerIDsByAddress(ctx context.Context, pred entity.AddressPredicate) (IDSet, error)
}
