package customer_test

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

// memRepo registro de clientes en memoria con la misma semántica que el adaptador PostgreSQL.
type memRepo struct {
	mu        sync.Mutex
	customers []*entity.Customer
	addresses []*entity.Address
	phones    []*entity.Phone
	govIDs    []*entity.GovernmentID
	failOn    map[string]error
	calls     map[string]int
}

func newMemRepo() *memRepo {
	return &memRepo{failOn: map[string]error{}, calls: map[string]int{}}
}

func (r *memRepo) hit(op string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[op]++
	return r.failOn[op]
}

func (r *memRepo) callCount(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[op]
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if err := r.hit("GetByID"); err != nil {
		return nil, err
	}
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memRepo) SearchByName(_ context.Context, f entity.NameFilter) ([]*entity.Customer, error) {
	if err := r.hit("SearchByName"); err != nil {
		return nil, err
	}
	var out []*entity.Customer
	for _, c := range r.customers {
		if strings.Contains(c.FirstName, f.FirstName) &&
			strings.Contains(c.LastName, f.LastName) &&
			strings.Contains(c.SecondLastName, f.SecondLastName) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memRepo) ListAddresses(_ context.Context, customerID string) ([]*entity.Address, error) {
	if err := r.hit("ListAddresses"); err != nil {
		return nil, err
	}
	var out []*entity.Address
	for _, a := range r.addresses {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memRepo) ListPhones(_ context.Context, customerID string) ([]*entity.Phone, error) {
	if err := r.hit("ListPhones"); err != nil {
		return nil, err
	}
	var out []*entity.Phone
	for _, p := range r.phones {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memRepo) ListGovernmentIDs(_ context.Context, customerID string) ([]*entity.GovernmentID, error) {
	if err := r.hit("ListGovernmentIDs"); err != nil {
		return nil, err
	}
	var out []*entity.GovernmentID
	for _, g := range r.govIDs {
		if g.CustomerID == customerID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memRepo) CustomerIDsByPhone(_ context.Context, numbers []string) (repository.IDSet, error) {
	if err := r.hit("CustomerIDsByPhone"); err != nil {
		return nil, err
	}
	out := repository.IDSet{}
	for _, p := range r.phones {
		for _, n := range numbers {
			if p.Number == n {
				out[p.CustomerID] = struct{}{}
			}
		}
	}
	return out, nil
}

func (r *memRepo) CustomerIDsByGovernmentID(_ context.Context, preds []entity.GovernmentIDPredicate) (repository.IDSet, error) {
	if err := r.hit("CustomerIDsByGovernmentID"); err != nil {
		return nil, err
	}
	out := repository.IDSet{}
	for _, g := range r.govIDs {
		for _, p := range preds {
			if g.Type == p.Type && g.Number == p.Number {
				out[g.CustomerID] = struct{}{}
			}
		}
	}
	return out, nil
}

func (r *memRepo) CustomerIDsByAddress(_ context.Context, p entity.AddressPredicate) (repository.IDSet, error) {
	if err := r.hit("CustomerIDsByAddress"); err != nil {
		return nil, err
	}
	out := repository.IDSet{}
	for _, a := range r.addresses {
		if (p.StateID == "" || a.StateID == p.StateID) &&
			(p.MunicipalityID == "" || a.MunicipalityID == p.MunicipalityID) &&
			(p.NeighborhoodID == "" || a.NeighborhoodID == p.NeighborhoodID) &&
			(p.PostalCode == "" || a.PostalCode == p.PostalCode) {
			out[a.CustomerID] = struct{}{}
		}
	}
	return out, nil
}

// seedRegistry carga un registro pequeño con casos que se cruzan entre filtros.
func seedRegistry() *memRepo {
	r := newMemRepo()
	r.customers = []*entity.Customer{
		{ID: "c1", FirstName: "ESQUIVEL", LastName: "VELAZQUEZ", SecondLastName: "RUIZ", Status: entity.CustomerStatusActive},
		{ID: "c2", FirstName: "ESQUIVEL", LastName: "MORA", Status: entity.CustomerStatusActive},
		{ID: "c3", FirstName: "ANA ESQUIVEL", LastName: "VELAZQUEZ", Status: entity.CustomerStatusInactive},
		{ID: "c4", FirstName: "esquivel", LastName: "velazquez", Status: entity.CustomerStatusActive},
		{ID: "c5", FirstName: "LUIS", LastName: "PEREZ", Status: entity.CustomerStatusActive},
	}
	r.phones = []*entity.Phone{
		{ID: "p1", CustomerID: "c1", Number: "5511111111", Type: entity.PhoneTypeMobile},
		{ID: "p2", CustomerID: "c1", Number: "5522222222", Type: entity.PhoneTypeHome},
		{ID: "p3", CustomerID: "c2", Number: "5533333333", Type: entity.PhoneTypeWork},
		{ID: "p4", CustomerID: "c5", Number: "5544444444", Type: entity.PhoneTypeMobile},
	}
	r.govIDs = []*entity.GovernmentID{
		{ID: "g1", CustomerID: "c1", Type: entity.GovernmentIDTypeRFC, Number: "EUVR800101AB1"},
		{ID: "g2", CustomerID: "c2", Type: entity.GovernmentIDTypeIFE, Number: "12345678901234567890"},
		{ID: "g3", CustomerID: "c3", Type: entity.GovernmentIDTypePassport, Number: "G1234567"},
		{ID: "g4", CustomerID: "c5", Type: entity.GovernmentIDTypeRFC, Number: "PELU900101XY2"},
	}
	r.addresses = []*entity.Address{
		{ID: "a1", CustomerID: "c1", Street: "Av. Reforma 10", PostalCode: "06600", StateID: "9", MunicipalityID: "15", NeighborhoodID: "301",
			IsPrimary: true, StateName: "Ciudad de México", MunicipalityName: "Cuauhtémoc", NeighborhoodName: "Juárez"},
		{ID: "a2", CustomerID: "c1", Street: "Calle 5", PostalCode: "44100", StateID: "14", MunicipalityID: "39"},
		{ID: "a3", CustomerID: "c2", Street: "Insurgentes 200", StateID: "9", MunicipalityID: "14", IsPrimary: true},
		{ID: "a4", CustomerID: "c3", Street: "Morelos 1", PostalCode: "06600", StateID: "9", MunicipalityID: "15", IsPrimary: false},
	}
	return r
}
