package customer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

// DetailUseCase perfil del cliente y su selección para el flujo de pago.
type DetailUseCase struct {
	repo repository.CustomerRepository
}

// NewDetailUseCase construye el caso de uso.
func NewDetailUseCase(repo repository.CustomerRepository) *DetailUseCase {
	return &DetailUseCase{repo: repo}
}

// GetDetail devuelve (nil, nil) si el cliente no existe. Los clientes inactivos se devuelven
// con EligibleForPayment=false.
func (uc *DetailUseCase) GetDetail(ctx context.Context, id string) (*dto.CustomerDetailResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQueryFailed, err)
	}
	if c == nil {
		return nil, nil
	}

	var (
		addresses []*entity.Address
		phones    []*entity.Phone
		ids       []*entity.GovernmentID
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		addresses, err = uc.repo.ListAddresses(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		phones, err = uc.repo.ListPhones(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		ids, err = uc.repo.ListGovernmentIDs(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQueryFailed, err)
	}
	return toDetailResponse(c, addresses, phones, ids), nil
}

// SelectForPayment valida que el cliente exista y esté activo antes de avanzar al pago.
// Devuelve (nil, nil) si no existe y domain.ErrCustomerInactive si está inactivo.
func (uc *DetailUseCase) SelectForPayment(ctx context.Context, id string) (*dto.CustomerDetailResponse, error) {
	detail, err := uc.GetDetail(ctx, id)
	if err != nil || detail == nil {
		return detail, err
	}
	if !detail.EligibleForPayment {
		return detail, domain.ErrCustomerInactive
	}
	return detail, nil
}

func toDetailResponse(c *entity.Customer, addresses []*entity.Address, phones []*entity.Phone, ids []*entity.GovernmentID) *dto.CustomerDetailResponse {
	out := &dto.CustomerDetailResponse{
		ID:                 c.ID,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		SecondLastName:     c.SecondLastName,
		FullName:           FullName(c),
		Status:             c.Status,
		RegistrationDate:   c.RegistrationDate,
		EligibleForPayment: c.IsActive(),
		Addresses:          make([]dto.AddressResponse, 0, len(addresses)),
		Phones:             make([]dto.PhoneResponse, 0, len(phones)),
		GovernmentIDs:      make([]dto.GovernmentIDResponse, 0, len(ids)),
	}
	for _, a := range addresses {
		out.Addresses = append(out.Addresses, dto.AddressResponse{
			ID:               a.ID,
			Street:           a.Street,
			PostalCode:       a.PostalCode,
			StateID:          a.StateID,
			StateName:        a.StateName,
			MunicipalityID:   a.MunicipalityID,
			MunicipalityName: a.MunicipalityName,
			NeighborhoodID:   a.NeighborhoodID,
			NeighborhoodName: a.NeighborhoodName,
			IsPrimary:        a.IsPrimary,
			Formatted:        FormatAddress(a),
		})
	}
	for _, p := range phones {
		out.Phones = append(out.Phones, dto.PhoneResponse{ID: p.ID, Number: p.Number, Type: p.Type})
	}
	for _, g := range ids {
		out.GovernmentIDs = append(out.GovernmentIDs, dto.GovernmentIDResponse{ID: g.ID, Type: g.Type, Number: g.Number})
	}
	return out
}
