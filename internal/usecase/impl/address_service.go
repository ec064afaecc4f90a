package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddAddress stores a new shipping address for the user.
func (srv *addressService) AddAddress(ctx context.Context, input usecase.AddAddressInput) (*entity.Address, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.Street == "" || input.City == "" || input.State == "" ||
		input.Zipcode == "" || input.Country == "" || input.Phone == "" {
		return nil, domainerrors.ErrMissingFields
	}

	address := &entity.Address{
		UserID:    input.UserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		Zipcode:   input.Zipcode,
		Country:   input.Country,
		Phone:     input.Phone,
	}

	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to store address")
	}

	srv.log(ctx).Debug("Address added", slog.Any("userID", input.UserID), slog.Any("addressID", address.ID))

	return address, nil
}

// ListAddresses returns the user's addresses, newest first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// DeleteAddress removes an address owned by the user.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	address, err := srv.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to load address for deletion")
	}
	if address.UserID != userID {
		// Do not reveal that the id exists for someone else.
		return domainerrors.ErrAddressNotFound
	}

	if err := srv.addressRepo.Delete(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address")
	}

	srv.log(ctx).Debug("Address deleted", slog.Any("addressID", addressID))

	return nil
}
