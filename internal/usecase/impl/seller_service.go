package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sellerService implements the SellerUsecase interface. The seller
// authenticates against the configured credential pair; the profile row is a
// lazily created singleton keyed by the configured email.
type sellerService struct {
	txManager    repository.TransactionManager
	sellerRepo   repository.SellerProfileRepository
	tokenService service.TokenService
	email        string
	password     string
	logger       *slog.Logger
}

// SellerServiceParams holds dependencies for SellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SellerRepo   repository.SellerProfileRepository
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(params SellerServiceParams) (usecase.SellerUsecase, error) {
	if params.Config.Seller == nil || params.Config.Seller.Email == "" || params.Config.Seller.Password == "" {
		return nil, errors.New("seller credentials must be configured")
	}

	return &sellerService{
		txManager:    params.TxManager,
		sellerRepo:   params.SellerRepo,
		tokenService: params.TokenService,
		email:        params.Config.Seller.Email,
		password:     params.Config.Seller.Password,
		logger:       params.Logger,
	}, nil
}

func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login compares the credentials against configuration. Both fields must
// match exactly; any mismatch yields the same generic error.
func (srv *sellerService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SellerLoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(srv.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(srv.password)) == 1
	if !emailOK || !passwordOK {
		srv.log(ctx).Warn("Seller login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateSellerToken(srv.email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue seller token")
	}

	srv.log(ctx).Info("Seller logged in")

	return &usecase.SellerLoginOutput{Token: token, Email: srv.email}, nil
}

// GetProfile returns the seller profile, creating the default row if none
// exists yet. Creation runs in a transaction so two concurrent first reads
// cannot both insert.
func (srv *sellerService) GetProfile(ctx context.Context) (*entity.SellerProfile, error) {
	profile, err := srv.sellerRepo.FindByEmail(ctx, srv.email)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrSellerProfileNotFound) {
		return nil, errors.Wrap(err, "failed to load seller profile")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.NewSellerProfileRepository()

		existing, findErr := sellerRepo.FindByEmail(ctx, srv.email)
		if findErr == nil {
			profile = existing

			return nil
		}
		if !errors.Is(findErr, repository.ErrSellerProfileNotFound) {
			return errors.Wrap(findErr, "failed to re-check seller profile")
		}

		profile = entity.NewDefaultSellerProfile(srv.email)

		return sellerRepo.Create(ctx, profile)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create default seller profile")
	}

	srv.log(ctx).Info("Default seller profile created")

	return profile, nil
}

// UpdateProfile applies the provided changes and returns the updated profile.
func (srv *sellerService) UpdateProfile(ctx context.Context, input usecase.UpdateSellerProfileInput) (*entity.SellerProfile, error) {
	profile, err := srv.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.StoreName != nil {
		if *input.StoreName == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("store name cannot be empty")
		}
		profile.StoreName = *input.StoreName
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.Description != nil {
		profile.Description = *input.Description
	}

	if err := srv.sellerRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update seller profile")
	}

	srv.log(ctx).Debug("Seller profile updated")

	return profile, nil
}
