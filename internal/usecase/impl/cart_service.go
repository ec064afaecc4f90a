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

// cartService implements the CartUsecase interface. Every mutation persists
// the whole mapping back; the server keeps no per-line history and the last
// writer wins across sessions.
type cartService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the persisted cart of the user.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	if user.CartItems == nil {
		return entity.Cart{}, nil
	}

	return user.CartItems, nil
}

// ReplaceCart overwrites the persisted cart with the supplied mapping.
func (srv *cartService) ReplaceCart(ctx context.Context, userID uuid.UUID, items entity.Cart) (entity.Cart, error) {
	normalized := items.Normalize()

	if err := srv.userRepo.UpdateCart(ctx, userID, normalized); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to replace cart")
	}

	srv.log(ctx).Debug("Cart replaced", slog.Any("userID", userID), slog.Int("lines", len(normalized)))

	return normalized, nil
}

// AddItem increments the line for the product/size by one and persists the
// updated cart. Clothing products require a size; others must not carry one.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID, size string) (entity.Cart, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for cart add")
	}

	if product.IsClothing() && size == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("size is required for clothing products")
	}
	if !product.IsClothing() && size != "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("size is only accepted for clothing products")
	}

	cart, err := srv.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Add(productID, size)

	return srv.persist(ctx, userID, cart)
}

// RemoveItem decrements the line by one, deleting it at zero.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, key string) (entity.Cart, error) {
	if _, err := entity.ParseCartKey(key); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed cart key")
	}

	cart, err := srv.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Remove(key)

	return srv.persist(ctx, userID, cart)
}

// Summarize returns the cart with its derived count and amount over current
// offer prices.
func (srv *cartService) Summarize(ctx context.Context, userID uuid.UUID) (*usecase.CartSummary, error) {
	cart, err := srv.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(cart))
	for key := range cart {
		if parsed, err := entity.ParseCartKey(key); err == nil {
			ids = append(ids, parsed.ProductID)
		}
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to price cart")
	}

	prices := make(map[uuid.UUID]float64, len(products))
	for _, product := range products {
		prices[product.ID] = product.OfferPrice
	}

	amount := cart.Amount(func(productID uuid.UUID) (float64, bool) {
		price, ok := prices[productID]

		return price, ok
	})

	return &usecase.CartSummary{
		Items:  cart,
		Count:  cart.Count(),
		Amount: amount,
	}, nil
}

func (srv *cartService) persist(ctx context.Context, userID uuid.UUID, cart entity.Cart) (entity.Cart, error) {
	if err := srv.userRepo.UpdateCart(ctx, userID, cart); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to persist cart")
	}

	return cart, nil
}
