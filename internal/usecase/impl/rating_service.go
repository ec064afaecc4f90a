package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CanRate reports whether a Delivered order of the user contains the product,
// and whether the user already has a rating on it.
func (srv *ratingService) CanRate(ctx context.Context, userID, productID uuid.UUID) (*usecase.CanRateOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for rating check")
	}

	delivered, err := srv.orderRepo.HasDeliveredProduct(ctx, userID, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check delivered orders")
	}

	output := &usecase.CanRateOutput{CanRate: delivered}
	if existing, ok := product.RatingByUser(userID); ok {
		output.HasRated = true
		output.Existing = &existing
	}

	return output, nil
}

// RateProduct upserts the user's rating and recomputes the product's
// aggregates inside one transaction, so the stored average always matches
// the stored ratings at commit time.
func (srv *ratingService) RateProduct(ctx context.Context, input usecase.RateProductInput) (*entity.Product, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	delivered, err := srv.orderRepo.HasDeliveredProduct(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check rating eligibility")
	}
	if !delivered {
		srv.log(ctx).Warn("Rating rejected by delivery gate",
			slog.Any("userID", input.UserID), slog.Any("productID", input.ProductID))

		return nil, domainerrors.ErrRatingNotAllowed
	}

	var updated *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		// Locked read so concurrent raters serialize on the recompute.
		product, txErr := productRepo.FindByIDForUpdate(ctx, input.ProductID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(txErr, "failed to load product for rating")
		}

		rating := &entity.Rating{
			ProductID: input.ProductID,
			UserID:    input.UserID,
			Rating:    input.Rating,
			Review:    input.Review,
			CreatedAt: time.Now(),
		}
		if txErr := productRepo.UpsertRating(ctx, rating); txErr != nil {
			return errors.Wrap(txErr, "failed to store rating")
		}

		// Rebuild the embedded list locally so the aggregates and the
		// returned product reflect this write without a second read.
		replaceRating(product, *rating)
		product.RecomputeRatingStats()

		if txErr := productRepo.UpdateRatingStats(ctx, product.ID, product.AverageRating, product.TotalRatings); txErr != nil {
			return errors.Wrap(txErr, "failed to store rating aggregates")
		}

		updated = product

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Rating recorded",
		slog.Any("productID", input.ProductID), slog.Int("rating", input.Rating))

	return updated, nil
}

// ListRatings returns all ratings of a product with rater details, newest first.
func (srv *ratingService) ListRatings(ctx context.Context, productID uuid.UUID) ([]*entity.Rating, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for ratings")
	}

	ratings, err := srv.productRepo.FindRatingsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}

// replaceRating swaps the user's existing rating in the embedded list, or
// appends when the user has none yet.
func replaceRating(product *entity.Product, rating entity.Rating) {
	for i := range product.Ratings {
		if product.Ratings[i].UserID == rating.UserID {
			product.Ratings[i] = rating

			return
		}
	}
	product.Ratings = append(product.Ratings, rating)
}
