package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func TestCartService_ReplaceCart_NormalizesBeforePersisting(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := uuid.New()
	keep := entity.NewCartKey(uuid.New(), "M").String()
	drop := entity.NewCartKey(uuid.New(), "").String()

	fx.userRepo.EXPECT().
		UpdateCart(ctx, userID, mock.AnythingOfType("entity.Cart")).
		Run(func(ctx context.Context, id uuid.UUID, items entity.Cart) {
			assert.NotContains(t, items, drop, "non-positive lines must be dropped")
			assert.Equal(t, 2, items[keep])
		}).
		Return(nil)

	cart, err := fx.service.ReplaceCart(ctx, userID, entity.Cart{
		keep: 2,
		drop: 0,
	})

	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestCartService_AddItem_RequiresSizeForClothing(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	productID := uuid.New()
	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Category: entity.CategoryMen}, nil)

	_, err := fx.service.AddItem(ctx, uuid.New(), productID, "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddItem_RejectsSizeForNonClothing(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	productID := uuid.New()
	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Category: "Electronics"}, nil)

	_, err := fx.service.AddItem(ctx, uuid.New(), productID, "XL")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddItem_IncrementsExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := uuid.New()
	productID := uuid.New()
	key := entity.NewCartKey(productID, "L").String()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Category: entity.CategoryWomen}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, CartItems: entity.Cart{key: 1}}, nil)
	fx.userRepo.EXPECT().
		UpdateCart(ctx, userID, entity.Cart{key: 2}).
		Return(nil)

	cart, err := fx.service.AddItem(ctx, userID, productID, "L")

	require.NoError(t, err)
	assert.Equal(t, 2, cart[key])
}

func TestCartService_RemoveItem_MalformedKey(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.RemoveItem(context.Background(), uuid.New(), "not-a-cart-key")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_RemoveItem_DeletesLineAtZero(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := uuid.New()
	key := entity.NewCartKey(uuid.New(), "").String()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, CartItems: entity.Cart{key: 1}}, nil)
	fx.userRepo.EXPECT().
		UpdateCart(ctx, userID, entity.Cart{}).
		Return(nil)

	cart, err := fx.service.RemoveItem(ctx, userID, key)

	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartService_GetCart_UnknownUser(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetCart(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestCartService_Summarize(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := uuid.New()
	productID := uuid.New()
	key := entity.NewCartKey(productID, "S").String()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, CartItems: entity.Cart{key: 3}}, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{{ID: productID, Price: 25, OfferPrice: 19.99}}, nil)

	summary, err := fx.service.Summarize(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 59.97, summary.Amount, 0.0001)
	assert.Equal(t, entity.Cart{key: 3}, summary.Items)
}
