package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sellerServiceFixtures holds all test dependencies for seller service tests.
type sellerServiceFixtures struct {
	service      usecase.SellerUsecase
	txManager    *mockRepo.MockTransactionManager
	sellerRepo   *mockRepo.MockSellerProfileRepository
	tokenService *mockSvc.MockTokenService
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sellerRepo := mockRepo.NewMockSellerProfileRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service, err := NewSellerService(SellerServiceParams{
		TxManager:    txManager,
		SellerRepo:   sellerRepo,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	return sellerServiceFixtures{
		service:      service,
		txManager:    txManager,
		sellerRepo:   sellerRepo,
		tokenService: tokenService,
	}
}

func TestNewSellerService_RequiresCredentials(t *testing.T) {
	_, err := NewSellerService(SellerServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		SellerRepo:   mockRepo.NewMockSellerProfileRepository(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Config:       &config.Config{Seller: &config.SellerConfig{Email: "seller@example.com"}},
		Logger:       newDiscardLogger(),
	})

	assert.Error(t, err)
}

func TestSellerService_Login_Success(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		GenerateSellerToken("seller@example.com").
		Return("seller-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "seller@example.com",
		Password: "super-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "seller-token", output.Token)
	assert.Equal(t, "seller@example.com", output.Email)
}

func TestSellerService_Login_Rejected(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.LoginInput
	}{
		{name: "wrong email", input: usecase.LoginInput{Email: "other@example.com", Password: "super-secret"}},
		{name: "wrong password", input: usecase.LoginInput{Email: "seller@example.com", Password: "guess"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Login(ctx, tt.input)

			// Wrong email and wrong password are indistinguishable.
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestSellerService_Login_MissingFields(t *testing.T) {
	fx := createTestSellerService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "seller@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestSellerService_GetProfile_Existing(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	stored := &entity.SellerProfile{Email: "seller@example.com", StoreName: "Corner Store"}
	fx.sellerRepo.EXPECT().
		FindByEmail(ctx, "seller@example.com").
		Return(stored, nil)

	profile, err := fx.service.GetProfile(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, profile)
}

func TestSellerService_GetProfile_CreatesDefaultLazily(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.sellerRepo.EXPECT().
		FindByEmail(ctx, "seller@example.com").
		Return(nil, repository.ErrSellerProfileNotFound)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sellerRepo := mockRepo.NewMockSellerProfileRepository(t)
			factory.EXPECT().NewSellerProfileRepository().Return(sellerRepo)

			// Still absent inside the transaction, so the default row is inserted.
			sellerRepo.EXPECT().
				FindByEmail(ctx, "seller@example.com").
				Return(nil, repository.ErrSellerProfileNotFound)
			sellerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.SellerProfile")).
				Return(nil)

			return fn(factory)
		})

	profile, err := fx.service.GetProfile(ctx)

	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", profile.Email)
	assert.Equal(t, "My Store", profile.StoreName)
	assert.True(t, profile.IsVerified)
}

func TestSellerService_GetProfile_ConcurrentFirstReadWins(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	inserted := &entity.SellerProfile{Email: "seller@example.com", StoreName: "Raced Store"}
	fx.sellerRepo.EXPECT().
		FindByEmail(ctx, "seller@example.com").
		Return(nil, repository.ErrSellerProfileNotFound)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sellerRepo := mockRepo.NewMockSellerProfileRepository(t)
			factory.EXPECT().NewSellerProfileRepository().Return(sellerRepo)

			// Another request inserted between the first read and the tx.
			sellerRepo.EXPECT().
				FindByEmail(ctx, "seller@example.com").
				Return(inserted, nil)

			return fn(factory)
		})

	profile, err := fx.service.GetProfile(ctx)

	require.NoError(t, err)
	assert.Equal(t, inserted, profile)
}

func TestSellerService_UpdateProfile_RejectsEmptyStoreName(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.sellerRepo.EXPECT().
		FindByEmail(ctx, "seller@example.com").
		Return(&entity.SellerProfile{Email: "seller@example.com", StoreName: "My Store"}, nil)

	empty := ""
	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateSellerProfileInput{StoreName: &empty})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSellerService_UpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.sellerRepo.EXPECT().
		FindByEmail(ctx, "seller@example.com").
		Return(&entity.SellerProfile{Email: "seller@example.com", StoreName: "My Store", Phone: "111"}, nil)
	fx.sellerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.SellerProfile")).
		Return(nil)

	storeName := "Corner Outlet"
	profile, err := fx.service.UpdateProfile(ctx, usecase.UpdateSellerProfileInput{StoreName: &storeName})

	require.NoError(t, err)
	assert.Equal(t, "Corner Outlet", profile.StoreName)
	assert.Equal(t, "111", profile.Phone, "untouched fields keep their value")
}
