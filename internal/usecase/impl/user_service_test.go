package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	imageStore   *mockSvc.MockImageStore
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	imageStore := mockSvc.NewMockImageStore(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		ImageStore:   imageStore,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		imageStore:   imageStore,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateUserToken(mock.AnythingOfType("uuid.UUID")).
		Return("session-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Empty(t, output.User.PasswordHash, "hash must not leave the service")
	assert.NotNil(t, output.User.CartItems, "new accounts start with an empty cart")
}

func TestUserService_Register_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterUserInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "test@example.com").
		Return(&entity.User{ID: userID, Email: "test@example.com", PasswordHash: "stored-hash"}, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored-hash").Return(true)
	fx.tokenService.EXPECT().GenerateUserToken(userID).Return("session-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Empty(t, output.User.PasswordHash)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Missing accounts and wrong passwords are indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "test@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "stored-hash"}, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_UpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	stored := &entity.User{
		ID:    userID,
		Name:  "Old Name",
		Phone: "111",
	}
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	newName := "New Name"
	gender := entity.GenderFemale
	user, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID: userID,
		Name:   &newName,
		Gender: &gender,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, entity.GenderFemale, user.Gender)
	assert.Equal(t, "111", user.Phone, "untouched fields keep their value")
}

func TestUserService_UpdateProfile_RejectsInvalidGender(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	bad := entity.Gender("Robot")
	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID: userID,
		Gender: &bad,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UploadProfilePicture_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.imageStore.EXPECT().
		Upload(ctx, "profiles/"+userID.String()+".png", "image/png", mock.Anything).
		Return("https://cdn.example.com/profiles/x.png", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.UploadProfilePicture(ctx, userID, usecase.ImageUpload{
		FileName:    "avatar.PNG",
		ContentType: "image/png",
		Body:        strings.NewReader("fake image bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profiles/x.png", user.ProfilePicture)
}

func TestUserService_UploadProfilePicture_UpstreamFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.imageStore.EXPECT().
		Upload(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	_, err := fx.service.UploadProfilePicture(ctx, userID, usecase.ImageUpload{
		FileName:    "avatar.png",
		ContentType: "image/png",
		Body:        strings.NewReader("fake image bytes"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamImageHost)
}
