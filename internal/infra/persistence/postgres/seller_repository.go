package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sellerProfileRepository implements the repository.SellerProfileRepository interface using GORM.
type sellerProfileRepository struct {
	db *gorm.DB
}

// NewSellerProfileRepository is the constructor for sellerProfileRepository.
func NewSellerProfileRepository(db *gorm.DB) repository.SellerProfileRepository {
	return &sellerProfileRepository{db: db}
}

// FindByEmail retrieves the seller profile for the given email.
func (repo *sellerProfileRepository) FindByEmail(ctx context.Context, email string) (*entity.SellerProfile, error) {
	var profileM model.SellerProfileModel
	if err := repo.db.WithContext(ctx).First(&profileM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller profile")
	}

	return toSellerProfileDomain(&profileM), nil
}

// Create persists a new seller profile.
func (repo *sellerProfileRepository) Create(ctx context.Context, profile *entity.SellerProfile) error {
	profileM := fromSellerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("seller profile already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies the existing seller profile.
func (repo *sellerProfileRepository) Update(ctx context.Context, profile *entity.SellerProfile) error {
	profileM := fromSellerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update seller profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toSellerProfileDomain converts a GORM SellerProfileModel to a domain SellerProfile entity.
func toSellerProfileDomain(data *model.SellerProfileModel) *entity.SellerProfile {
	if data == nil {
		return nil
	}

	return &entity.SellerProfile{
		ID:          data.ID,
		Email:       data.Email,
		Name:        data.Name,
		Phone:       data.Phone,
		StoreName:   data.StoreName,
		Address:     data.Address,
		Description: data.Description,
		IsVerified:  data.IsVerified,
		AccountType: entity.SellerAccountType(data.AccountType),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSellerProfileDomain converts a domain SellerProfile entity to a GORM SellerProfileModel.
func fromSellerProfileDomain(data *entity.SellerProfile) *model.SellerProfileModel {
	if data == nil {
		return nil
	}

	return &model.SellerProfileModel{
		ID:          data.ID,
		Email:       data.Email,
		Name:        data.Name,
		Phone:       data.Phone,
		StoreName:   data.StoreName,
		Address:     data.Address,
		Description: data.Description,
		IsVerified:  data.IsVerified,
		AccountType: string(data.AccountType),
		CreatedAt:   data.CreatedAt,
	}
}
