package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product together with its ratings and rater details.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.created_at DESC")
		}).
		Preload("Ratings.User").
		First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDForUpdate retrieves a product with a SELECT ... FOR UPDATE row
// lock, so concurrent raters serialize on the aggregate recompute. Only
// meaningful inside a transaction.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.created_at DESC")
		}).
		Preload("Ratings.User").
		First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for update")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves the products with the given IDs. Missing IDs are skipped.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var productMs []model.ProductModel
	if err := repo.db.WithContext(ctx).Find(&productMs, "id IN ?", ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// FindAll retrieves every product in the catalog, ratings included.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Ratings").
		Preload("Ratings.User").
		Order("created_at DESC").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// Update modifies an existing product. Associations are managed separately,
// so only the product columns are written.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Omit("Ratings").
		Save(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateRatingStats persists the denormalized rating aggregates.
func (repo *productRepository) UpdateRatingStats(ctx context.Context, productID uuid.UUID, average float64, total int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		Updates(map[string]any{
			"average_rating": average,
			"total_ratings":  total,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating stats")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product; its ratings cascade at the database level.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpsertRating inserts the rating, or replaces the existing one by the same
// user on the same product. The (product_id, user_id) unique index drives the
// conflict clause.
func (repo *productRepository) UpsertRating(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "review", "created_at"}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.ID = ratingM.ID

	return nil
}

// FindRatingsByProduct retrieves all ratings of a product, newest first.
func (repo *productRepository) FindRatingsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Rating, error) {
	var ratingMs []model.RatingModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&ratingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	ratings := make([]*entity.Rating, 0, len(ratingMs))
	for i := range ratingMs {
		rating := toRatingDomain(&ratingMs[i])
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	ratings := make([]entity.Rating, 0, len(data.Ratings))
	for i := range data.Ratings {
		ratings = append(ratings, toRatingDomain(&data.Ratings[i]))
	}

	return &entity.Product{
		ID:                  data.ID,
		Name:                data.Name,
		Description:         data.Description,
		DetailedDescription: data.DetailedDescription,
		Price:               data.Price,
		OfferPrice:          data.OfferPrice,
		Images:              data.Images,
		Category:            data.Category,
		Sizes:               data.Sizes,
		InStock:             data.InStock,
		Ratings:             ratings,
		AverageRating:       data.AverageRating,
		TotalRatings:        data.TotalRatings,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                  data.ID,
		Name:                data.Name,
		Description:         data.Description,
		DetailedDescription: data.DetailedDescription,
		Price:               data.Price,
		OfferPrice:          data.OfferPrice,
		Images:              data.Images,
		Category:            data.Category,
		Sizes:               data.Sizes,
		InStock:             data.InStock,
		AverageRating:       data.AverageRating,
		TotalRatings:        data.TotalRatings,
		CreatedAt:           data.CreatedAt,
	}
}

// toRatingDomain converts a GORM RatingModel to a domain Rating entity,
// expanding rater details when the User association is loaded.
func toRatingDomain(data *model.RatingModel) entity.Rating {
	rating := entity.Rating{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
	}
	if data.User != nil {
		rating.UserName = data.User.Name
		rating.UserProfilePicture = data.User.ProfilePicture
	}

	return rating
}

// fromRatingDomain converts a domain Rating entity to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
	}
}
