package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxProductImages bounds the number of images accepted per product upload.
const maxProductImages = 4

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddProduct uploads the product images and creates the catalog entry.
// Images already uploaded are not removed when a later step fails.
func (srv *catalogService) AddProduct(ctx context.Context, input usecase.AddProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Category == "" {
		return nil, domainerrors.ErrMissingFields
	}
	if input.Price <= 0 || input.OfferPrice <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prices must be positive")
	}
	if input.OfferPrice > input.Price {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offer price cannot exceed list price")
	}
	if len(input.Images) == 0 {
		return nil, domainerrors.ErrMissingFields.WithDetails("at least one product image is required")
	}
	if len(input.Images) > maxProductImages {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("at most %d images are accepted", maxProductImages))
	}

	product := &entity.Product{
		ID:                  uuid.New(),
		Name:                input.Name,
		Description:         input.Description,
		DetailedDescription: input.DetailedDescription,
		Price:               input.Price,
		OfferPrice:          input.OfferPrice,
		Category:            input.Category,
		Sizes:               input.Sizes,
		InStock:             true,
	}

	urls, err := srv.uploadImages(ctx, product.ID, 0, input.Images)
	if err != nil {
		return nil, err
	}
	product.Images = urls

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product added", slog.Any("productID", product.ID), slog.String("category", product.Category))

	return product, nil
}

// ListProducts returns the whole catalog, newest first.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single product with its ratings expanded.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// UpdateProduct applies the provided changes and returns the updated product.
func (srv *catalogService) UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.DetailedDescription != nil {
		product.DetailedDescription = *input.DetailedDescription
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("prices must be positive")
		}
		product.Price = *input.Price
	}
	if input.OfferPrice != nil {
		if *input.OfferPrice <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("prices must be positive")
		}
		product.OfferPrice = *input.OfferPrice
	}
	if product.OfferPrice > product.Price {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offer price cannot exceed list price")
	}
	if input.Category != nil {
		if *input.Category == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("category cannot be empty")
		}
		product.Category = *input.Category
	}
	if input.Sizes != nil {
		product.Sizes = input.Sizes
	}

	if len(input.Images) > 0 {
		if len(product.Images)+len(input.Images) > maxProductImages {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("at most %d images are accepted", maxProductImages))
		}
		urls, err := srv.uploadImages(ctx, product.ID, len(product.Images), input.Images)
		if err != nil {
			return nil, err
		}
		product.Images = append(product.Images, urls...)
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Debug("Product updated", slog.Any("productID", product.ID))

	return product, nil
}

// DeleteProduct removes a product and its ratings from the catalog, then
// removes its images from the blob store. Image cleanup is best effort: the
// catalog row is already gone, so failures only leave orphaned files.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	for _, url := range product.Images {
		key, ok := imageKeyFromURL(url)
		if !ok {
			continue
		}
		if err := srv.imageStore.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Orphaned product image",
				slog.Any("productID", productID), slog.String("key", key), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// ChangeStock toggles the manually managed stock flag.
func (srv *catalogService) ChangeStock(ctx context.Context, productID uuid.UUID, inStock bool) error {
	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	product.InStock = inStock
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return errors.Wrap(err, "failed to change stock flag")
	}

	srv.log(ctx).Debug("Stock changed", slog.Any("productID", productID), slog.Bool("inStock", inStock))

	return nil
}

// ProductQR returns a PNG QR code deep-linking to the product page.
func (srv *catalogService) ProductQR(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	// Verify the product exists before minting a code for it.
	if _, err := srv.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

// imageKeyFromURL recovers the storage key from a public image URL. Product
// images always live under "products/", which makes the split unambiguous
// regardless of the configured public base URL.
func imageKeyFromURL(url string) (string, bool) {
	idx := strings.Index(url, "/products/")
	if idx < 0 {
		return "", false
	}

	return url[idx+1:], true
}

// uploadImages pushes each file to the image host and collects the public URLs.
func (srv *catalogService) uploadImages(ctx context.Context, productID uuid.UUID, offset int, images []usecase.ImageUpload) ([]string, error) {
	urls := make([]string, 0, len(images))
	for i, image := range images {
		if image.Body == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("empty image upload")
		}

		key := fmt.Sprintf("products/%s/%d%s", productID, offset+i, sanitizedExt(image.FileName))
		url, err := srv.imageStore.Upload(ctx, key, image.ContentType, image.Body)
		if err != nil {
			srv.log(ctx).Error("Product image upload failed",
				slog.Any("productID", productID), slog.Int("index", offset+i), slog.Any("error", err))

			return nil, domainerrors.ErrUpstreamImageHost.WrapMessage("product image upload failed")
		}
		urls = append(urls, url)
	}

	return urls, nil
}
