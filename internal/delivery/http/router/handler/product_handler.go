package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog and rating handlers.
type ProductHandler struct {
	catalog usecase.CatalogUsecase
	ratings usecase.RatingUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(catalog usecase.CatalogUsecase, ratings usecase.RatingUsecase) *ProductHandler {
	return &ProductHandler{catalog: catalog, ratings: ratings}
}

// Add creates a product from a multipart form. The product document arrives
// as a JSON-encoded "productData" field (flat form fields are accepted as a
// fallback) and images as file parts under the "images" key.
func (h *ProductHandler) Add(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return domainerrors.ErrValidationFailed
	}

	data, err := parseProductData(form)
	if err != nil {
		return errors.WithStack(err)
	}

	input := usecase.AddProductInput{
		Description: data.Description,
		Sizes:       data.Sizes,
	}
	if data.Name != nil {
		input.Name = *data.Name
	}
	if data.DetailedDescription != nil {
		input.DetailedDescription = *data.DetailedDescription
	}
	if data.Category != nil {
		input.Category = *data.Category
	}
	if data.Price != nil {
		input.Price = float64(*data.Price)
	}
	input.OfferPrice = input.Price
	if data.OfferPrice != nil {
		input.OfferPrice = float64(*data.OfferPrice)
	}

	images, closeImages, err := openFormImages(c, "images")
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeImages()
	input.Images = images

	product, err := h.catalog.AddProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Product added", response.Payload{"product": product})
}

// List returns the whole catalog, newest first.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"products": products})
}

// Get returns a single product with its ratings expanded.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"product": product})
}

// Update applies partial product changes from a multipart form carrying the
// same "productData" document as Add. New image parts are appended to the
// existing image list.
func (h *ProductHandler) Update(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	form, err := c.FormParams()
	if err != nil {
		return domainerrors.ErrValidationFailed
	}

	data, err := parseProductData(form)
	if err != nil {
		return errors.WithStack(err)
	}

	input := usecase.UpdateProductInput{
		ProductID:           productID,
		Name:                data.Name,
		Description:         data.Description,
		DetailedDescription: data.DetailedDescription,
		Category:            data.Category,
		Sizes:               data.Sizes,
	}
	if data.Price != nil {
		price := float64(*data.Price)
		input.Price = &price
	}
	if data.OfferPrice != nil {
		offerPrice := float64(*data.OfferPrice)
		input.OfferPrice = &offerPrice
	}

	images, closeImages, err := openFormImages(c, "images")
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeImages()
	input.Images = images

	product, err := h.catalog.UpdateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product updated", response.Payload{"product": product})
}

// Delete removes a product and its ratings.
func (h *ProductHandler) Delete(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product removed", nil)
}

type changeStockRequest struct {
	ProductID uuid.UUID `json:"productId"`
	InStock   bool      `json:"inStock"`
}

// ChangeStock toggles the manually managed stock flag.
func (h *ProductHandler) ChangeStock(c echo.Context) error {
	var req changeStockRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	if err := h.catalog.ChangeStock(c.Request().Context(), req.ProductID, req.InStock); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Stock updated", nil)
}

// QR returns a PNG QR code deep-linking to the product page.
func (h *ProductHandler) QR(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.catalog.ProductQR(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type rateRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
}

// Rate upserts the current user's rating for a product.
func (h *ProductHandler) Rate(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	product, err := h.ratings.RateProduct(c.Request().Context(), usecase.RateProductInput{
		UserID:    userID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Review:    req.Review,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Rating saved", response.Payload{"product": product})
}

// Ratings lists a product's ratings with rater details, newest first.
func (h *ProductHandler) Ratings(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	ratings, err := h.ratings.ListRatings(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"ratings": ratings})
}

// CanRate reports whether the current user may rate the product.
func (h *ProductHandler) CanRate(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.ratings.CanRate(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := response.Payload{
		"canRate":  output.CanRate,
		"hasRated": output.HasRated,
	}
	if output.Existing != nil {
		payload["existingRating"] = output.Existing
	}

	return response.Success(c, http.StatusOK, "", payload)
}

// parseIDParam reads a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// productDataRequest mirrors the JSON document clients append to the form as
// "productData". Nil pointers distinguish absent fields on partial updates.
type productDataRequest struct {
	Name                *string    `json:"name"`
	Description         []string   `json:"description"`
	DetailedDescription *string    `json:"detailedDescription"`
	Category            *string    `json:"category"`
	Price               *formFloat `json:"price"`
	OfferPrice          *formFloat `json:"offerPrice"`
	Sizes               []string   `json:"sizes"`
}

// formFloat decodes a price that browser clients serialize either as a JSON
// number or as the raw string value of a form input.
type formFloat float64

func (f *formFloat) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*f = 0

		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrap(err, "price is not a number")
	}
	*f = formFloat(value)

	return nil
}

// parseProductData reads the "productData" JSON field, falling back to flat
// form fields for callers that post one value per field.
func parseProductData(form url.Values) (*productDataRequest, error) {
	if raw := form.Get("productData"); raw != "" {
		var data productDataRequest
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("productData must be a JSON document")
		}

		return &data, nil
	}

	data := &productDataRequest{}
	if form.Has("name") {
		name := form.Get("name")
		data.Name = &name
	}
	if form.Has("description") {
		data.Description = parseStringList(form.Get("description"))
	}
	if form.Has("detailedDescription") {
		detailed := form.Get("detailedDescription")
		data.DetailedDescription = &detailed
	}
	if form.Has("category") {
		category := form.Get("category")
		data.Category = &category
	}
	if form.Has("sizes") {
		data.Sizes = parseStringList(form.Get("sizes"))
	}
	for _, key := range []string{"price", "offerPrice"} {
		if !form.Has(key) {
			continue
		}
		value, err := strconv.ParseFloat(form.Get(key), 64)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(key + " must be a number")
		}
		price := formFloat(value)
		if key == "price" {
			data.Price = &price
		} else {
			data.OfferPrice = &price
		}
	}

	return data, nil
}

// parseStringList accepts either a JSON-encoded array or a single plain value.
func parseStringList(raw string) []string {
	if raw == "" {
		return nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}

	return []string{raw}
}

// openFormImages opens every file part under the given key. The returned
// cleanup func closes all opened files and must be called after the usecase
// has consumed the readers.
func openFormImages(c echo.Context, key string) ([]usecase.ImageUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, func() {}, nil
		}

		return nil, func() {}, domainerrors.ErrValidationFailed.WithDetails("invalid multipart form")
	}

	var (
		uploads []usecase.ImageUpload
		opened  []multipart.File
	)
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, header := range form.File[key] {
		file, err := header.Open()
		if err != nil {
			closeAll()

			return nil, func() {}, errors.Wrap(err, "failed to open uploaded image")
		}
		opened = append(opened, file)
		uploads = append(uploads, usecase.ImageUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
	}

	return uploads, closeAll, nil
}
