package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog captures the inputs handlers hand to the catalog usecase.
type stubCatalog struct {
	usecase.CatalogUsecase
	addInput    usecase.AddProductInput
	updateInput usecase.UpdateProductInput
}

func (s *stubCatalog) AddProduct(_ context.Context, input usecase.AddProductInput) (*entity.Product, error) {
	s.addInput = input

	return &entity.Product{ID: uuid.New(), Name: input.Name}, nil
}

func (s *stubCatalog) UpdateProduct(_ context.Context, input usecase.UpdateProductInput) (*entity.Product, error) {
	s.updateInput = input

	return &entity.Product{ID: input.ProductID}, nil
}

// newProductFormContext builds an echo context around a multipart request the
// way the storefront client sends it: a productData field plus image parts.
func newProductFormContext(t *testing.T, target, productData string, imageNames ...string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if productData != "" {
		require.NoError(t, writer.WriteField("productData", productData))
	}
	for _, name := range imageNames {
		part, err := writer.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestProductHandler_Add_ParsesProductDataField(t *testing.T) {
	catalog := &stubCatalog{}
	handler := NewProductHandler(catalog, nil)

	// Browser clients serialize prices as input strings; offerPrice stays a
	// number here to cover both encodings.
	productData := `{
		"name": "Crew Socks",
		"description": ["soft", "stretchy"],
		"detailedDescription": "Everyday crew socks.",
		"category": "MEN",
		"price": "100",
		"offerPrice": 80,
		"sizes": ["M", "L"]
	}`
	c, rec := newProductFormContext(t, "/api/product/add", productData, "front.jpg", "back.jpg")

	require.NoError(t, handler.Add(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "Crew Socks", catalog.addInput.Name)
	assert.Equal(t, []string{"soft", "stretchy"}, catalog.addInput.Description)
	assert.Equal(t, "Everyday crew socks.", catalog.addInput.DetailedDescription)
	assert.Equal(t, "MEN", catalog.addInput.Category)
	assert.InDelta(t, 100, catalog.addInput.Price, 0.0001)
	assert.InDelta(t, 80, catalog.addInput.OfferPrice, 0.0001)
	assert.Equal(t, []string{"M", "L"}, catalog.addInput.Sizes)
	assert.Len(t, catalog.addInput.Images, 2)
	assert.Equal(t, "front.jpg", catalog.addInput.Images[0].FileName)
}

func TestProductHandler_Add_FlatFieldFallback(t *testing.T) {
	catalog := &stubCatalog{}
	handler := NewProductHandler(catalog, nil)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("name", "Desk Lamp"))
	require.NoError(t, writer.WriteField("category", "Home"))
	require.NoError(t, writer.WriteField("price", "45.5"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/product/add", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.Add(c))

	assert.Equal(t, "Desk Lamp", catalog.addInput.Name)
	assert.Equal(t, "Home", catalog.addInput.Category)
	assert.InDelta(t, 45.5, catalog.addInput.Price, 0.0001)
	// offerPrice defaults to price when omitted.
	assert.InDelta(t, 45.5, catalog.addInput.OfferPrice, 0.0001)
}

func TestProductHandler_Add_MalformedProductData(t *testing.T) {
	handler := NewProductHandler(&stubCatalog{}, nil)

	c, _ := newProductFormContext(t, "/api/product/add", `{not json`)

	err := handler.Add(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductHandler_Update_PartialProductData(t *testing.T) {
	catalog := &stubCatalog{}
	handler := NewProductHandler(catalog, nil)
	productID := uuid.New()

	c, rec := newProductFormContext(t, "/api/product/"+productID.String(),
		`{"name": "Renamed", "offerPrice": "72"}`)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, productID, catalog.updateInput.ProductID)
	require.NotNil(t, catalog.updateInput.Name)
	assert.Equal(t, "Renamed", *catalog.updateInput.Name)
	require.NotNil(t, catalog.updateInput.OfferPrice)
	assert.InDelta(t, 72, *catalog.updateInput.OfferPrice, 0.0001)

	// Absent fields stay nil so the stored values survive the merge.
	assert.Nil(t, catalog.updateInput.Price)
	assert.Nil(t, catalog.updateInput.Category)
	assert.Nil(t, catalog.updateInput.Description)
}
