package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgarciadev/adventureworks-api/internal/controller"
	apperrors "github.com/dgarciadev/adventureworks-api/internal/errors"
	"github.com/dgarciadev/adventureworks-api/internal/model"
)

type mockProductRepo struct {
	products   map[int]model.Product
	categories []model.ProductCategory

	lastSortBy        string
	lastSortDirection string
	lastCategoryID    int
	lastSearchTerm    string
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: map[int]model.Product{}}
}

func (m *mockProductRepo) List(sortBy, sortDirection string, categoryID int, searchTerm string) ([]model.Product, error) {
	m.lastSortBy = sortBy
	m.lastSortDirection = sortDirection
	m.lastCategoryID = categoryID
	m.lastSearchTerm = searchTerm
	return []model.Product{}, nil
}

func (m *mockProductRepo) ListCategories() ([]model.ProductCategory, error) {
	return m.categories, nil
}

func (m *mockProductRepo) GetByID(id int) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockProductRepo) Create(p *model.Product) error {
	for _, existing := range m.products {
		if existing.Name == p.Name {
			return apperrors.NewConflict("El producto con Name: '%s' ya existe", p.Name)
		}
	}
	p.ProductID = len(m.products) + 1
	m.products[p.ProductID] = *p
	return nil
}

func (m *mockProductRepo) Update(p *model.Product) error {
	if _, ok := m.products[p.ProductID]; !ok {
		return apperrors.NewNotFound("El producto con ID %d no existe en la base de datos", p.ProductID)
	}
	m.products[p.ProductID] = *p
	return nil
}

func (m *mockProductRepo) Delete(id int) error {
	if _, ok := m.products[id]; !ok {
		return apperrors.NewNotFound("El producto no existe o ya fue eliminado")
	}
	delete(m.products, id)
	return nil
}

func newProductRouter(repo *mockProductRepo) *chi.Mux {
	ctrl := &controller.ProductController{Repo: repo}

	r := chi.NewRouter()
	r.Get("/api/products", ctrl.List)
	r.Get("/api/products/categories", ctrl.ListCategories)
	r.Get("/api/products/{id}", ctrl.GetByID)
	r.Post("/api/products", ctrl.Create)
	r.Put("/api/products/{id}", ctrl.Update)
	r.Delete("/api/products/{id}", ctrl.Delete)
	return r
}

func TestCreateProductMissingFields(t *testing.T) {
	router := newProductRouter(newMockProductRepo())

	resp, env := doRequest(t, router, http.MethodPost, "/api/products", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var result string
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "Campos obligatorios: Name, ProductNumber", result)
}

func TestListProductsForwardsFilters(t *testing.T) {
	repo := newMockProductRepo()
	router := newProductRouter(repo)

	resp, env := doRequest(t, router, http.MethodGet,
		"/api/products?sortBy=listprice&sortDirection=desc&categoryId=5&searchTerm=Mountain", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Productos obtenidos correctamente", env.Message)
	assert.Equal(t, "listprice", repo.lastSortBy)
	assert.Equal(t, "desc", repo.lastSortDirection)
	assert.Equal(t, 5, repo.lastCategoryID)
	assert.Equal(t, "Mountain", repo.lastSearchTerm)
}

func TestListProductCategories(t *testing.T) {
	repo := newMockProductRepo()
	repo.categories = []model.ProductCategory{
		{ProductCategoryID: 5, Name: "Mountain Bikes"},
		{ProductCategoryID: 6, Name: "Road Bikes"},
	}
	router := newProductRouter(repo)

	resp, env := doRequest(t, router, http.MethodGet, "/api/products/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Categorías obtenidas correctamente", env.Message)

	var categories []model.ProductCategory
	require.NoError(t, json.Unmarshal(env.Result, &categories))
	assert.Len(t, categories, 2)
}

func TestCreateProductDuplicateNameReturnsConflict(t *testing.T) {
	router := newProductRouter(newMockProductRepo())

	body := []byte(`{"Name":"HL Road Frame","ProductNumber":"FR-R92B-58"}`)
	resp, _ := doRequest(t, router, http.MethodPost, "/api/products", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, router, http.MethodPost, "/api/products", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDeleteProductNotFound(t *testing.T) {
	router := newProductRouter(newMockProductRepo())

	resp, env := doRequest(t, router, http.MethodDelete, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 404, env.Status)
}
