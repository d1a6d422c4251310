package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dgarciadev/adventureworks-api/internal/model"
	"github.com/dgarciadev/adventureworks-api/internal/repository"
	"github.com/dgarciadev/adventureworks-api/internal/response"
)

type ProductController struct {
	Repo repository.ProductRepositoryInterface
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sortBy")
	sortDirection := r.URL.Query().Get("sortDirection")
	searchTerm := r.URL.Query().Get("searchTerm")
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("categoryId"))

	products, err := c.Repo.List(sortBy, sortDirection, categoryID, searchTerm)
	if err != nil {
		response.Fail(w, "Error al obtener productos", err)
		return
	}

	response.JSON(w, http.StatusOK, "Productos obtenidos correctamente", products)
}

func (c *ProductController) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Repo.ListCategories()
	if err != nil {
		response.Fail(w, "Error al obtener categorías", err)
		return
	}

	response.JSON(w, http.StatusOK, "Categorías obtenidas correctamente", categories)
}

func (c *ProductController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.JSON(w, http.StatusBadRequest, "ID de producto inválido", nil)
		return
	}

	product, err := c.Repo.GetByID(id)
	if err != nil {
		response.Fail(w, "Error al obtener producto", err)
		return
	}
	if product == nil {
		response.JSON(w, http.StatusNotFound, "Producto no encontrado", nil)
		return
	}

	response.JSON(w, http.StatusOK, "Producto obtenido correctamente", product)
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil && err != io.EOF {
		response.JSON(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
		return
	}

	missing := missingProductFields(&product)
	if len(missing) > 0 {
		response.JSON(w, http.StatusBadRequest, "Faltan datos requeridos",
			"Campos obligatorios: "+strings.Join(missing, ", "))
		return
	}

	if err := c.Repo.Create(&product); err != nil {
		response.Fail(w, "Error al crear producto", err)
		return
	}

	response.JSON(w, http.StatusCreated, "Producto creado correctamente", product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, idErr := strconv.Atoi(chi.URLParam(r, "id"))

	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil && err != io.EOF {
		response.JSON(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
		return
	}

	missing := []string{}
	if idErr != nil || id == 0 {
		missing = append(missing, "id")
	}
	missing = append(missing, missingProductFields(&product)...)
	if len(missing) > 0 {
		response.JSON(w, http.StatusBadRequest, "Faltan datos requeridos",
			"Campos obligatorios: "+strings.Join(missing, ", "))
		return
	}

	product.ProductID = id
	if err := c.Repo.Update(&product); err != nil {
		response.Fail(w, "Error al actualizar producto", err)
		return
	}

	response.JSON(w, http.StatusOK, "Producto actualizado correctamente",
		map[string]interface{}{"productId": id})
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		response.JSON(w, http.StatusBadRequest, "Falta el ID del producto", "El ID es obligatorio")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.JSON(w, http.StatusBadRequest, "ID de producto inválido", nil)
		return
	}

	if err := c.Repo.Delete(id); err != nil {
		response.Fail(w, "Error al eliminar producto", err)
		return
	}

	response.JSON(w, http.StatusOK, "Producto eliminado correctamente",
		map[string]interface{}{"id": id})
}

func missingProductFields(p *model.Product) []string {
	missing := []string{}
	if p.Name == "" {
		missing = append(missing, "Name")
	}
	if p.ProductNumber == "" {
		missing = append(missing, "ProductNumber")
	}
	return missing
}
