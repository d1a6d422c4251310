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

type CustomerController struct {
	Repo repository.CustomerRepositoryInterface
}

func (c *CustomerController) List(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sortBy")
	sortDirection := r.URL.Query().Get("sortDirection")
	searchTerm := r.URL.Query().Get("searchTerm")

	customers, err := c.Repo.List(sortBy, sortDirection, searchTerm)
	if err != nil {
		response.Fail(w, "Error al obtener clientes", err)
		return
	}

	response.JSON(w, http.StatusOK, "Clientes obtenidos correctamente", customers)
}

func (c *CustomerController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.JSON(w, http.StatusBadRequest, "ID de cliente inválido", nil)
		return
	}

	customer, err := c.Repo.GetByID(id)
	if err != nil {
		response.Fail(w, "Error al obtener cliente", err)
		return
	}
	if customer == nil {
		response.JSON(w, http.StatusNotFound, "Cliente no encontrado", nil)
		return
	}

	response.JSON(w, http.StatusOK, "Cliente obtenido correctamente", customer)
}

func (c *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	var customer model.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil && err != io.EOF {
		response.JSON(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
		return
	}

	missing := missingCustomerFields(&customer)
	if len(missing) > 0 {
		response.JSON(w, http.StatusBadRequest, "Faltan datos requeridos",
			"Campos obligatorios: "+strings.Join(missing, ", "))
		return
	}

	if err := c.Repo.Create(&customer); err != nil {
		response.Fail(w, "Error al crear cliente", err)
		return
	}

	response.JSON(w, http.StatusCreated, "Cliente creado correctamente", customer)
}

func (c *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	id, idErr := strconv.Atoi(chi.URLParam(r, "id"))

	var customer model.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil && err != io.EOF {
		response.JSON(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
		return
	}

	missing := []string{}
	if idErr != nil || id == 0 {
		missing = append(missing, "id")
	}
	missing = append(missing, missingCustomerFields(&customer)...)
	if len(missing) > 0 {
		response.JSON(w, http.StatusBadRequest, "Faltan datos requeridos",
			"Campos obligatorios: "+strings.Join(missing, ", "))
		return
	}

	customer.CustomerID = id
	if err := c.Repo.Update(&customer); err != nil {
		response.Fail(w, "Error al actualizar cliente", err)
		return
	}

	response.JSON(w, http.StatusOK, "Cliente actualizado correctamente",
		map[string]interface{}{"customerId": id})
}

func (c *CustomerController) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		response.JSON(w, http.StatusBadRequest, "Falta el ID del cliente", "El ID es obligatorio")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.JSON(w, http.StatusBadRequest, "ID de cliente inválido", nil)
		return
	}

	if err := c.Repo.Delete(id); err != nil {
		response.Fail(w, "Error al eliminar cliente", err)
		return
	}

	response.JSON(w, http.StatusOK, "Cliente eliminado correctamente",
		map[string]interface{}{"id": id})
}

func missingCustomerFields(c *model.Customer) []string {
	missing := []string{}
	if c.FirstName == "" {
		missing = append(missing, "FirstName")
	}
	if c.LastName == "" {
		missing = append(missing, "LastName")
	}
	if c.EmailAddress == "" {
		missing = append(missing, "EmailAddress")
	}
	return missing
}
