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

// testOrderCount is how many random orders the insert-orders endpoint seeds
// per call.
const testOrderCount = 50

type SalesOrderController struct {
	Repo repository.SalesOrderRepositoryInterface
}

func (c *SalesOrderController) List(w http.ResponseWriter, r *http.Request) {
	customerID, _ := strconv.Atoi(r.URL.Query().Get("customerId"))

	orders, err := c.Repo.List(customerID)
	if err != nil {
		response.Fail(w, "Error al obtener pedidos", err)
		return
	}

	response.JSON(w, http.StatusOK, "Pedidos obtenidos correctamente", orders)
}

func (c *SalesOrderController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.JSON(w, http.StatusBadRequest, "ID de pedido inválido", nil)
		return
	}

	order, err := c.Repo.GetByID(id)
	if err != nil {
		response.Fail(w, "Error al obtener pedido", err)
		return
	}
	if order == nil {
		response.JSON(w, http.StatusNotFound, "Pedido no encontrado", nil)
		return
	}

	response.JSON(w, http.StatusOK, "Pedido obtenido correctamente", order)
}

func (c *SalesOrderController) Create(w http.ResponseWriter, r *http.Request) {
	var order model.SalesOrderHeader
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil && err != io.EOF {
		response.JSON(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
		return
	}

	missing := missingSalesOrderFields(&order)
	if len(missing) > 0 {
		response.JSON(w, http.StatusBadRequest, "Faltan datos requeridos",
			"Campos obligatorios: "+strings.Join(missing, ", "))
		return
	}

	if err := c.Repo.Create(&order); err != nil {
		response.Fail(w, "Error al crear pedido", err)
		return
	}

	response.JSON(w, http.StatusCreated, "Pedido creado correctamente", order)
}

func (c *SalesOrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, idErr := strconv.Atoi(chi.URLParam(r, "id"))

	var order model.SalesOrderHeader
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil && err != io.EOF {
		response.JSON(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil)
		return
	}

	missing := []string{}
	if idErr != nil || id == 0 {
		missing = append(missing, "id")
	}
	missing = append(missing, missingSalesOrderFields(&order)...)
	if len(missing) > 0 {
		response.JSON(w, http.StatusBadRequest, "Faltan datos requeridos",
			"Campos obligatorios: "+strings.Join(missing, ", "))
		return
	}

	order.SalesOrderID = id
	if err := c.Repo.Update(&order); err != nil {
		response.Fail(w, "Error al actualizar pedido", err)
		return
	}

	response.JSON(w, http.StatusOK, "Pedido actualizado correctamente",
		map[string]interface{}{"salesOrderId": id})
}

func (c *SalesOrderController) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		response.JSON(w, http.StatusBadRequest, "Falta el ID del pedido", "El ID es obligatorio")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.JSON(w, http.StatusBadRequest, "ID de pedido inválido", nil)
		return
	}

	if err := c.Repo.Delete(id); err != nil {
		response.Fail(w, "Error al eliminar pedido", err)
		return
	}

	response.JSON(w, http.StatusOK, "Pedido eliminado correctamente",
		map[string]interface{}{"id": id})
}

func (c *SalesOrderController) MonthlySales(w http.ResponseWriter, r *http.Request) {
	monthly, err := c.Repo.MonthlySales()
	if err != nil {
		response.Fail(w, "Error al obtener el reporte mensual de ventas", err)
		return
	}

	response.JSON(w, http.StatusOK, "Reporte mensual de ventas obtenido correctamente", monthly)
}

func (c *SalesOrderController) SalesByCategory(w http.ResponseWriter, r *http.Request) {
	sales, err := c.Repo.SalesByCategory()
	if err != nil {
		response.Fail(w, "Error al obtener ventas por categoría", err)
		return
	}

	response.JSON(w, http.StatusOK, "Ventas por categoría obtenidas correctamente", sales)
}

func (c *SalesOrderController) AverageShippingTime(w http.ResponseWriter, r *http.Request) {
	avg, err := c.Repo.AverageShippingTime()
	if err != nil {
		response.Fail(w, "Error al obtener el tiempo promedio de envío", err)
		return
	}

	response.JSON(w, http.StatusOK, "Tiempo promedio de envío obtenido correctamente", avg)
}

func (c *SalesOrderController) TopSalesMonth(w http.ResponseWriter, r *http.Request) {
	top, err := c.Repo.TopSalesMonth()
	if err != nil {
		response.Fail(w, "Error al obtener el mes con mayores ventas", err)
		return
	}

	response.JSON(w, http.StatusOK, "Mes con mayores ventas obtenido correctamente", top)
}

func (c *SalesOrderController) InsertTestOrders(w http.ResponseWriter, r *http.Request) {
	inserted, err := c.Repo.SeedTestOrders(testOrderCount)
	if err != nil {
		response.Fail(w, "Error al insertar órdenes de prueba", err)
		return
	}

	response.JSON(w, http.StatusCreated, "Órdenes de prueba insertadas correctamente",
		map[string]interface{}{"inserted": inserted})
}

func missingSalesOrderFields(o *model.SalesOrderHeader) []string {
	missing := []string{}
	if o.RevisionNumber == 0 {
		missing = append(missing, "RevisionNumber")
	}
	if o.OrderDate.IsZero() {
		missing = append(missing, "OrderDate")
	}
	return missing
}
