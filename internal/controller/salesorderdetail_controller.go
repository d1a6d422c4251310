package controller

import (
	"net/http"

	"github.com/dgarciadev/adventureworks-api/internal/repository"
	"github.com/dgarciadev/adventureworks-api/internal/response"
)

type SalesOrderDetailController struct {
	Repo repository.SalesOrderDetailRepositoryInterface
}

func (c *SalesOrderDetailController) TopProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.Repo.TopSellingProducts()
	if err != nil {
		response.Fail(w, "Error al obtener productos más vendidos", err)
		return
	}

	response.JSON(w, http.StatusOK, "Top 10 productos más vendidos obtenido correctamente", products)
}
