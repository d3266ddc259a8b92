package ui

import (
	"net/http"

	"siparis/domain/core"
	"siparis/domain/order"
	apperrors "siparis/internal/errors"
	"siparis/ui/middleware"

	"github.com/gin-gonic/gin"
)

type submitRequest struct {
	Products []order.LineItem `json:"products"`
}

func (s *Server) handleSubmitProducts(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest("products must be an array", err))
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	result, err := s.orders.Submit(c.Request.Context(), principal, req.Products)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Products added successfully.",
		"products": result.Orders,
		"summary":  result.Summary,
	})
}

func (s *Server) handleListProducts(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	orders, err := s.orders.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleGetProduct(c *gin.Context) {
	id, err := core.ParseOrderID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	o, err := s.orders.Get(c.Request.Context(), principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	id, err := core.ParseOrderID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var upd order.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, apperrors.BadRequest("malformed update", err))
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	o, err := s.orders.Update(c.Request.Context(), principal, id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully.",
		"product": o,
	})
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	id, err := core.ParseOrderID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFrom(c)
	if err := s.orders.Delete(c.Request.Context(), principal, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
}
