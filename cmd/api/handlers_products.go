package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minishop/internal/models"
)

type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Category    string   `json:"category" binding:"required"`
	Images      []string `json:"images"`
}

type updateProductRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1"`
	Description *string   `json:"description" binding:"omitempty,min=1"`
	Price       *float64  `json:"price" binding:"omitempty,gte=0"`
	Stock       *int      `json:"stock" binding:"omitempty,gte=0"`
	Category    *string   `json:"category" binding:"omitempty,min=1"`
	Images      *[]string `json:"images"`
}

func (app *application) listProducts(c *gin.Context) {
	products, err := app.store.ListProducts(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.successList(c, len(products), gin.H{"products": products})
}

func (app *application) showProduct(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	product, err := app.store.GetProduct(c.Request.Context(), id)
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.success(c, http.StatusOK, gin.H{"product": product})
}

func (app *application) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Images:      req.Images,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if err := app.store.CreateProduct(c.Request.Context(), product); err != nil {
		app.storeError(c, err)
		return
	}
	app.success(c, http.StatusCreated, gin.H{"product": product})
}

func (app *application) updateProduct(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := app.store.UpdateProduct(c.Request.Context(), id, models.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Images:      req.Images,
	})
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.success(c, http.StatusOK, gin.H{"product": product})
}

func (app *application) deleteProduct(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}
	if err := app.store.DeleteProduct(c.Request.Context(), id); err != nil {
		app.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
