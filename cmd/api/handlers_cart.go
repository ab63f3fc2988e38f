package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

func (app *application) showCart(c *gin.Context) {
	cart, err := app.store.GetOrCreateCart(c.Request.Context(), app.currentUser(c).ID)
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.success(c, http.StatusOK, gin.H{"cart": cart})
}

func (app *application) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.fail(c, http.StatusBadRequest, err.Error())
		return
	}
	productID, ok := parseObjectID(c, req.ProductID)
	if !ok {
		return
	}

	cart, err := app.store.AddToCart(c.Request.Context(), app.currentUser(c).ID, productID, req.Quantity)
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.success(c, http.StatusOK, gin.H{"cart": cart})
}

func (app *application) removeFromCart(c *gin.Context) {
	productID, ok := parseObjectID(c, c.Param("productId"))
	if !ok {
		return
	}

	cart, err := app.store.RemoveFromCart(c.Request.Context(), app.currentUser(c).ID, productID)
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.success(c, http.StatusOK, gin.H{"cart": cart})
}
