package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minishop/internal/models"
)

type createOrderRequest struct {
	ShippingAddress string `json:"shippingAddress" binding:"required"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (app *application) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := app.store.PlaceOrder(c.Request.Context(), app.currentUser(c).ID, req.ShippingAddress)
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.success(c, http.StatusCreated, gin.H{"order": order})
}

func (app *application) myOrders(c *gin.Context) {
	orders, err := app.store.ListOrdersByUser(c.Request.Context(), app.currentUser(c).ID)
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.successList(c, len(orders), gin.H{"orders": orders})
}

func (app *application) allOrders(c *gin.Context) {
	orders, err := app.store.ListAllOrders(c.Request.Context())
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.successList(c, len(orders), gin.H{"orders": orders})
}

func (app *application) showOrder(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}

	order, err := app.store.GetOrder(c.Request.Context(), id)
	if err != nil {
		app.storeError(c, err)
		return
	}

	user := app.currentUser(c)
	if order.UserID != user.ID && !user.IsAdmin() {
		app.fail(c, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}
	app.success(c, http.StatusOK, gin.H{"order": order})
}

func (app *application) updateOrderStatus(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	next := models.OrderStatus(req.Status)
	if !next.Valid() {
		app.fail(c, http.StatusBadRequest, "invalid order status")
		return
	}
	// Cancellation returns stock, so it has its own endpoint.
	if next == models.StatusCancelled {
		app.fail(c, http.StatusBadRequest, "use the cancel endpoint to cancel an order")
		return
	}

	order, err := app.store.UpdateOrderStatus(c.Request.Context(), id, next)
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.success(c, http.StatusOK, gin.H{"order": order})
}

func (app *application) cancelOrder(c *gin.Context) {
	id, ok := parseObjectID(c, c.Param("id"))
	if !ok {
		return
	}

	user := app.currentUser(c)
	order, err := app.store.CancelOrder(c.Request.Context(), id, user.ID, user.IsAdmin())
	if err != nil {
		app.storeError(c, err)
		return
	}
	app.success(c, http.StatusOK, gin.H{"order": order})
}
