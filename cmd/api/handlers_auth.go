package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"minishop/internal/auth"
	"minishop/internal/models"
)

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"omitempty,oneof=customer admin"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (app *application) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password, app.cfg.BcryptCost)
	if err != nil {
		app.serverError(c, err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := app.store.CreateUser(c.Request.Context(), user); err != nil {
		app.storeError(c, err)
		return
	}

	token, err := app.tokens.Issue(user.ID.Hex())
	if err != nil {
		app.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"token":  token,
		"data":   gin.H{"user": user},
	})
}

func (app *application) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := app.store.Authenticate(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		app.storeError(c, err)
		return
	}

	token, err := app.tokens.Issue(user.ID.Hex())
	if err != nil {
		app.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  token,
		"data":   gin.H{"user": user},
	})
}

func (app *application) me(c *gin.Context) {
	app.success(c, http.StatusOK, gin.H{"user": app.currentUser(c)})
}
