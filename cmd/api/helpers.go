package main

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"minishop/internal/models"
)

func (app *application) success(c *gin.Context, code int, data gin.H) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func (app *application) successList(c *gin.Context, results int, data gin.H) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "results": results, "data": data})
}

func (app *application) fail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"status": "fail", "message": message})
}

func (app *application) serverError(c *gin.Context, err error) {
	app.logger.WithError(err).
		WithField("request_id", c.GetString(requestIDKey)).
		WithField("path", c.Request.URL.Path).
		Error("internal error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "something went wrong",
	})
}

// storeError maps domain errors onto the response taxonomy. Anything it
// does not recognize is an internal error and stays unexposed.
func (app *application) storeError(c *gin.Context, err error) {
	var (
		insufficient *models.InsufficientStockError
		transition   *models.InvalidTransitionError
	)
	switch {
	case stderrors.Is(err, models.ErrProductNotFound),
		stderrors.Is(err, models.ErrOrderNotFound),
		stderrors.Is(err, models.ErrCartNotFound),
		stderrors.Is(err, models.ErrUserNotFound):
		app.fail(c, http.StatusNotFound, err.Error())
	case stderrors.Is(err, models.ErrInvalidCredentials):
		app.fail(c, http.StatusUnauthorized, err.Error())
	case stderrors.Is(err, models.ErrForbidden):
		app.fail(c, http.StatusForbidden, err.Error())
	case stderrors.Is(err, models.ErrDuplicateEmail),
		stderrors.Is(err, models.ErrEmptyCart),
		stderrors.Is(err, models.ErrOrderNotPending),
		stderrors.Is(err, models.ErrInvalidQuantity):
		app.fail(c, http.StatusBadRequest, err.Error())
	case stderrors.As(err, &insufficient), stderrors.As(err, &transition):
		app.fail(c, http.StatusBadRequest, err.Error())
	case stderrors.Is(err, models.ErrStatusConflict):
		app.fail(c, http.StatusConflict, err.Error())
	default:
		app.serverError(c, err)
	}
}

func parseObjectID(c *gin.Context, raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"status":  "fail",
			"message": "invalid id",
		})
		return primitive.NilObjectID, false
	}
	return id, true
}

func (app *application) healthcheck(c *gin.Context) {
	if err := app.store.Ping(c.Request.Context()); err != nil {
		app.serverError(c, err)
		return
	}
	app.success(c, http.StatusOK, gin.H{"status": "up"})
}
