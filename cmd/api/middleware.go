package main

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/time/rate"

	"minishop/internal/models"
)

const (
	requestIDKey   = "request_id"
	currentUserKey = "current_user"
)

func (app *application) recoverPanic() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		app.logger.WithField("panic", recovered).
			WithField("request_id", c.GetString(requestIDKey)).
			Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "something went wrong",
		})
	})
}

func (app *application) requestID(c *gin.Context) {
	id := uuid.NewString()
	c.Set(requestIDKey, id)
	c.Header("X-Request-ID", id)
	c.Next()
}

func (app *application) logRequest(c *gin.Context) {
	start := time.Now()
	c.Next()
	app.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"duration":   time.Since(start).String(),
	}).Info("request")
}

func (app *application) measure(c *gin.Context) {
	if app.metrics == nil {
		c.Next()
		return
	}
	start := time.Now()
	c.Next()
	handler := c.FullPath()
	if handler == "" {
		handler = "unmatched"
	}
	app.metrics.Record(handler, c.Writer.Status(), time.Since(start).Seconds())
}

func (app *application) rateLimit() gin.HandlerFunc {
	var (
		mu       sync.Mutex
		visitors = make(map[string]*rate.Limiter)
	)
	return func(c *gin.Context) {
		mu.Lock()
		limiter, ok := visitors[c.ClientIP()]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(app.cfg.RateLimitRPS), app.cfg.RateLimitBurst)
			visitors[c.ClientIP()] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			app.fail(c, http.StatusTooManyRequests, "too many requests, please try again later")
			return
		}
		c.Next()
	}
}

// requireAuth resolves the acting user from the Authorization header and
// rejects the request when the token is missing, invalid, expired, or
// belongs to a deleted account.
func (app *application) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		app.fail(c, http.StatusUnauthorized, "you are not logged in, please log in to get access")
		return
	}

	subject, err := app.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		app.fail(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	userID, err := primitive.ObjectIDFromHex(subject)
	if err != nil {
		app.fail(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	user, err := app.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		app.fail(c, http.StatusUnauthorized, "the user belonging to this token no longer exists")
		return
	}

	c.Set(currentUserKey, user)
	c.Next()
}

func (app *application) requireAdmin(c *gin.Context) {
	if !app.currentUser(c).IsAdmin() {
		app.fail(c, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}
	c.Next()
}

func (app *application) currentUser(c *gin.Context) *models.User {
	return c.MustGet(currentUserKey).(*models.User)
}
