// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// ResourceRouteHandler defines the interface for resource handlers.
// All CRUD resource handlers must implement these methods.
type ResourceRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterResourceRoutes registers standard CRUD routes for a resource.
//
// Usage:
//
//	service := expense.NewService(store.Expenses, store.TxManager, nil)
//	handler := handlers.NewExpenseHandler(baseHandler, service)
//	RegisterResourceRoutes(api.Group("/expenses"), handler)
func RegisterResourceRoutes(group *gin.RouterGroup, handler ResourceRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}
