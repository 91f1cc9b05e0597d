// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	adhandler "adboard_backend/internal/feature/ads/transport/handler"
	userhandler "adboard_backend/internal/feature/users/transport/handler"
	"adboard_backend/internal/platform/http/handler"
)

// NewRouter wires the resource handlers into a gin engine. Creation posts
// to the collection path; get, patch and delete address a single entity
// by id.
func NewRouter(users *userhandler.UserHandler, ads *adhandler.AdvertisementHandler) *gin.Engine {
	r := gin.Default()

	// liveness probe
	r.GET("/healthz", handler.Health)

	r.POST("/user", users.Create)
	r.GET("/user/:id", users.Get)
	r.PATCH("/user/:id", users.Patch)
	r.DELETE("/user/:id", users.Delete)

	r.POST("/advertisement", ads.Create)
	r.GET("/advertisement/:id", ads.Get)
	r.PATCH("/advertisement/:id", ads.Patch)
	r.DELETE("/advertisement/:id", ads.Delete)

	return r
}
