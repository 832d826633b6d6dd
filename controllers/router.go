package controllers

import (
	"github.com/gin-gonic/gin"
)

type Router struct {
	HealthController    *HealthController
	SplitController     *SplitController
	DocumentsController *DocumentsController
}

func (r Router) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", r.HealthController.Status)

	router.POST("/split", r.SplitController.Split)

	router.POST("/documents", r.DocumentsController.Create)
	router.GET("/documents", r.DocumentsController.List)
	router.GET("/documents/:uuid", r.DocumentsController.Get)
	router.GET("/documents/:uuid/chunks", r.DocumentsController.GetChunks)
}
