package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunwaytravel/tripsearch/api/handlers"
	"github.com/sunwaytravel/tripsearch/config"
	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
	"github.com/sunwaytravel/tripsearch/services/holidayindex"
	"github.com/sunwaytravel/tripsearch/validation"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, cfg *config.Config, catalogStore *catalog.Store, indexService *holidayindex.Service, validator *validation.Validator) {
	router.GET("/health", health())

	handlers.SetupSearch(router, logger, cfg, catalogStore, validator)
	handlers.SetupFilters(router, logger, catalogStore, indexService, validator)
	handlers.SetupIndex(router, logger, catalogStore, indexService)

}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter() *gin.Engine {
	router := gin.Default()
	router.UseRawPath = true
	router.Use(_CORSMiddleware())
	router.Use(gin.Recovery())

	return router
}
