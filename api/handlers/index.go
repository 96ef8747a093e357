package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
	"github.com/sunwaytravel/tripsearch/services/holidayindex"
)

type IndexStatusResponse struct {
	Built    bool `json:"built"`
	Packages int  `json:"packages"`
}

type IndexRebuildResponse struct {
	RequestID       string `json:"request_id"`
	PackagesIndexed int    `json:"packages_indexed"`
}

func SetupIndex(router *gin.Engine, logger logger.Logger, catalogStore *catalog.Store, indexService *holidayindex.Service) {
	router.POST("/index", handleIndexRebuild(catalogStore, indexService, logger))
	router.GET("/index/status", handleIndexStatus(indexService))

}

func handleIndexRebuild(catalogStore *catalog.Store, indexService *holidayindex.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		logger.Info("rebuilding holiday keyword index", "request_id", requestID)

		packages, err := catalogStore.ListPackages()
		if err != nil {
			logger.Error("failed to list packages for index rebuild", "request_id", requestID, "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		indexService.Build(packages)

		writeResponse(c, IndexRebuildResponse{
			RequestID:       requestID,
			PackagesIndexed: indexService.Size(),
		}, http.StatusOK, nil)
	}
}

func handleIndexStatus(indexService *holidayindex.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeResponse(c, IndexStatusResponse{
			Built:    indexService.IsBuilt(),
			Packages: indexService.Size(),
		}, http.StatusOK, nil)
	}
}
