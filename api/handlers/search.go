package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunwaytravel/tripsearch/config"
	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
	"github.com/sunwaytravel/tripsearch/services/search"
	"github.com/sunwaytravel/tripsearch/validation"
)

type SearchRequest struct {
	Query      string `form:"query" json:"query" validate:"required,valid_query,min=1,max=1000"`
	MaxResults int    `form:"max_results" json:"max_results" validate:"min=0,max=100"`
}

func SetupSearch(router *gin.Engine, logger logger.Logger, cfg *config.Config, catalogStore *catalog.Store, validator *validation.Validator) {
	defaults := search.Options{
		FuzzyThreshold: cfg.GetFuzzyThreshold(),
		MaxResults:     cfg.GetMaxResults(),
		MinScore:       cfg.GetMinScore(),
	}
	service := search.New(logger, catalogStore, defaults)
	router.GET("/search", handleSearch(service, logger, validator))

}

func handleSearch(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		searchResponse, err := service.Search(request.Query, request.MaxResults)
		if err != nil {
			logger.Error("search failed", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		writeResponse(c, searchResponse, http.StatusOK, nil)
	}
}
