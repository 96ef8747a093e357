package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
	"github.com/sunwaytravel/tripsearch/services/holidayindex"
	"github.com/sunwaytravel/tripsearch/validation"
)

type FilterSearchRequest struct {
	HolidayTypes string `form:"holiday_types" json:"holiday_types" validate:"max=500"`
	MaxResults   int    `form:"max_results" json:"max_results" validate:"min=0,max=100"`
}

type FilterSearchResponse struct {
	Results []holidayindex.RankedPackage `json:"results"`
	Total   int                          `json:"total"`
}

func SetupFilters(router *gin.Engine, logger logger.Logger, catalogStore *catalog.Store, indexService *holidayindex.Service, validator *validation.Validator) {
	router.GET("/search/filters", handleFilterSearch(catalogStore, indexService, logger, validator))

}

func handleFilterSearch(catalogStore *catalog.Store, indexService *holidayindex.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := FilterSearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from filter search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate filter search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		packages, err := catalogStore.ListPackages()
		if err != nil {
			logger.Error("failed to list packages for filter search", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		ranked := indexService.RankPackages(packages, parseHolidayTypes(request.HolidayTypes), request.MaxResults)

		writeResponse(c, FilterSearchResponse{
			Results: ranked,
			Total:   len(ranked),
		}, http.StatusOK, nil)
	}
}

func parseHolidayTypes(raw string) []string {
	var filters []string
	for _, filter := range strings.Split(raw, ",") {
		if filter = strings.TrimSpace(filter); filter != "" {
			filters = append(filters, filter)
		}
	}

	return filters
}
