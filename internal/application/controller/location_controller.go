package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"habitat-api/internal/domain/model"
	"habitat-api/internal/domain/usecase/location"
	loc "habitat-api/pkg/location"
	"habitat-api/pkg/msg"
	"habitat-api/pkg/util/numberutils"
)

type LocationController struct {
	api     *echo.Group
	useCase location.UseCase
}

func NewLocationController(api *echo.Group, useCase location.UseCase) *LocationController {
	return &LocationController{api: api, useCase: useCase}
}

// InitLocationRoutes initializes location routes
func (controller *LocationController) InitLocationRoutes() {
	group := controller.api.Group("/locations")
	group.GET("/cities", controller.ListCities)
	group.GET("/cities/:city/districts", controller.ListDistricts)
	group.GET("/cities/:city/neighborhoods", controller.ListNeighborhoods)
	group.GET("/cities/:city/resolve", controller.Resolve)
	group.GET("/cities/:city/expand", controller.Expand)
	group.GET("/search", controller.Search)
	group.GET("/suggest", controller.Suggest)
	group.GET("/display-name", controller.FormatDisplayName)
	group.GET("/display-name/parse", controller.ParseDisplayName)
}

// cityParam returns the decoded :city path parameter.
func cityParam(c echo.Context) string {
	return loc.FromPathSegment(c.Param("city"))
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// ListCities godoc
// @Summary List cities
// @Tags locations
// @Produce json
// @Success 200 {array} string "City names"
// @Router /locations/cities [get]
func (controller *LocationController) ListCities(c echo.Context) error {
	return c.JSON(http.StatusOK, orEmpty(controller.useCase.ListCities()))
}

// ListDistricts godoc
// @Summary List the districts of a city
// @Description Unknown cities return an empty list
// @Tags locations
// @Produce json
// @Param city path string true "City name"
// @Success 200 {array} string "District names"
// @Router /locations/cities/{city}/districts [get]
func (controller *LocationController) ListDistricts(c echo.Context) error {
	return c.JSON(http.StatusOK, orEmpty(controller.useCase.ListDistricts(cityParam(c))))
}

// ListNeighborhoods godoc
// @Summary List the neighborhoods of a city
// @Description Restricted to one district when district is set; unknown names return an empty list
// @Tags locations
// @Produce json
// @Param city path string true "City name"
// @Param district query string false "District name"
// @Success 200 {array} string "Neighborhood names"
// @Router /locations/cities/{city}/neighborhoods [get]
func (controller *LocationController) ListNeighborhoods(c echo.Context) error {
	neighborhoods := controller.useCase.ListNeighborhoods(cityParam(c), c.QueryParam("district"))
	return c.JSON(http.StatusOK, orEmpty(neighborhoods))
}

// Resolve godoc
// @Summary Resolve a location query
// @Description Classifies the query as the whole city, a district or a neighborhood and returns its neighborhoods
// @Tags locations
// @Produce json
// @Param city path string true "City name"
// @Param q query string true "City, district or neighborhood name"
// @Success 200 {object} model.LocationResolution "Resolved location"
// @Failure 404 {object} map[string]string "Nothing matches the query"
// @Router /locations/cities/{city}/resolve [get]
func (controller *LocationController) Resolve(c echo.Context) error {
	city := cityParam(c)
	query := c.QueryParam("q")

	resolution, ok := controller.useCase.Resolve(query, city)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("location.unresolved", query, city)})
	}
	return c.JSON(http.StatusOK, resolution)
}

// Expand godoc
// @Summary Expand a location query into neighborhoods
// @Tags locations
// @Produce json
// @Param city path string true "City name"
// @Param q query string true "City, city-wide option, district or neighborhood name"
// @Success 200 {object} model.LocationExpansion "Neighborhoods selected by the query"
// @Router /locations/cities/{city}/expand [get]
func (controller *LocationController) Expand(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Expand(c.QueryParam("q"), cityParam(c)))
}

// Search godoc
// @Summary Search neighborhoods by prefix or substring
// @Description Case and accent insensitive; short queries return an empty list
// @Tags locations
// @Produce json
// @Param q query string true "Search text"
// @Param minLength query int false "Minimum query length" default(3)
// @Success 200 {array} string "Neighborhood display names"
// @Router /locations/search [get]
func (controller *LocationController) Search(c echo.Context) error {
	minLength := numberutils.ToIntWithDefault(c.QueryParam("minLength"), 0)
	return c.JSON(http.StatusOK, controller.useCase.Search(c.QueryParam("q"), minLength))
}

// Suggest godoc
// @Summary Autocomplete suggestions
// @Description Ranked city, district and neighborhood options for a search box
// @Tags locations
// @Produce json
// @Param q query string true "Search text"
// @Param city query string false "Restrict suggestions to one city"
// @Param limit query int false "Maximum suggestions" default(10)
// @Success 200 {array} location.Suggestion "Suggestions"
// @Router /locations/suggest [get]
func (controller *LocationController) Suggest(c echo.Context) error {
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), 0)
	return c.JSON(http.StatusOK, controller.useCase.Suggest(c.QueryParam("q"), c.QueryParam("city"), limit))
}

// FormatDisplayName godoc
// @Summary Format a display name
// @Tags locations
// @Produce json
// @Param neighborhood query string true "Neighborhood name"
// @Param district query string false "District name"
// @Param city query string true "City name"
// @Success 200 {object} model.DisplayNameResponse "Display label"
// @Router /locations/display-name [get]
func (controller *LocationController) FormatDisplayName(c echo.Context) error {
	label := controller.useCase.FormatDisplayName(c.QueryParam("neighborhood"), c.QueryParam("district"), c.QueryParam("city"))
	return c.JSON(http.StatusOK, model.DisplayNameResponse{Label: label})
}

// ParseDisplayName godoc
// @Summary Parse a display name
// @Tags locations
// @Produce json
// @Param label query string true "Display label"
// @Success 200 {object} location.DisplayName "Parsed label"
// @Failure 404 {object} map[string]string "Not a display name"
// @Router /locations/display-name/parse [get]
func (controller *LocationController) ParseDisplayName(c echo.Context) error {
	label := c.QueryParam("label")
	name, ok := controller.useCase.ParseDisplayName(label)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("rating.invalid.label", label)})
	}
	return c.JSON(http.StatusOK, name)
}
