package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"habitat-api/internal/domain/entity"
	"habitat-api/internal/domain/model"
	"habitat-api/internal/domain/usecase/rating"
	"habitat-api/pkg/log"
	"habitat-api/pkg/msg"
	"habitat-api/pkg/util/numberutils"
)

type RatingController struct {
	api     *echo.Group
	useCase rating.UseCase
}

func NewRatingController(api *echo.Group, useCase rating.UseCase) *RatingController {
	return &RatingController{api: api, useCase: useCase}
}

// InitRatingRoutes initializes rating routes
func (controller *RatingController) InitRatingRoutes() {
	controller.api.POST("/ratings", controller.Submit)
	controller.api.GET("/ratings/summary", controller.GetSummary)
	controller.api.GET("/ratings/cities/:city", controller.ListCitySummaries)
	controller.api.GET("/ratings/cities/:city/filter", controller.ListForFilter)
}

// Submit godoc
// @Summary Rate a neighborhood
// @Description Stores one rating; every score must be between 1 and 10 and the district, when sent, must own the neighborhood
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body model.CreateRatingDTO true "Rating"
// @Success 201 {object} entity.NeighborhoodRating "Stored rating"
// @Failure 400 {object} map[string]string "Malformed body, missing field or score out of range"
// @Failure 422 {object} map[string]string "Unknown city or neighborhood, or district mismatch"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ratings [post]
func (controller *RatingController) Submit(c echo.Context) error {
	var dto model.CreateRatingDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("rating.invalid.body", err)})
	}

	created, err := controller.useCase.Submit(c.Request().Context(), dto)
	if err != nil {
		return controller.respondError(c, err, submitStatus(err))
	}
	return c.JSON(http.StatusCreated, created)
}

// GetSummary godoc
// @Summary Rating summary of a neighborhood
// @Description Select the neighborhood with neighborhood and city, or with a display label. Unrated neighborhoods have count 0
// @Tags ratings
// @Produce json
// @Param neighborhood query string false "Neighborhood name"
// @Param city query string false "City name"
// @Param label query string false "Display label, e.g. Sants, Sants-Montjuïc, Barcelona"
// @Success 200 {object} entity.RatingSummary "Summary"
// @Failure 400 {object} map[string]string "Missing selection or malformed label"
// @Failure 404 {object} map[string]string "Unknown neighborhood"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ratings/summary [get]
func (controller *RatingController) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		summary *entity.RatingSummary
		err     error
	)
	if label := strings.TrimSpace(c.QueryParam("label")); label != "" {
		summary, err = controller.useCase.GetSummaryByDisplayName(ctx, label)
	} else {
		neighborhood, city := c.QueryParam("neighborhood"), c.QueryParam("city")
		if strings.TrimSpace(neighborhood) == "" || strings.TrimSpace(city) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "neighborhood and city, or label, are required"})
		}
		summary, err = controller.useCase.GetSummary(ctx, neighborhood, city)
	}
	if err != nil {
		return controller.respondError(c, err, queryStatus(err))
	}
	return c.JSON(http.StatusOK, summary)
}

// ListCitySummaries godoc
// @Summary Ranked rating summaries of a city
// @Description Rated neighborhoods ordered by overall average, best first
// @Tags ratings
// @Produce json
// @Param city path string true "City name"
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} model.Page[entity.RatingSummary] "Paginated summaries"
// @Failure 404 {object} map[string]string "Unknown city"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ratings/cities/{city} [get]
func (controller *RatingController) ListCitySummaries(c echo.Context) error {
	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), 0)

	summaries, err := controller.useCase.ListCitySummaries(c.Request().Context(), cityParam(c), page, size)
	if err != nil {
		return controller.respondError(c, err, queryStatus(err))
	}
	return c.JSON(http.StatusOK, summaries)
}

// ListForFilter godoc
// @Summary Rating summaries for a location filter
// @Description Summaries of the rated neighborhoods selected by a city, district or neighborhood query
// @Tags ratings
// @Produce json
// @Param city path string true "City name"
// @Param q query string true "City, city-wide option, district or neighborhood name"
// @Success 200 {array} entity.RatingSummary "Summaries"
// @Failure 404 {object} map[string]string "Unknown city"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ratings/cities/{city}/filter [get]
func (controller *RatingController) ListForFilter(c echo.Context) error {
	summaries, err := controller.useCase.ListForFilter(c.Request().Context(), c.QueryParam("q"), cityParam(c))
	if err != nil {
		return controller.respondError(c, err, queryStatus(err))
	}
	return c.JSON(http.StatusOK, summaries)
}

// submitStatus maps a submission error: malformed input is 400, input that names nothing
// in the hierarchy is 422.
func submitStatus(err error) int {
	switch {
	case errors.Is(err, rating.ErrInvalidScore), errors.Is(err, rating.ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, rating.ErrUnknownCity), errors.Is(err, rating.ErrUnknownNeighborhood),
		errors.Is(err, rating.ErrDistrictMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// queryStatus maps a read error: a location that does not exist is 404.
func queryStatus(err error) int {
	switch {
	case errors.Is(err, rating.ErrInvalidDisplayName), errors.Is(err, rating.ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, rating.ErrUnknownCity), errors.Is(err, rating.ErrUnknownNeighborhood),
		errors.Is(err, rating.ErrDistrictMismatch):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (controller *RatingController) respondError(c echo.Context, err error, status int) error {
	if status == http.StatusInternalServerError {
		log.Errorw(err.Error(), "method", c.Request().Method, "uri", c.Request().RequestURI)
		return c.JSON(status, map[string]string{"error": msg.GetMessage("rating.internal-error")})
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
