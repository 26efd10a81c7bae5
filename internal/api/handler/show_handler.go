package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/showcatalog/catalog-api/internal/api/metrics"
	"github.com/showcatalog/catalog-api/internal/core/domain"
	"github.com/showcatalog/catalog-api/internal/core/ports"
)

// ShowHandler handles HTTP requests for catalog searches.
type ShowHandler struct {
	service ports.ShowService
}

func NewShowHandler(service ports.ShowService) *ShowHandler {
	return &ShowHandler{service: service}
}

// Search handles POST /shows (bearer protected).
//
// @Summary      Search the show catalog with equality filters
// @Tags         shows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      searchShowsRequest  true  "Equality filters plus limit/offset"
// @Success      200   {array}   showResponse
// @Failure      404   {string}  string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /shows [post]
func (h *ShowHandler) Search(c echo.Context) error {
	// Decode by hand instead of c.Bind so unknown keys are rejected rather
	// than silently dropped: a misspelled filter must fail loudly.
	var req searchShowsRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "invalid payload: " + err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	input, err := toSearchInput(req)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	timer := prometheus.NewTimer(metrics.SearchDuration)
	shows, err := h.service.Search(c.Request().Context(), input)
	timer.ObserveDuration()
	if err != nil {
		if errors.Is(err, domain.ErrUnknownFilterField) {
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		}
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return err
	}

	if len(shows) == 0 {
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		return c.JSON(http.StatusNotFound, "No result")
	}

	metrics.SearchesTotal.WithLabelValues("hit").Inc()
	return c.JSON(http.StatusOK, toShowsResponse(shows))
}
