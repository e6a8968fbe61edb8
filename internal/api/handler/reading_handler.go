package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aquasense/water-quality-api/internal/api/metrics"
	"github.com/aquasense/water-quality-api/internal/core/ports"
)

// ReadingHandler handles HTTP requests for reading submission and listing.
type ReadingHandler struct {
	service ports.ReadingService
}

func NewReadingHandler(service ports.ReadingService) *ReadingHandler {
	return &ReadingHandler{service: service}
}

// Submit stores a new reading owned by the caller.
//
// @Summary      Submit a water-quality reading
// @Tags         readings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitReadingRequest  true  "Measurement values; all sensor parameters optional"
// @Success      201   {object}  submitReadingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/water/reading [post]
func (h *ReadingHandler) Submit(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	var req submitReadingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reading, err := h.service.Submit(c.Request().Context(), viewer, ports.SubmitReadingInput{
		LocationName:    req.LocationName,
		PHLevel:         req.PHLevel,
		TurbidityNTU:    req.TurbidityNTU,
		DissolvedOxygen: req.DissolvedOxygen,
		TemperatureC:    req.TemperatureC,
		ConductivityUS:  req.ConductivityUS,
	})
	if err != nil {
		return err
	}

	metrics.ReadingsSubmittedTotal.WithLabelValues(string(reading.Status)).Inc()

	return c.JSON(http.StatusCreated, submitReadingResponse{
		Message:   "reading submitted",
		ReadingID: reading.ID,
		Status:    string(reading.Status),
	})
}

// ListOwn returns the caller's readings, newest first.
//
// @Summary      List own readings
// @Tags         readings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listReadingsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/water/readings [get]
func (h *ReadingHandler) ListOwn(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	readings, err := h.service.ListOwn(c.Request().Context(), viewer)
	if err != nil {
		return err
	}

	resp := toReadingResponses(readings)
	return c.JSON(http.StatusOK, listReadingsResponse{Readings: resp, Count: len(resp)})
}

// Public returns the most recent readings without authentication.
//
// @Summary      Recent public feed
// @Tags         readings
// @Produce      json
// @Success      200  {object}  publicReadingsResponse
// @Router       /api/water/public-readings [get]
func (h *ReadingHandler) Public(c echo.Context) error {
	readings, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}

	resp := toReadingResponses(readings)
	return c.JSON(http.StatusOK, publicReadingsResponse{
		Readings: resp,
		Count:    len(resp),
		Message:  "recent water quality readings",
	})
}
