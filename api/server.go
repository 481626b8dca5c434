// package api exposes the timeline and cost computations over JSON, the
// surface the web frontend renders from.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/triplinehq/tripline/cost"
	"github.com/triplinehq/tripline/plan"
	"github.com/triplinehq/tripline/timeline"
)

// EntrySource supplies trip and entry records. *plan.Store satisfies it;
// tests substitute fakes.
type EntrySource interface {
	Trip(ctx context.Context, tripID string) (*plan.Trip, error)
	TripEntries(ctx context.Context, tripID string) (plan.Entries, error)
}

// Server is the JSON API over one entry source.
type Server struct {
	echo   *echo.Echo
	source EntrySource
	log    zerolog.Logger
}

// New wires routes and middleware. Start must be called to listen.
func New(log zerolog.Logger, source EntrySource) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(RequestLogger(log), middleware.Recover())

	s := &Server{
		echo:   e,
		source: source,
		log:    log,
	}

	e.GET("/healthz", s.health)
	e.GET("/api/trips/:id/timeline", s.tripTimeline)
	e.GET("/api/trips/:id/costs", s.tripCosts)

	return s
}

// Start listens on addr until Shutdown or a fatal error.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("Starting API server")
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// timelinePayload is the full layout response the renderer consumes.
type timelinePayload struct {
	Trip     *plan.Trip         `json:"trip"`
	Timeline *timeline.Timeline `json:"timeline"`
}

func (s *Server) tripTimeline(c echo.Context) error {
	trip, entries, err := s.load(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, timelinePayload{
		Trip:     trip,
		Timeline: timeline.Build(trip.Window, entries),
	})
}

// costsPayload pairs the trip header with its cost breakdown.
type costsPayload struct {
	Trip      *plan.Trip      `json:"trip"`
	Breakdown *cost.Breakdown `json:"breakdown"`
}

func (s *Server) tripCosts(c echo.Context) error {
	trip, entries, err := s.load(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, costsPayload{
		Trip:      trip,
		Breakdown: cost.Compute(trip, entries),
	})
}

func (s *Server) load(c echo.Context) (*plan.Trip, plan.Entries, error) {
	ctx := c.Request().Context()
	tripID := c.Param("id")

	trip, err := s.source.Trip(ctx, tripID)
	if errors.Is(err, plan.ErrTripNotFound) {
		return nil, plan.Entries{}, echo.NewHTTPError(http.StatusNotFound, "trip not found")
	}
	if err != nil {
		s.log.Error().Err(err).Str("trip_id", tripID).Msg("Failed to load trip")
		return nil, plan.Entries{}, echo.NewHTTPError(http.StatusInternalServerError, "failed to load trip")
	}

	entries, err := s.source.TripEntries(ctx, tripID)
	if err != nil {
		s.log.Error().Err(err).Str("trip_id", tripID).Msg("Failed to load trip entries")
		return nil, plan.Entries{}, echo.NewHTTPError(http.StatusInternalServerError, "failed to load trip entries")
	}

	return trip, entries, nil
}
