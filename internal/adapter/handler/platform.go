package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/adapter/dto/sentiment"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/adapter/presenter"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/usecase/sentiment"
)

// Platform handles the static platform dataset endpoints
type Platform struct {
	svc    *sentiment.Service
	logger *zap.Logger
}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler(svc *sentiment.Service, logger *zap.Logger) *Platform {
	return &Platform{svc: svc, logger: logger}
}

// List returns every platform without topics
func (h *Platform) List(c echo.Context) error {
	platforms, err := h.svc.ListPlatforms(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}
	return HandleSuccess(h.logger, c, presenter.ToPlatformListResponse(platforms))
}

// Leaderboard ranks platforms by overall sentiment
func (h *Platform) Leaderboard(c echo.Context) error {
	entries, err := h.svc.Leaderboard(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}
	return HandleSuccess(h.logger, c, entries)
}

// Get returns one platform with its topics
func (h *Platform) Get(c echo.Context) error {
	var req dto.GetPlatformRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	platform, err := h.svc.GetPlatform(c.Request().Context(), req.ID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.ID))
	}
	return HandleSuccess(h.logger, c, presenter.ToPlatformResponse(platform, true))
}

// Topics returns a platform's top topics
func (h *Platform) Topics(c echo.Context) error {
	var req dto.TopTopicsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	topics, err := h.svc.TopTopics(c.Request().Context(), req.ID, req.Sort, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.ID))
	}
	return HandleSuccess(h.logger, c, presenter.ToTopicResponses(topics))
}

// Trend returns each topic's trend value at a slider index
func (h *Platform) Trend(c echo.Context) error {
	var req dto.TrendRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	points, err := h.svc.TrendAt(c.Request().Context(), req.ID, req.Index)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.ID))
	}
	return HandleSuccess(h.logger, c, points)
}

// CompetitiveInsights returns curated competitor insights
func (h *Platform) CompetitiveInsights(c echo.Context) error {
	var req dto.CompetitiveInsightsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	insights, err := h.svc.CompetitiveInsights(c.Request().Context(), sentiment.InsightFilter{
		Priority:   req.Priority,
		Impact:     req.Impact,
		Competitor: entities.Platform(req.Competitor),
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}
	return HandleSuccess(h.logger, c, insights)
}

// Timeline returns dated sentiment events
func (h *Platform) Timeline(c echo.Context) error {
	var req dto.TimelineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	events, err := h.svc.Timeline(c.Request().Context(), entities.Platform(req.Platform))
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}
	return HandleSuccess(h.logger, c, events)
}
