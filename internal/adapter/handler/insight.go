package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/adapter/dto/sentiment"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/adapter/presenter"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/usecase/insight"
)

// Insight handles endpoints derived from the clustering snapshot
type Insight struct {
	svc    *insight.Service
	logger *zap.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(svc *insight.Service, logger *zap.Logger) *Insight {
	return &Insight{svc: svc, logger: logger}
}

// List derives comparison insights for every cluster
func (h *Insight) List(c echo.Context) error {
	var req dto.InsightsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	insights, err := h.svc.Insights(c.Request().Context(), insight.Filter{Category: entities.Category(req.Category)})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}
	return HandleSuccess(h.logger, c, presenter.ToInsightListResponse(insights))
}

// Aggregate returns corpus-wide weighted sentiment per platform
func (h *Insight) Aggregate(c echo.Context) error {
	agg, err := h.svc.Aggregate(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}
	return HandleSuccess(h.logger, c, presenter.ToAggregateResponse(agg))
}

// Venn returns Venn diagram region weights
func (h *Insight) Venn(c echo.Context) error {
	regions, err := h.svc.Venn(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}
	return HandleSuccess(h.logger, c, regions)
}

// Cluster returns the raw cluster record behind an insight
func (h *Insight) Cluster(c echo.Context) error {
	var req dto.ClusterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	cluster, err := h.svc.Cluster(c.Request().Context(), req.ClusterID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.ClusterID))
	}
	return HandleSuccess(h.logger, c, presenter.ToClusterResponse(cluster))
}

// Delta formats a competitor's sentiment difference from Slack on one cluster
func (h *Insight) Delta(c echo.Context) error {
	var req dto.DeltaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	platform := entities.Platform(req.Platform)
	delta, err := h.svc.Delta(c.Request().Context(), req.ClusterID, platform)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.ClusterID))
	}
	return HandleSuccess(h.logger, c, presenter.ToDeltaResponse(req.ClusterID, platform, delta))
}
