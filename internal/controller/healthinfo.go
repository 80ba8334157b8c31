package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/letsdodifferent/HCLTech/internal/api"
	"github.com/letsdodifferent/HCLTech/internal/apperror"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

// HealthInfo is the public health-information screen; no session required.
type HealthInfo struct {
	api    *api.Client
	log    *zap.Logger
	Topics view.Resource[[]model.HealthTopic]
}

// NewHealthInfo builds the health info controller.
func NewHealthInfo(client *api.Client, log *zap.Logger) *HealthInfo {
	return &HealthInfo{api: client, log: log}
}

// Load fetches the topic list.
func (h *HealthInfo) Load(ctx context.Context) {
	h.Topics.Begin()
	topics, err := h.api.Public.GetHealthInfo(ctx)
	if err != nil {
		h.log.Error("error fetching health info", zap.Error(err))
		h.Topics.Fail(apperror.UserMessage(err))
		return
	}
	h.Topics.Resolve(topics)
}

// Retry re-runs the fetch from loading.
func (h *HealthInfo) Retry(ctx context.Context) {
	h.Load(ctx)
}
