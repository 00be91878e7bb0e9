package staff

import (
	"context"
	"fmt"
)

// MetricsRepository runs the dashboard aggregates.
type MetricsRepository interface {
	ServiceWorth(ctx context.Context) (float64, error)
}

type ServiceWorthOutput struct {
	Total float64 `json:"total"`
}

type GetServiceWorth interface {
	Execute(ctx context.Context) (ServiceWorthOutput, error)
}

type getServiceWorth struct {
	metrics MetricsRepository
}

func NewGetServiceWorth(metrics MetricsRepository) GetServiceWorth {
	return &getServiceWorth{metrics: metrics}
}

func (uc *getServiceWorth) Execute(ctx context.Context) (ServiceWorthOutput, error) {
	total, err := uc.metrics.ServiceWorth(ctx)
	if err != nil {
		return ServiceWorthOutput{}, fmt.Errorf("service worth: %w", err)
	}
	return ServiceWorthOutput{Total: total}, nil
}
