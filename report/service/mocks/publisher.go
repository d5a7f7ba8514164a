package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cloudops/infra-monitor/report/domain"
)

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
