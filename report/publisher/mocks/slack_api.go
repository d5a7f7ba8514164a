package mocks

import (
	"context"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/mock"
)

type SlackAPI struct {
	mock.Mock
}

func (m *SlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	args := m.Called(ctx, channelID, options)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *SlackAPI) UploadFileContext(ctx context.Context, params slack.FileUploadParameters) (*slack.File, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*slack.File), args.Error(1)
}
