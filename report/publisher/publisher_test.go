package publisher

import (
	"context"
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloudops/infra-monitor/report/domain"
	"github.com/cloudops/infra-monitor/report/publisher/mocks"
)

func TestPublishMessageAndAttachments(t *testing.T) {
	ctx := context.Background()
	api := &mocks.SlackAPI{}

	api.On("PostMessageContext", ctx, "C012345", mock.Anything).
		Return("C012345", "167.00", nil).
		Once()
	api.On("UploadFileContext", ctx, mock.MatchedBy(func(params slack.FileUploadParameters) bool {
		return params.Filename == "eu-west-1-usage-last_week.png" &&
			params.Filetype == "png" &&
			assert.ObjectsAreEqual([]string{"C012345"}, params.Channels)
	})).Return(&slack.File{}, nil).Once()

	p := NewSlackPublisher(api, "C012345")

	err := p.Publish(ctx, &domain.Report{
		Title: "EC2 Usage in eu-west-1 for the past week",
		Attachments: []domain.Attachment{
			{Name: "eu-west-1-usage-last_week.png", Bytes: []byte("png-bytes")},
		},
	})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestPublishPostFailureSkipsUploads(t *testing.T) {
	ctx := context.Background()
	api := &mocks.SlackAPI{}

	api.On("PostMessageContext", ctx, "C012345", mock.Anything).
		Return("", "", errors.New("channel_not_found"))

	p := NewSlackPublisher(api, "C012345")

	err := p.Publish(ctx, &domain.Report{
		Title:       "title",
		Attachments: []domain.Attachment{{Name: "a.png", Bytes: []byte("x")}},
	})

	var publishErr *domain.PublishError

	require.ErrorAs(t, err, &publishErr)
	api.AssertNotCalled(t, "UploadFileContext", mock.Anything, mock.Anything)
}

func TestPublishUploadFailure(t *testing.T) {
	ctx := context.Background()
	api := &mocks.SlackAPI{}

	api.On("PostMessageContext", ctx, "C012345", mock.Anything).
		Return("C012345", "167.00", nil)
	api.On("UploadFileContext", ctx, mock.Anything).
		Return(nil, errors.New("upload failed"))

	p := NewSlackPublisher(api, "C012345")

	err := p.Publish(ctx, &domain.Report{
		Title:       "title",
		Attachments: []domain.Attachment{{Name: "a.csv.zip", Bytes: []byte("x")}},
	})

	var publishErr *domain.PublishError

	require.ErrorAs(t, err, &publishErr)
	assert.Contains(t, publishErr.Error(), "a.csv.zip")
}

func TestFieldBlocksPadsOddCount(t *testing.T) {
	fields := []domain.Field{
		{Label: "Budget Name", Value: "monthly-budget"},
		{Label: "Alert Threshold", Value: "> $100.00"},
		{Label: "Budgeted Amount", Value: "$120.00"},
	}

	blocks := fieldBlocks(fields)

	require.Len(t, blocks, 2)

	second, ok := blocks[1].(*slack.SectionBlock)
	require.True(t, ok)
	require.Len(t, second.Fields, 4)
	assert.Equal(t, "*Budgeted Amount*", second.Fields[0].Text)
	assert.Equal(t, "* *", second.Fields[1].Text)
}

func TestFieldBlocksEmpty(t *testing.T) {
	assert.Nil(t, fieldBlocks(nil))
}

func TestBuildBlocksSkipsEmptyBody(t *testing.T) {
	blocks := buildBlocks(&domain.Report{Title: "only a title"})

	require.Len(t, blocks, 1)
	assert.IsType(t, &slack.HeaderBlock{}, blocks[0])
}

func TestTypeHint(t *testing.T) {
	assert.Equal(t, "png", typeHint("eu-west-1-usage-last_hour.png"))
	assert.Equal(t, "zip", typeHint("aws-cost-usage-20240101-20240201.csv.zip"))
	assert.Equal(t, "auto", typeHint("no-extension"))
}
