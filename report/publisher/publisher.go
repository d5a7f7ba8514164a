package publisher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/slack-go/slack"

	"github.com/cloudops/infra-monitor/report/domain"
)

// SlackAPI is the slice of the slack client the publisher depends on.
type SlackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UploadFileContext(ctx context.Context, params slack.FileUploadParameters) (*slack.File, error)
}

// SlackPublisher delivers rendered reports to a single slack channel.
type SlackPublisher struct {
	client  SlackAPI
	channel string
}

func NewSlackPublisher(client SlackAPI, channel string) *SlackPublisher {
	return &SlackPublisher{
		client:  client,
		channel: channel,
	}
}

// Publish sends the report as one block message, then uploads its
// attachments sequentially in order. Any API failure is returned as a
// PublishError and stops the remaining uploads.
func (p *SlackPublisher) Publish(ctx context.Context, report *domain.Report) error {
	blocks := buildBlocks(report)

	if _, _, err := p.client.PostMessageContext(ctx, p.channel,
		slack.MsgOptionText(report.Title, false),
		slack.MsgOptionBlocks(blocks...),
	); err != nil {
		return &domain.PublishError{Err: fmt.Errorf("posting message: %w", err)}
	}

	for _, attachment := range report.Attachments {
		if _, err := p.client.UploadFileContext(ctx, slack.FileUploadParameters{
			Filename: attachment.Name,
			Filetype: typeHint(attachment.Name),
			Title:    attachment.Name,
			Content:  string(attachment.Bytes),
			Channels: []string{p.channel},
		}); err != nil {
			return &domain.PublishError{Err: fmt.Errorf("uploading %s: %w", attachment.Name, err)}
		}
	}

	return nil
}

func buildBlocks(report *domain.Report) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, report.Title, true, false)),
	}

	if report.Body != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, report.Body, false, false), nil, nil))
	}

	blocks = append(blocks, fieldBlocks(report.Fields)...)

	return blocks
}

// fieldBlocks renders label/value pairs two per section block, labels bold
// over plain values. An odd field count is padded with one blank pair so
// chunking never drops the trailing field.
func fieldBlocks(fields []domain.Field) []slack.Block {
	if len(fields) == 0 {
		return nil
	}

	if len(fields)%2 != 0 {
		fields = append(fields, domain.Field{Label: " ", Value: " "})
	}

	var blocks []slack.Block

	for _, pair := range lo.Chunk(fields, 2) {
		texts := []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, "*"+pair[0].Label+"*", false, false),
			slack.NewTextBlockObject(slack.MarkdownType, "*"+pair[1].Label+"*", false, false),
			slack.NewTextBlockObject(slack.PlainTextType, pair[0].Value, true, false),
			slack.NewTextBlockObject(slack.PlainTextType, pair[1].Value, true, false),
		}

		blocks = append(blocks, slack.NewSectionBlock(nil, texts, nil))
	}

	return blocks
}

// typeHint derives the upload file type from the attachment name's suffix.
func typeHint(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "auto"
	}

	return ext
}
