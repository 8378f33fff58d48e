package slack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/raksitnongbua/office-bot/internal/core/domain"
	slackapi "github.com/slack-go/slack"
	"go.uber.org/zap"
)

var channelIDPattern = regexp.MustCompile(`^[CGD][A-Z0-9]{8,}$`)

// Client posts to a single configured channel.
type Client struct {
	api     *slackapi.Client
	channel string
	logger  *zap.Logger

	channelID string
}

func NewClient(token, channel string, logger *zap.Logger, options ...slackapi.Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		api:     slackapi.New(token, options...),
		channel: strings.TrimPrefix(strings.TrimSpace(channel), "#"),
		logger:  logger,
	}
}

// PostText sends message as a single mrkdwn section block.
func (c *Client) PostText(ctx context.Context, message string) error {
	section := slackapi.NewSectionBlock(
		slackapi.NewTextBlockObject(slackapi.MarkdownType, message, false, false),
		nil, nil,
	)
	channel, ts, err := c.api.PostMessageContext(ctx, c.channel,
		slackapi.MsgOptionBlocks(section),
		slackapi.MsgOptionText(message, false),
	)
	if err != nil {
		return fmt.Errorf("slack: post message to %s: %w", c.channel, err)
	}
	c.logger.Debug("slack message posted", zap.String("channel", channel), zap.String("ts", ts))
	return nil
}

// UploadImage uploads the file at path with message as its initial comment.
func (c *Client) UploadImage(ctx context.Context, path, message string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &domain.UploadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &domain.UploadError{Path: path, Err: fmt.Errorf("is a directory")}
	}
	if info.Size() == 0 {
		return &domain.UploadError{Path: path, Err: fmt.Errorf("empty file")}
	}

	channelID, err := c.resolveChannelID(ctx)
	if err != nil {
		return &domain.UploadError{Path: path, Err: err}
	}

	summary, err := c.api.UploadFileV2Context(ctx, slackapi.UploadFileV2Parameters{
		File:           path,
		FileSize:       int(info.Size()),
		Filename:       filepath.Base(path),
		InitialComment: message,
		Channel:        channelID,
	})
	if err != nil {
		return &domain.UploadError{Path: path, Err: err}
	}
	c.logger.Debug("slack file uploaded", zap.String("channel", channelID), zap.String("file_id", summary.ID))
	return nil
}

// resolveChannelID maps the configured channel name to its id. File uploads
// only accept ids.
func (c *Client) resolveChannelID(ctx context.Context) (string, error) {
	if c.channelID != "" {
		return c.channelID, nil
	}
	if channelIDPattern.MatchString(c.channel) {
		c.channelID = c.channel
		return c.channelID, nil
	}

	params := &slackapi.GetConversationsParameters{
		ExcludeArchived: true,
		Limit:           200,
		Types:           []string{"public_channel", "private_channel"},
	}
	for {
		channels, cursor, err := c.api.GetConversationsContext(ctx, params)
		if err != nil {
			return "", fmt.Errorf("slack: list conversations: %w", err)
		}
		for _, ch := range channels {
			if ch.Name == c.channel {
				c.channelID = ch.ID
				return c.channelID, nil
			}
		}
		if cursor == "" {
			break
		}
		params.Cursor = cursor
	}
	return "", fmt.Errorf("slack: channel %q not found", c.channel)
}
