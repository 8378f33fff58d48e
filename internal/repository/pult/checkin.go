package pult

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/raksitnongbua/office-bot/constants"
	"github.com/raksitnongbua/office-bot/internal/core/domain"
	"go.uber.org/zap"
)

type trackPollsData struct {
	TrackPollsRange []domain.CheckInStatus `json:"trackPollsRange"`
}

// GetMyStatus returns the caller's check-in record for date, or nil when
// nothing was recorded for that day.
func (c *Client) GetMyStatus(ctx context.Context, date string) (*domain.CheckInStatus, error) {
	data, err := c.execute(ctx, graphQLRequest{
		Query: trackPollsByRangeQuery,
		Variables: map[string]any{
			"fromDate": date,
			"toDate":   date,
		},
		OperationName: constants.OperationTrackPolls,
	})
	if err != nil {
		return nil, err
	}

	var parsed trackPollsData
	if len(data) > 0 {
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, &domain.RemoteError{
				Operation: constants.OperationTrackPolls,
				Message:   fmt.Sprintf("decode trackPollsRange: %v", err),
			}
		}
	}
	if len(parsed.TrackPollsRange) == 0 {
		c.logger.Debug("no check-in recorded", zap.String("date", date))
		return nil, nil
	}

	status := parsed.TrackPollsRange[0]
	return &status, nil
}
