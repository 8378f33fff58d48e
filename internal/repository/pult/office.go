package pult

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/raksitnongbua/office-bot/constants"
	"github.com/raksitnongbua/office-bot/internal/core/domain"
	"go.uber.org/zap"
)

type trackOfficesData struct {
	TrackOffice *[]domain.Office `json:"track_office"`
}

// GetOffices returns every office that is not archived, with its
// non-deleted desks.
func (c *Client) GetOffices(ctx context.Context) ([]domain.Office, error) {
	data, err := c.execute(ctx, graphQLRequest{
		Query:         trackOfficesQuery,
		Variables:     map[string]any{},
		OperationName: constants.OperationTrackOffices,
	})
	if err != nil {
		return nil, err
	}

	var parsed trackOfficesData
	if len(data) > 0 {
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, &domain.RemoteError{
				Operation: constants.OperationTrackOffices,
				Message:   fmt.Sprintf("decode track_office: %v", err),
			}
		}
	}
	if parsed.TrackOffice == nil {
		return nil, &domain.RemoteError{
			Operation: constants.OperationTrackOffices,
			Message:   "response has no track_office",
		}
	}

	offices := *parsed.TrackOffice
	c.logger.Debug("offices fetched", zap.Int("count", len(offices)))
	return offices, nil
}
