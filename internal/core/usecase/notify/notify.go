package notify

import (
	"context"

	"github.com/raksitnongbua/office-bot/internal/core/domain"
	"go.uber.org/zap"
)

type Poster interface {
	PostText(ctx context.Context, message string) error
	UploadImage(ctx context.Context, path, message string) error
}

// Notifier delivers status messages to chat. It never returns an error:
// delivery problems are logged and reported through the Delivery value.
type Notifier struct {
	poster       Poster
	fallbackText bool
	logger       *zap.Logger
}

func NewNotifier(poster Poster, fallbackText bool, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{poster: poster, fallbackText: fallbackText, logger: logger}
}

// Send uploads imagePath with message as its comment when an image is given,
// otherwise it posts message as text. A failed upload falls back to text
// only when the notifier was built with fallbackText.
func (n *Notifier) Send(ctx context.Context, message, imagePath string) domain.Delivery {
	if imagePath != "" {
		err := n.poster.UploadImage(ctx, imagePath, message)
		if err == nil {
			return domain.DeliveryImage
		}
		n.logger.Error("error uploading image", zap.String("image", imagePath), zap.Error(err))
		if !n.fallbackText {
			return domain.DeliveryNone
		}
	}

	if err := n.poster.PostText(ctx, message); err != nil {
		n.logger.Error("error sending slack message", zap.Error(err))
		return domain.DeliveryNone
	}
	return domain.DeliveryText
}

// Discard is a Poster for dry runs.
type Discard struct {
	Logger *zap.Logger
}

func (d Discard) PostText(_ context.Context, message string) error {
	if d.Logger != nil {
		d.Logger.Info("dry run: skipping slack message", zap.String("message", message))
	}
	return nil
}

func (d Discard) UploadImage(_ context.Context, path, message string) error {
	if d.Logger != nil {
		d.Logger.Info("dry run: skipping slack upload", zap.String("image", path), zap.String("message", message))
	}
	return nil
}
