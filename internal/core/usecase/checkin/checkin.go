package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/raksitnongbua/office-bot/constants"
	"github.com/raksitnongbua/office-bot/internal/core/auth/session"
	"github.com/raksitnongbua/office-bot/internal/core/domain"
	"go.uber.org/zap"
)

type RoomSource interface {
	LoadRoomMap() (*domain.RoomMap, error)
}

type StatusSource interface {
	GetMyStatus(ctx context.Context, date string) (*domain.CheckInStatus, error)
}

type OfficeSource interface {
	GetOffices(ctx context.Context) ([]domain.Office, error)
}

type ImageSource interface {
	ImageFor(room string) (string, bool)
}

type Sender interface {
	Send(ctx context.Context, message, imagePath string) domain.Delivery
}

type Options struct {
	NotifyOnError      bool
	NotifyWorkFromHome bool

	// Token, when known, is checked for expiry before the API is called.
	Token *session.TokenInfo
	Now   func() time.Time
}

// Checker runs one check-in status lookup from start to finish.
type Checker struct {
	rooms   RoomSource
	status  StatusSource
	offices OfficeSource
	images  ImageSource
	sender  Sender
	opts    Options
	logger  *zap.Logger
}

func NewChecker(rooms RoomSource, status StatusSource, offices OfficeSource, images ImageSource, sender Sender, opts Options, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Checker{
		rooms:   rooms,
		status:  status,
		offices: offices,
		images:  images,
		sender:  sender,
		opts:    opts,
		logger:  logger,
	}
}

// Run loads the room map, looks up the check-in for date and reports where
// the desk is. Errors from loading or fetching are returned unhandled; the
// not-found branches end the run with a report instead.
func (c *Checker) Run(ctx context.Context, runID, date string) (*domain.Report, error) {
	logger := c.logger.With(zap.String("run_id", runID), zap.String("date", date))
	report := domain.NewReport(runID, date)

	rooms, err := c.rooms.LoadRoomMap()
	if err != nil {
		return nil, fmt.Errorf("load room map: %w", err)
	}
	logger.Debug("room map loaded", zap.Int("rooms", rooms.Len()))

	if err := c.opts.Token.Valid(c.opts.Now()); err != nil {
		return nil, err
	}

	status, err := c.status.GetMyStatus(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetch check-in status: %w", err)
	}
	if status == nil {
		report.Outcome = domain.OutcomeWorkingFromHome
		report.Message = constants.MessageWorkingFromHome
		if c.opts.NotifyWorkFromHome {
			report.Delivery = c.sender.Send(ctx, report.Message, "")
		}
		return report, nil
	}
	report.OfficeID = status.ResultOfficeID
	report.DeskID = status.ResultOfficeDeskID

	offices, err := c.offices.GetOffices(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch offices: %w", err)
	}
	office, ok := domain.FindOffice(offices, status.ResultOfficeID)
	if !ok {
		logger.Warn("office not found", zap.Stringer("office_id", status.ResultOfficeID), zap.Int("offices", len(offices)))
		return c.missing(ctx, report, domain.OutcomeOfficeNotFound, constants.MessageOfficeNotFound), nil
	}

	desk, ok := office.FindDesk(status.ResultOfficeDeskID)
	if !ok {
		logger.Warn("desk not found", zap.Stringer("office_id", office.ID), zap.Stringer("desk_id", status.ResultOfficeDeskID))
		return c.missing(ctx, report, domain.OutcomeDeskNotFound, constants.MessageDeskNotFound), nil
	}

	report.Outcome = domain.OutcomeAssigned
	report.Room = rooms.Resolve(desk.X, desk.Y)
	report.Message = fmt.Sprintf(constants.MessageAssignedFormat, report.Room)
	if image, ok := c.images.ImageFor(report.Room); ok {
		report.Image = image
	}
	logger.Info("desk resolved",
		zap.Int("x", desk.X),
		zap.Int("y", desk.Y),
		zap.String("room", report.Room),
		zap.String("image", report.Image))

	report.Delivery = c.sender.Send(ctx, report.Message, report.Image)
	return report, nil
}

// NotifyFailure reports a failed run to chat when error notifications are on.
func (c *Checker) NotifyFailure(ctx context.Context, err error) domain.Delivery {
	if !c.opts.NotifyOnError || err == nil {
		return domain.DeliveryNone
	}
	return c.sender.Send(ctx, fmt.Sprintf(constants.MessageErrorFormat, err.Error()), "")
}

func (c *Checker) missing(ctx context.Context, report *domain.Report, outcome domain.Outcome, message string) *domain.Report {
	report.Outcome = outcome
	report.Message = message
	if c.opts.NotifyOnError {
		report.Delivery = c.sender.Send(ctx, message, "")
	}
	return report
}
