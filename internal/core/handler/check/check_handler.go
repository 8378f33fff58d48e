package check

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/raksitnongbua/office-bot/internal/core/domain"
	idgenerator "github.com/raksitnongbua/office-bot/internal/core/usecase/id_generator"
	"github.com/raksitnongbua/office-bot/internal/core/usecase/timer"
	"go.uber.org/zap"
)

type Runner interface {
	Run(ctx context.Context, runID, date string) (*domain.Report, error)
	NotifyFailure(ctx context.Context, err error) domain.Delivery
}

// NewCheckHandler runs one status check per request. The body may carry a
// "date" to check a day other than today.
func NewCheckHandler(runner Runner, today func() string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := unmarshalCheckRequest(c.Body())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		date := today()
		if req.Date != "" {
			if date, err = timer.ParseDate(req.Date); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
			}
		}

		runID := idgenerator.GenerateRunID()
		report, err := runner.Run(c.UserContext(), runID, date)
		if err != nil {
			logger.Error("check failed", zap.String("run_id", runID), zap.Error(err))
			runner.NotifyFailure(c.UserContext(), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "run_id": runID})
		}

		logger.Info(report.Message, zap.String("run_id", runID), zap.String("outcome", string(report.Outcome)))
		return c.JSON(report)
	}
}
