package main

import (
	"fmt"
	"os"
	"time"

	"github.com/raksitnongbua/office-bot/configs"
	"github.com/raksitnongbua/office-bot/internal/core/auth/session"
	"github.com/raksitnongbua/office-bot/internal/core/usecase/checkin"
	"github.com/raksitnongbua/office-bot/internal/core/usecase/notify"
	"github.com/raksitnongbua/office-bot/internal/core/usecase/timer"
	"github.com/raksitnongbua/office-bot/internal/repository/pult"
	"github.com/raksitnongbua/office-bot/internal/repository/roomimage"
	"github.com/raksitnongbua/office-bot/internal/repository/slack"
	"go.uber.org/zap"
)

type app struct {
	checker *checkin.Checker
	today   func() string
	ready   func() error
}

// newApp wires the repositories and use cases from conf. Nothing here talks
// to the network yet.
func newApp(conf configs.Config, dryRun bool, logger *zap.Logger) (*app, error) {
	loc, err := conf.Location()
	if err != nil {
		return nil, err
	}
	images, err := roomimage.Load(conf.ImagesDir, conf.RoomImagesPath)
	if err != nil {
		return nil, err
	}

	var poster notify.Poster = notify.Discard{Logger: logger}
	if !dryRun {
		poster = slack.NewClient(conf.SlackBotToken, conf.SlackChannel, logger)
	}
	notifier := notify.NewNotifier(poster, conf.UploadFallbackText, logger)

	token, err := session.Inspect(conf.AuthToken)
	if err != nil {
		// opaque tokens are fine, we just cannot check their expiry
		logger.Debug("auth token is not a JWT", zap.Error(err))
		token = nil
	} else {
		logger.Debug("auth token", zap.String("subject", token.Subject), zap.Time("expires", token.Expiry))
		if token.ExpiresWithin(time.Now(), 24*time.Hour) {
			logger.Warn("auth token expires soon", zap.Time("expires", token.Expiry))
		}
	}

	api := pult.NewClient(conf.APIURL, conf.AuthToken, conf.APITimeout, logger)
	checker := checkin.NewChecker(
		checkin.RoomFile(conf.RoomDefinitionPath),
		api,
		api,
		images,
		notifier,
		checkin.Options{
			NotifyOnError:      conf.NotifyOnError,
			NotifyWorkFromHome: conf.NotifyWorkFromHome,
			Token:              token,
		},
		logger,
	)

	return &app{
		checker: checker,
		today: func() string {
			return timer.Today(time.Now, loc)
		},
		ready: roomFileReady(conf.RoomDefinitionPath),
	}, nil
}

// roomFileReady reports whether the room definition can still be read; the
// file is loaded on every check.
func roomFileReady(path string) func() error {
	return func() error {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		return nil
	}
}
