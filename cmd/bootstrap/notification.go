package bootstrap

import (
	"context"
	"log/slog"

	"badminton-club/internal/infra/notification"
	"badminton-club/internal/pkg/config"
	"badminton-club/internal/usecase/notifications"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewEmailSender,
	),
)

func NewEmailSender(cfg config.Config, logger *slog.Logger) (notifications.Sender, error) {
	if cfg.Notification.FromEmail == "" {
		logger.Info("SES送信元が未設定のため、メールはログに出力します")
		return notification.NewLogSender(logger), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Notification.Region),
	)
	if err != nil {
		return nil, err
	}
	return notification.NewSESSender(sesv2.NewFromConfig(awsCfg), cfg.Notification.FromEmail), nil
}
