package components

import (
	"context"
	"log/slog"

	"commerce-order-core/internal/infra/notifier"
	"commerce-order-core/internal/pkg/config"
	"commerce-order-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewRefundNotifier,
	),
)

// NewRefundNotifier publishes to Kafka when brokers are configured and falls
// back to logging otherwise.
func NewRefundNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.RefundNotifier {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("refund notifier ready", "sink", "log")
		return notifier.NewLogRefundNotifier()
	}

	n := notifier.NewKafkaRefundNotifier(notifier.NewKafkaWriter(cfg.Kafka))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	logger.Info("refund notifier ready", "sink", "kafka",
		"brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.RefundTopic)
	return n
}
