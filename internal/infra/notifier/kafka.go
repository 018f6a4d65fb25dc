package notifier

import (
	"context"
	"encoding/json"
	"log/slog"

	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/domain/refund"
	"commerce-order-core/internal/pkg/config"
	"commerce-order-core/internal/pkg/errs"
	"commerce-order-core/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaRefundNotifier struct {
	writer messageWriter
}

var _ shared.RefundNotifier = (*KafkaRefundNotifier)(nil)

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.RefundTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           cfg.WriteTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaRefundNotifier(writer messageWriter) *KafkaRefundNotifier {
	return &KafkaRefundNotifier{writer: writer}
}

// NotifyRefund publishes one message keyed by purchase id so events for the
// same purchase land on the same partition.
func (n *KafkaRefundNotifier) NotifyRefund(ctx context.Context, p *purchase.Purchase, r *refund.Refund) error {
	payload, err := json.Marshal(newRefundEvent(p, r))
	if err != nil {
		return errs.Wrap(err, "failed to marshal refund event")
	}

	msg := kafka.Message{
		Key:   []byte(p.ID().String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeRefundApproved)},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to publish refund event for purchase %s", p.ID())
	}

	slog.DebugContext(ctx, "refund event published",
		slog.String("purchase_id", p.ID().String()),
		slog.String("refund_id", r.ID().String()))
	return nil
}

func (n *KafkaRefundNotifier) Close() error {
	return n.writer.Close()
}
