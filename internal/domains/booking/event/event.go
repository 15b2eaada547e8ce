package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=booking_event_mocks

import (
	"context"
	"fmt"
	"parish/config"
	"parish/infras/kafka"
	"parish/infras/otel"
	"parish/internal/domains/booking/model"
	"parish/shared/constant"
	"parish/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// StatusChanged is published whenever a booking leaves the pending state so
// downstream consumers (notification sender, reporting) can react.
type StatusChanged struct {
	BookingID     string       `json:"booking_id"`
	TransactionID string       `json:"transaction_id"`
	Sacrament     string       `json:"sacrament"`
	Status        model.Status `json:"status"`
	PriestName    *string      `json:"priest_name,omitempty"`
	Email         string       `json:"email"`
	OccurredAt    time.Time    `json:"occurred_at"`
}

type Publisher interface {
	PublishStatusChanged(ctx context.Context, booking model.Booking) error
}

type publisherImpl struct {
	client kafka.Client
	config *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, config *config.Config, otl otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		config: config,
		otel:   otl,
	}
}

func (p *publisherImpl) PublishStatusChanged(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, "publish_booking_status_changed")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := StatusChanged{
		BookingID:     booking.ID,
		TransactionID: booking.TransactionID,
		Sacrament:     string(booking.Sacrament),
		Status:        booking.Status,
		PriestName:    booking.PriestName,
		Email:         booking.Email,
		OccurredAt:    timezone.Now(),
	}

	message := kafka.Message{
		Key:   booking.TransactionID,
		Value: payload,
	}

	err = p.client.SendMessages(ctx, p.config.Kafka.Topic.BookingStatus, message)
	if err != nil {
		log.Error().Err(err).Str("transaction_id", booking.TransactionID).Msg("failed to publish booking status change")

		return fmt.Errorf("failed to publish booking status change: %w", err)
	}

	return nil
}
