package events

//go:generate go run go.uber.org/mock/mockgen -source=./booking.go -destination=./mocks/booking_mock.go -package=mocks

import (
	"context"
	"fmt"
	"minihotel/config"
	"minihotel/infras/kafka"
	"minihotel/infras/otel"
	"minihotel/shared/constant"
	"minihotel/shared/timezone"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingUpdated   = "booking.updated"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingCompleted = "booking.completed"
)

// BookingEvent is the payload published to the booking events topic after
// every lifecycle mutation. Consumers key on the booking identifier.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  int       `json:"booking_id"`
	CustomerID int       `json:"customer_id"`
	RoomID     int       `json:"room_id"`
	Status     int       `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type BookingPublisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

type bookingPublisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewBookingPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) BookingPublisher {
	return &bookingPublisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *bookingPublisherImpl) PublishBookingEvent(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBookingEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	scope.SetAttributes(map[string]any{
		"event_type": event.Type,
		"booking_id": event.BookingID,
	})

	message := kafka.Message{
		Key:   strconv.Itoa(event.BookingID),
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.Topics.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("type", event.Type).Int("bookingID", event.BookingID).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
