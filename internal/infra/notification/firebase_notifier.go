package notification

import (
	"context"
	"fmt"
	"strconv"

	"pluvio/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// firebaseNotifier pushes triggered rain actions to devices subscribed to an
// FCM topic.
type firebaseNotifier struct {
	client *messaging.Client
	topic  string
}

// NewFirebaseNotifier creates a new Firebase-backed notifier instance
func NewFirebaseNotifier(ctx context.Context, credentialsPath, topic string) (service.Notifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseNotifier{
		client: client,
		topic:  topic,
	}, nil
}

// Notify sends the rain action as a topic push notification.
func (s *firebaseNotifier) Notify(ctx context.Context, event *service.RainEvent) error {
	message := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: "Rain alert: " + event.Location,
			Body:  event.Message,
		},
		Data: map[string]string{
			"location":    event.Location,
			"date":        event.Date,
			"probability": strconv.Itoa(event.Probability),
		},
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
