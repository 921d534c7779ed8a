package activity_test

import (
	"context"
	"errors"
	"testing"

	"fyyur/internal/activity"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)

	event := activity.NewEvent(activity.EventVenueCreated, activity.EntityVenue, 3, "Park Square Live Music & Coffee")

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "fyyur.listings" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "venue:3" {
			return errors.New("unexpected key " + string(key))
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		got, err := activity.FromJSON(value)
		if err != nil {
			return err
		}
		if got.ID != event.ID || got.Type != activity.EventVenueCreated || got.Name != event.Name {
			return errors.New("payload mismatch")
		}
		return nil
	})

	pub := activity.NewKafkaPublisherWithProducer(producer, "fyyur.listings")
	require.NoError(t, pub.Publish(context.Background(), event))
	require.NoError(t, pub.Close())
}

func TestKafkaPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := activity.NewKafkaPublisherWithProducer(producer, "fyyur.listings")
	err := pub.Publish(context.Background(), activity.NewEvent(activity.EventShowCreated, activity.EntityShow, 1, ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, pub.Close())
}

type recordingPublisher struct {
	events []activity.ListingEvent
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, e activity.ListingEvent) error {
	r.events = append(r.events, e)
	return r.err
}

func (r *recordingPublisher) Close() error { return nil }

func TestNotify(t *testing.T) {
	rec := &recordingPublisher{err: errors.New("broker down")}

	assert.NotPanics(t, func() {
		activity.Notify(context.Background(), rec, activity.NewEvent(activity.EventArtistUpdated, activity.EntityArtist, 2, "Matt Quevedo"))
		activity.Notify(context.Background(), nil, activity.NewEvent(activity.EventArtistUpdated, activity.EntityArtist, 2, "Matt Quevedo"))
	})
	require.Len(t, rec.events, 1)
	assert.Equal(t, "artist:2", rec.events[0].PartitionKey())

	assert.NoError(t, activity.NopPublisher{}.Publish(context.Background(), rec.events[0]))
}
