package stream

import (
	"context"

	Logger "github.com/Luismorlan/choirmux/utils/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	// Prefix of every table change topic, followed by the table name.
	TOPIC_TABLE_PREFIX = "table."
	// Sync outcome of every repository write or delete.
	TOPIC_SYNC_OUTCOME = "sync.outcome"
	// Identity provider sign in / sign out.
	TOPIC_AUTH_STATE = "auth.state"

	busOutputBuffer = 100
)

// TableTopic returns the change topic of a cache table.
func TableTopic(table string) string {
	return TOPIC_TABLE_PREFIX + table
}

// Bus is the in-process event bus shared by the cache, the repositories and
// the engine modules. It is a thin wrapper over watermill's go channel pub/sub
// so that a different backend could be swapped in later.
type Bus struct {
	pubsub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{
				OutputChannelBuffer:            busOutputBuffer,
				BlockPublishUntilSubscriberAck: false,
			},
			watermill.NewStdLogger(false, false),
		),
	}
}

// Publish sends payload to every current subscriber of topic. Subscribers
// joining later never see it.
func (b *Bus) Publish(topic string, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return b.pubsub.Publish(topic, msg)
}

// Notify publishes an empty change notice. Failures are logged only, a lost
// notice delays a snapshot but never corrupts data.
func (b *Bus) Notify(topic string) {
	if err := b.Publish(topic, nil); err != nil {
		Logger.Log.WithError(err).Warnf("fail to notify topic %s", topic)
	}
}

// Subscribe returns the messages of topic until ctx is done or the bus is
// closed. Every message must be acked by the receiver.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close closes the bus and every subscription on it. OK to call multiple
// times.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
