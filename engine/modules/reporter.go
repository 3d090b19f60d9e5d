package modules

import (
	"context"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/Luismorlan/choirmux/engine"
	"github.com/Luismorlan/choirmux/stream"
	Logger "github.com/Luismorlan/choirmux/utils/log"
)

const (
	DDOG_SYNC_OUTCOME_COUNTER = "choir.sync.outcome"
)

type ReporterConfig struct {
	Name string
}

// Reporter listens to sync outcomes of the repositories and counts them in
// Datadog, tagged by collection, operation and result.
type Reporter struct {
	engine.Module

	Config ReporterConfig

	Statsd statsd.ClientInterface

	Bus *stream.Bus
}

func NewReporter(config ReporterConfig, statsd statsd.ClientInterface, bus *stream.Bus) *Reporter {
	return &Reporter{
		Config: config,
		Statsd: statsd,
		Bus:    bus,
	}
}

func OutcomeTags(o stream.SyncOutcome) []string {
	return []string{
		"collection:" + o.Collection,
		"op:" + string(o.Op),
		"result:" + o.Result(),
	}
}

// ReportOutcome sends a single sync outcome to Datadog.
func ReportOutcome(o stream.SyncOutcome, client statsd.ClientInterface) {
	if err := client.Incr(DDOG_SYNC_OUTCOME_COUNTER, OutcomeTags(o), 1); err != nil {
		Logger.Log.WithError(err).Infoln("cannot report sync outcome")
	}
}

// RunModule reports every outcome until ctx is done or the bus is closed.
func (r *Reporter) RunModule(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := r.Bus.Subscribe(ctx, stream.TOPIC_SYNC_OUTCOME)
	if err != nil {
		return err
	}

	for msg := range messages {
		msg.Ack()

		outcome, err := stream.ParseOutcome(msg.Payload)
		if err != nil {
			Logger.Log.WithError(err).Errorln("drop malformed sync outcome")
			continue
		}
		ReportOutcome(outcome, r.Statsd)
	}

	return nil
}

func (r *Reporter) Name() string {
	return r.Config.Name
}

func (r *Reporter) Shutdown() {
	if err := r.Statsd.Flush(); err != nil {
		Logger.Log.WithError(err).Warnln("fail to flush statsd")
	}
	Logger.Log.Infoln("module ", r.Config.Name, " gracefully shutdown")
}
