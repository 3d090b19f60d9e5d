package stream

import (
	"encoding/json"

	Logger "github.com/Luismorlan/choirmux/utils/log"
)

type SyncOp string

const (
	SyncOpWrite  SyncOp = "write"
	SyncOpDelete SyncOp = "delete"
)

// SyncOutcome describes the result of one repository write or delete.
type SyncOutcome struct {
	Collection string `json:"collection"`
	Id         string `json:"id"`
	Op         SyncOp `json:"op"`
	// Remote is true once the document store accepted the change, even if the
	// cache mirror failed afterwards.
	Remote  bool   `json:"remote"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Result is the metric tag value of the outcome.
func (o SyncOutcome) Result() string {
	switch {
	case o.Success:
		return "ok"
	case o.Remote:
		return "mirror_failed"
	default:
		return "remote_failed"
	}
}

// PublishOutcome publishes o on TOPIC_SYNC_OUTCOME. Failure is logged only.
func (b *Bus) PublishOutcome(o SyncOutcome) {
	payload, err := json.Marshal(o)
	if err != nil {
		Logger.Log.WithError(err).Error("fail to encode sync outcome")
		return
	}
	if err := b.Publish(TOPIC_SYNC_OUTCOME, payload); err != nil {
		Logger.Log.WithError(err).Warn("fail to publish sync outcome")
	}
}

func ParseOutcome(payload []byte) (SyncOutcome, error) {
	var o SyncOutcome
	err := json.Unmarshal(payload, &o)
	return o, err
}
