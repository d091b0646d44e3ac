package utils

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

// NewULIDFromTimestamp draws from the process wide monotonic entropy, so ids
// made within the same millisecond still sort in creation order.
func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)

	id, err := ulid.New(ms, ulid.DefaultEntropy())
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
