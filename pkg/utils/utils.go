package utils

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ExportFileName(t time.Time) string
}

type utils struct {
}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ExportFileName is the date-stamped suggested download name for a
// transcript export.
func (u *utils) ExportFileName(t time.Time) string {
	return fmt.Sprintf("chat-export-%s.json", t.Format("2006-01-02"))
}
