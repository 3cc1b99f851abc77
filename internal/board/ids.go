package board

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	columnIDPrefix = "col"
	taskIDPrefix   = "task"
)

// NewID returns prefix-<uuidv7>. V7 ids sort by creation time and carry a random tail,
// so they are unique without consulting the current snapshot.
func NewID(prefix string) string {
	if u, err := uuid.NewV7(); err == nil {
		return prefix + "-" + u.String()
	}
	return fallbackID(prefix, time.Now())
}

// fallbackID is prefix-<unixms>-<8 chars base32>, used only if the uuid source fails.
func fallbackID(prefix string, now time.Time) string {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%s-%d", prefix, now.UnixNano())
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix)
}
