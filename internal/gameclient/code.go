package gameclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateCode synthesizes a game code of the form
// <millisecond-timestamp>_<8 hex chars>. Purely local, never fails; the random
// suffix keeps codes generated within the same millisecond distinct.
func GenerateCode() string {
	timestamp := time.Now().UnixMilli()
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%d_%s", timestamp, suffix)
}
