// Package token generates redemption tokens handed out on payment validation.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const prefix = "EL"

// Generate returns new redemption token, e.g. "EL-583920-9F3C1A".
// The token is short enough to type by hand; uniqueness is enforced by
// the orders store, callers must retry when insertion reports a conflict.
func Generate() string {
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	buf := make([]byte, 3)
	// rand.Read never returns an error on supported platforms
	rand.Read(buf)

	return fmt.Sprintf("%s-%s-%s", prefix, millis, strings.ToUpper(hex.EncodeToString(buf)))
}
