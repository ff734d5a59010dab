package request

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// sanitize strips every HTML element from user text. The result stays HTML escaped.
func sanitize(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
