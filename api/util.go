package api

import (
	"fmt"
)

// wrapError serializes the error into the JSON error envelope returned
// by every failing endpoint.
func wrapError(err error) string {
	return fmt.Sprintf(`{"error": "%s"}`, err)
}
