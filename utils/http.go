// utils/http.go
package utils

import (
	"net/http"
	"time"
)

// HTTPClient is shared by the outbound REST clients (identity provider, stats
// provider). One timeout for all of them; nothing here streams large bodies.
var HTTPClient = &http.Client{
	Timeout: 10 * time.Second,
}
