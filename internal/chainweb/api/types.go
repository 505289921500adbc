package api

import (
	"net/http"
	"time"
)

type (
	// HTTPDoer sends a prepared request.
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}

	// Metrics observes API operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveRetry(operation string)
	}
)
