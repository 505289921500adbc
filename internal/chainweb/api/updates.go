package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// updatesPrefixLen is the length of "event:BlockHeader\ndata:" preceding the
// JSON body of every updates event.
const updatesPrefixLen = 23

const maxEventSize = 4 << 20

var errShortEvent = errors.New("event shorter than its prefix")

// HeaderUpdates opens the header updates stream and calls handle for every
// head until the stream ends or ctx is canceled. Events that cannot be parsed
// go to invalid and the stream continues. A stream closed by the node returns
// nil.
func (c *Client) HeaderUpdates(ctx context.Context, handle func(model.NewHead), invalid func(error)) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.Observe(opHeaderUpdates, err, start)
	}()

	url := c.endpoint("/header/updates")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	c.limiter.Take()
	res, err := c.stream.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return &StatusError{Method: http.MethodGet, URL: url, StatusCode: res.StatusCode, Body: truncate(data, maxErrorBody)}
	}

	if err := scanHeads(res.Body, handle, invalid); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("read header updates: %w", err)
	}
	return ctx.Err()
}

func scanHeads(r io.Reader, handle func(model.NewHead), invalid func(error)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), maxEventSize)
	scanner.Split(splitEvents)

	for scanner.Scan() {
		event := bytes.TrimLeft(scanner.Bytes(), "\r\n")
		if len(event) == 0 || event[0] == ':' {
			continue
		}
		head, err := parseNewHead(event)
		if err != nil {
			invalid(err)
			continue
		}
		handle(head)
	}
	return scanner.Err()
}

func parseNewHead(event []byte) (model.NewHead, error) {
	if len(event) < updatesPrefixLen {
		return model.NewHead{}, errShortEvent
	}
	var head model.NewHead
	if err := json.Unmarshal(event[updatesPrefixLen:], &head); err != nil {
		return model.NewHead{}, fmt.Errorf("parse new head: %w", err)
	}
	return head, nil
}

// splitEvents is a bufio.SplitFunc yielding blank-line separated events.
func splitEvents(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.Index(data, []byte("\n\n")); i >= 0 {
		return i + 2, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
