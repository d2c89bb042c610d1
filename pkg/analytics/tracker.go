package analytics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the public Measurement Protocol collector.
const DefaultEndpoint = "https://www.google-analytics.com/collect"

// Event describes a single collector hit.
type Event struct {
	Category  string // ec: movie genre or "Unknown"
	Action    string // ea: endpoint label
	Label     string // el
	Value     int    // ev
	Dimension string // cd1: movie title
	Metric    int    // cm1
}

// Tracker fires best-effort events at an analytics collector. Delivery is
// at most one attempt; failures are logged, never surfaced or retried.
type Tracker struct {
	TrackingID string
	Endpoint   string
	Timeout    time.Duration
	Client     *http.Client
	Logger     *logrus.Logger
}

func NewTracker(trackingID, endpoint string, timeout time.Duration, logger *logrus.Logger) *Tracker {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Tracker{
		TrackingID: trackingID,
		Endpoint:   endpoint,
		Timeout:    timeout,
		Client:     &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// Track sends one event hit. A fresh random client id is generated per call.
func (t *Tracker) Track(ctx context.Context, ev Event) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.Endpoint, nil)
	if err != nil {
		return err
	}
	q := req.URL.Query()
	q.Set("v", "1")
	q.Set("tid", t.TrackingID)
	q.Set("cid", uuid.NewString())
	q.Set("t", "event")
	q.Set("ec", ev.Category)
	q.Set("ea", ev.Action)
	q.Set("el", ev.Label)
	q.Set("ev", strconv.Itoa(ev.Value))
	q.Set("cd1", ev.Dimension)
	q.Set("cm1", strconv.Itoa(ev.Metric))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := t.Client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("collector returned status %d", resp.StatusCode)
	}
	return nil
}

// TrackAsync dispatches the event on its own goroutine with its own timeout
// and error boundary. Callers never wait on it; if the process exits before
// the hit lands, the event is lost.
func (t *Tracker) TrackAsync(ev Event) {
	if t == nil || t.TrackingID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.Timeout)
		defer cancel()
		if err := t.Track(ctx, ev); err != nil {
			if t.Logger != nil {
				t.Logger.WithError(err).Warn("analytics event dropped")
			}
			return
		}
		if t.Logger != nil {
			t.Logger.WithFields(logrus.Fields{"category": ev.Category, "dimension": ev.Dimension}).Debug("analytics event tracked")
		}
	}()
}
