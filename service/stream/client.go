package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/brojonat/blockpulse/gen/geyser"
	"github.com/brojonat/blockpulse/service/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ErrReconnectExhausted is returned by Subscription.Err when the client
// gave up after the configured number of consecutive reconnect attempts.
var ErrReconnectExhausted = errors.New("stream: consecutive reconnect attempts exhausted")

// Dialer establishes one geyser connection. The returned closer tears
// the connection down; one connection is held per subscription attempt.
type Dialer func(ctx context.Context) (geyser.GeyserClient, io.Closer, error)

// GRPCDialer returns a Dialer that connects to the given gRPC endpoint.
func GRPCDialer(endpoint string) Dialer {
	return func(ctx context.Context) (geyser.GeyserClient, io.Closer, error) {
		conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to geyser endpoint: %w", err)
		}
		return geyser.NewGeyserClient(conn), conn, nil
	}
}

// Config holds the connection-health knobs for the stream client.
type Config struct {
	// LivenessWindow is how long the client waits for a Ping before
	// treating the connection as dead and reconnecting.
	LivenessWindow time.Duration

	// BackoffBase and BackoffCap bound the exponential reconnect backoff.
	BackoffBase time.Duration
	BackoffCap  time.Duration

	// MaxReconnectAttempts is the number of consecutive failed
	// connection attempts tolerated before the subscription surfaces a
	// fatal error. The counter resets on every successful receive.
	MaxReconnectAttempts int
}

// Client owns the long-lived geyser subscription. It reconnects with
// capped exponential backoff and enforces ping liveness; events lost
// across a disconnect are not replayed.
type Client struct {
	dial    Dialer
	cfg     Config
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewClient creates a stream client. If m is nil, no metrics are recorded.
func NewClient(dial Dialer, cfg Config, m *metrics.Metrics, logger *slog.Logger) *Client {
	return &Client{
		dial:    dial,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}
}

// Subscription is a lazy sequence of decoded update events. Updates is
// closed when the subscription terminates; Err reports why.
type Subscription struct {
	updates chan UpdateEvent
	err     error
}

// Updates returns the event channel. The channel is closed on terminal
// failure or context cancellation, never silently abandoned.
func (s *Subscription) Updates() <-chan UpdateEvent {
	return s.updates
}

// Err reports the terminal error. Only valid after Updates is closed.
// A clean, caller-initiated shutdown reports the context error.
func (s *Subscription) Err() error {
	return s.err
}

// Subscribe establishes the subscription and starts the receive loop.
// The request must carry at least one filter variant; an empty filter
// set would yield nothing and is rejected up front.
func (c *Client) Subscribe(ctx context.Context, req *geyser.SubscribeRequest) (*Subscription, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	sub := &Subscription{updates: make(chan UpdateEvent)}
	go c.run(ctx, req, sub)
	return sub, nil
}

func validateRequest(req *geyser.SubscribeRequest) error {
	if req == nil || len(req.GetFilters()) == 0 {
		return fmt.Errorf("subscribe request must set at least one filter")
	}
	for i, f := range req.GetFilters() {
		if f.GetFilter() == nil {
			return fmt.Errorf("filter %d has no variant set", i)
		}
	}
	return nil
}

// run drives connect/receive/reconnect until the context is canceled or
// reconnect attempts are exhausted.
func (c *Client) run(ctx context.Context, req *geyser.SubscribeRequest, sub *Subscription) {
	defer close(sub.updates)

	attempts := 0
	for {
		if ctx.Err() != nil {
			sub.err = ctx.Err()
			return
		}

		err := c.receiveOnce(ctx, req, sub)
		if ctx.Err() != nil {
			sub.err = ctx.Err()
			return
		}

		// A connection that delivered events earns back a fresh
		// reconnect budget; only consecutive dead attempts count.
		if c.healthySince(err) {
			attempts = 0
		}
		attempts++
		if c.metrics != nil {
			c.metrics.RecordStreamReconnect(reasonOf(err))
		}
		if attempts >= c.cfg.MaxReconnectAttempts {
			c.logger.ErrorContext(ctx, "stream reconnect attempts exhausted",
				"attempts", attempts,
				"error", err,
			)
			sub.err = fmt.Errorf("%w after %d attempts: %v", ErrReconnectExhausted, attempts, err)
			return
		}

		backoff := c.backoff(attempts)
		c.logger.WarnContext(ctx, "stream disconnected, reconnecting",
			"attempt", attempts,
			"backoff", backoff,
			"error", err,
		)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			sub.err = ctx.Err()
			return
		}
	}
}

// healthySince reports whether the last connection delivered at least
// one event before dying, which resets the consecutive-failure budget.
func (c *Client) healthySince(err error) bool {
	var h *hadTrafficError
	return errors.As(err, &h)
}

// hadTrafficError wraps a disconnect error on a connection that had
// delivered events, distinguishing it from a connect-time failure.
type hadTrafficError struct{ err error }

func (e *hadTrafficError) Error() string { return e.err.Error() }
func (e *hadTrafficError) Unwrap() error { return e.err }

// receiveOnce dials, subscribes, and pumps events until the connection
// dies, the ping liveness window lapses, or the context is canceled.
func (c *Client) receiveOnce(ctx context.Context, req *geyser.SubscribeRequest, sub *Subscription) error {
	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	client, closer, err := c.dial(connCtx)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer closer.Close()

	stream, err := client.Subscribe(connCtx, req)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	c.logger.InfoContext(ctx, "subscribed to geyser stream")

	type recvResult struct {
		update *geyser.SubscribeUpdate
		err    error
	}
	recvCh := make(chan recvResult)
	go func() {
		for {
			u, err := stream.Recv()
			select {
			case recvCh <- recvResult{update: u, err: err}:
			case <-connCtx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	liveness := time.NewTimer(c.cfg.LivenessWindow)
	defer liveness.Stop()

	delivered := false
	wrap := func(err error) error {
		if delivered {
			return &hadTrafficError{err: err}
		}
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-liveness.C:
			c.logger.WarnContext(ctx, "no ping within liveness window",
				"window", c.cfg.LivenessWindow,
			)
			return wrap(fmt.Errorf("no ping within %s", c.cfg.LivenessWindow))

		case res := <-recvCh:
			if res.err != nil {
				return wrap(fmt.Errorf("recv: %w", res.err))
			}

			ev, err := Decode(res.update, time.Now())
			if err != nil {
				// Malformed update: skip the event, keep the stream.
				c.logger.WarnContext(ctx, "skipping malformed update", "error", err)
				if c.metrics != nil {
					c.metrics.RecordStreamDecodeError()
				}
				continue
			}
			delivered = true
			if c.metrics != nil {
				c.metrics.RecordStreamEvent(string(ev.Kind))
			}
			if ev.Kind == KindPing {
				if !liveness.Stop() {
					select {
					case <-liveness.C:
					default:
					}
				}
				liveness.Reset(c.cfg.LivenessWindow)
			}

			select {
			case sub.updates <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// backoff computes the capped exponential delay for the nth consecutive
// failed attempt (1-based).
func (c *Client) backoff(attempt int) time.Duration {
	d := c.cfg.BackoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= c.cfg.BackoffCap {
			return c.cfg.BackoffCap
		}
	}
	if d > c.cfg.BackoffCap {
		return c.cfg.BackoffCap
	}
	return d
}

func reasonOf(err error) string {
	switch {
	case err == nil:
		return "eof"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline"
	default:
		return "error"
	}
}
