package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// ErrWSUnavailable marks a confirmation attempt that failed before the
// subscription was established. Callers can fall back to status polling;
// errors after the subscribe (including transaction failures) never carry it.
var ErrWSUnavailable = errors.New("websocket endpoint unavailable")

// WSConfirmerConfig configures the confirmation WebSocket client.
type WSConfirmerConfig struct {
	// HandshakeTimeout bounds the WebSocket dial.
	HandshakeTimeout time.Duration
	// ReadTimeout is timeout for reading messages.
	ReadTimeout time.Duration
	// WriteTimeout is timeout for writing messages.
	WriteTimeout time.Duration
}

// DefaultWSConfirmerConfig returns default configuration.
func DefaultWSConfirmerConfig() WSConfirmerConfig {
	return WSConfirmerConfig{
		HandshakeTimeout: 10 * time.Second,
		ReadTimeout:      90 * time.Second,
		WriteTimeout:     10 * time.Second,
	}
}

// WSConfirmer implements Confirmer over signatureSubscribe. A fresh
// connection is dialed per confirmation; the subscription fires exactly once
// when the signature reaches the requested commitment, so there is no
// resubscribe or reconnect machinery here.
type WSConfirmer struct {
	endpoint string
	config   WSConfirmerConfig
}

// NewWSConfirmer creates a confirmation client for a WebSocket endpoint.
func NewWSConfirmer(endpoint string, config *WSConfirmerConfig) *WSConfirmer {
	cfg := DefaultWSConfirmerConfig()
	if config != nil {
		cfg = *config
	}
	return &WSConfirmer{endpoint: endpoint, config: cfg}
}

type wsRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type wsMessage struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
	Method string          `json:"method"`
	Params *struct {
		Result struct {
			Value struct {
				Err interface{} `json:"err"`
			} `json:"value"`
		} `json:"result"`
		Subscription int64 `json:"subscription"`
	} `json:"params"`
}

// WaitForSignature subscribes to the signature and blocks until the
// notification arrives, the transaction fails, or ctx expires.
func (c *WSConfirmer) WaitForSignature(ctx context.Context, signature string, commitment string) error {
	dialer := websocket.Dialer{HandshakeTimeout: c.config.HandshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrWSUnavailable, c.endpoint, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(deadline)
	} else {
		conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
	}

	req := wsRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "signatureSubscribe",
		Params: []interface{}{
			signature,
			map[string]string{"commitment": commitment},
		},
	}

	conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
	if err := conn.WriteJSON(req); err != nil {
		return fmt.Errorf("signature subscribe: %w", err)
	}

	// The subscription confirmation and the notification may arrive in
	// either order relative to ping frames; read until the notification.
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read notification: %w", err)
		}

		if msg.Error != nil {
			return msg.Error
		}
		if msg.Method != "signatureNotification" || msg.Params == nil {
			continue
		}
		if txErr := msg.Params.Result.Value.Err; txErr != nil {
			return fmt.Errorf("transaction failed: %v", txErr)
		}
		return nil
	}
}

// FallbackConfirmer tries the primary confirmer first and retries the wait
// on the fallback when the primary could not be reached at all. A
// transaction failure or timeout from the primary is final.
type FallbackConfirmer struct {
	primary  Confirmer
	fallback Confirmer
}

// NewFallbackConfirmer chains two confirmers.
func NewFallbackConfirmer(primary, fallback Confirmer) *FallbackConfirmer {
	return &FallbackConfirmer{primary: primary, fallback: fallback}
}

// WaitForSignature delegates to the primary, falling back only on
// ErrWSUnavailable.
func (c *FallbackConfirmer) WaitForSignature(ctx context.Context, signature string, commitment string) error {
	err := c.primary.WaitForSignature(ctx, signature, commitment)
	if errors.Is(err, ErrWSUnavailable) {
		return c.fallback.WaitForSignature(ctx, signature, commitment)
	}
	return err
}

// PollingConfirmer implements Confirmer by polling getSignatureStatuses.
// Used as fallback when the WebSocket endpoint is unreachable.
type PollingConfirmer struct {
	client   Client
	interval time.Duration
}

// NewPollingConfirmer creates a polling confirmer with the given interval.
func NewPollingConfirmer(client Client, interval time.Duration) *PollingConfirmer {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &PollingConfirmer{client: client, interval: interval}
}

// WaitForSignature polls until the signature reaches the commitment or ctx
// expires.
func (p *PollingConfirmer) WaitForSignature(ctx context.Context, signature string, commitment string) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		statuses, err := p.client.GetSignatureStatuses(ctx, signature)
		if err != nil {
			return err
		}
		if len(statuses) > 0 && statuses[0] != nil {
			status := statuses[0]
			if status.Err != nil {
				return fmt.Errorf("transaction failed: %v", status.Err)
			}
			if reached(status.ConfirmationStatus, commitment) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// reached reports whether got satisfies the wanted commitment level.
func reached(got, want string) bool {
	rank := map[string]int{
		CommitmentProcessed: 1,
		CommitmentConfirmed: 2,
		CommitmentFinalized: 3,
	}
	g, w := rank[got], rank[want]
	return g > 0 && w > 0 && g >= w
}
