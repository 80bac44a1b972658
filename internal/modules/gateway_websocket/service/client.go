package service

import (
	"context"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"unwind_bot/internal/modules/config"
	healthsvc "unwind_bot/internal/modules/health/service"
	"unwind_bot/pkg/logger"
)

const (
	pingInterval = 10 * time.Second
	readTimeout  = 30 * time.Second
	redialDelay  = 5 * time.Second
)

// Client keeps a live subscription to the gateway's event stream. It is
// observability plumbing only: events go to the log and to health state, the
// engine never reads them.
type Client struct {
	cfg    *config.Config
	state  *healthsvc.State
	dialer *websocket.Dialer
}

func NewClient(cfg *config.Config, state *healthsvc.State) *Client {
	return &Client{
		cfg:    cfg,
		state:  state,
		dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

type subscribeMsg struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

type eventMsg struct {
	Topic      string `json:"topic"`
	EventType  string `json:"event_type"`
	ContractID string `json:"contract_id,omitempty"`
}

// Run dials, reads until the connection drops, then redials until ctx ends.
func (c *Client) Run(ctx context.Context) {
	for {
		if err := c.connect(ctx); err != nil {
			logger.Warn("gateway websocket: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(redialDelay):
		}
	}
}

func (c *Client) connect(ctx context.Context) error {
	u := c.cfg.Websocket.URL + "?api_key=" + url.QueryEscape(c.cfg.Gateway.APIKey)
	conn, _, err := c.dialer.DialContext(ctx, u, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	c.state.SetWSConnected(true)
	defer c.state.SetWSConnected(false)

	for _, topic := range c.cfg.Websocket.Topics {
		if err := conn.WriteJSON(subscribeMsg{Action: "subscribe", Topic: topic}); err != nil {
			return err
		}
	}
	logger.Info("gateway websocket connected, %d topic(s)", len(c.cfg.Websocket.Topics))

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	pingCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-pingCtx.Done():
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
					_ = conn.Close()
					return
				}
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		var ev eventMsg
		if err := sonic.Unmarshal(raw, &ev); err != nil {
			logger.Warn("gateway websocket: unreadable event: %v", err)
			continue
		}
		logger.Info("market event: topic=%s type=%s contract=%s", ev.Topic, ev.EventType, ev.ContractID)
	}
}
