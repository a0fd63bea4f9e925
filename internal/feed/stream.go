package feed

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

// OddsUpdate is a live odds push from the feed backend
type OddsUpdate struct {
	Fighter1 string             `json:"fighter1"`
	Fighter2 string             `json:"fighter2"`
	Odds     models.FighterOdds `json:"odds"`
}

// ReconnectConfig controls stream reconnection behavior
type ReconnectConfig struct {
	MaxRetries        int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
}

// DefaultReconnectConfig returns default reconnection configuration
func DefaultReconnectConfig() ReconnectConfig {
	return ReconnectConfig{
		MaxRetries:        10,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 1.5,
	}
}

// StreamClient subscribes to live odds updates over WebSocket and folds
// them into the feed client's cached fight schedule.
type StreamClient struct {
	url       string
	client    *Client
	reconnect ReconnectConfig
	logger    *logrus.Logger

	mu          sync.Mutex
	conn        *websocket.Conn
	isConnected bool
}

// NewStreamClient creates a live odds stream subscriber
func NewStreamClient(url string, client *Client, logger *logrus.Logger) *StreamClient {
	return &StreamClient{
		url:       url,
		client:    client,
		reconnect: DefaultReconnectConfig(),
		logger:    logger,
	}
}

// Run connects and consumes odds updates until the context is cancelled,
// reconnecting with exponential backoff on connection loss.
func (s *StreamClient) Run(ctx context.Context) {
	backoff := s.reconnect.InitialBackoff
	retries := 0

	for {
		if ctx.Err() != nil {
			return
		}

		if err := s.consume(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			retries++
			if s.reconnect.MaxRetries > 0 && retries > s.reconnect.MaxRetries {
				s.logger.WithError(err).Error("Odds stream gave up reconnecting")
				return
			}
			s.logger.WithError(err).WithField("backoff", backoff).Warn("Odds stream disconnected, reconnecting")

			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}

			backoff = time.Duration(float64(backoff) * s.reconnect.BackoffMultiplier)
			if backoff > s.reconnect.MaxBackoff {
				backoff = s.reconnect.MaxBackoff
			}
			continue
		}

		// clean shutdown
		return
	}
}

func (s *StreamClient) consume(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.isConnected = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isConnected = false
		s.mu.Unlock()
		conn.Close()
	}()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	s.logger.WithField("url", s.url).Info("Odds stream connected")

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		var update OddsUpdate
		if err := json.Unmarshal(message, &update); err != nil {
			s.logger.WithError(err).Debug("Skipping malformed odds update")
			continue
		}

		s.apply(ctx, update)
	}
}

// apply folds an odds update into the cached fight schedule
func (s *StreamClient) apply(ctx context.Context, update OddsUpdate) {
	fights := s.client.Fights(ctx)

	for i := range fights {
		if fights[i].Fighter1 != update.Fighter1 || fights[i].Fighter2 != update.Fighter2 {
			continue
		}

		replaced := false
		for j := range fights[i].Odds {
			if fights[i].Odds[j].Book == update.Odds.Book {
				fights[i].Odds[j] = update.Odds
				replaced = true
				break
			}
		}
		if !replaced {
			fights[i].Odds = append(fights[i].Odds, update.Odds)
		}

		s.client.UpdateFights(fights)
		return
	}
}

// IsConnected reports whether the stream currently holds a connection
func (s *StreamClient) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isConnected
}
