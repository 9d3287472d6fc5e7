//go:build unit

package broadcast_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gym-booking/internal/infra/broadcast"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakePublisher struct {
	channel string
	message any
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message any) *redis.IntCmd {
	f.channel = channel
	f.message = message
	cmd := redis.NewIntCmd(context.Background())
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestEncode(t *testing.T) {
	frame, err := broadcast.Encode("bookings", "created", map[string]string{"firstName": "Mario"})
	require.NoError(t, err)

	var msg broadcast.Message
	require.NoError(t, json.Unmarshal(frame, &msg))
	assert.Equal(t, "bookings", msg.Channel)
	assert.Equal(t, "created", msg.Event)
	assert.JSONEq(t, `{"firstName":"Mario"}`, string(msg.Payload))
}

func TestRedisBroadcaster_Publish(t *testing.T) {
	t.Run("publishes prefixed channel", func(t *testing.T) {
		pub := &fakePublisher{}
		b := broadcast.NewRedisBroadcaster(pub)

		err := b.Publish(context.Background(), "calendar", "refresh", struct{}{})

		require.NoError(t, err)
		assert.Equal(t, broadcast.ChannelPrefix+"calendar", pub.channel)
		frame, ok := pub.message.([]byte)
		require.True(t, ok)
		assert.JSONEq(t, `{"channel":"calendar","event":"refresh","payload":{}}`, string(frame))
	})

	t.Run("surfaces redis failure", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("connection refused")}
		b := broadcast.NewRedisBroadcaster(pub)

		err := b.Publish(context.Background(), "bookings", "deleted", struct{}{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("rejects unencodable payload", func(t *testing.T) {
		b := broadcast.NewRedisBroadcaster(&fakePublisher{})

		err := b.Publish(context.Background(), "bookings", "created", make(chan int))

		require.Error(t, err)
	})
}

func TestHub_DeliversToWebsocketClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var observed atomic.Int64
	hub := broadcast.NewHub(discardLogger(), broadcast.WithClientCountObserver(func(n int) {
		observed.Store(int64(n))
	}))
	go hub.Run(ctx)

	upgrader := broadcast.NewUpgrader(discardLogger(), nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = upgrader.Serve(hub, w, r)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(1), observed.Load())

	require.NoError(t, broadcast.NewLocalBroadcaster(hub).Publish(ctx, "bookings", "created", map[string]int{"n": 1}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"channel":"bookings","event":"created","payload":{"n":1}}`, string(data))

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestUpgrader_RejectsForeignOrigin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := broadcast.NewHub(discardLogger())
	go hub.Run(ctx)

	upgrader := broadcast.NewUpgrader(discardLogger(), []string{"http://studio.example"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = upgrader.Serve(hub, w, r)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header = http.Header{"Origin": []string{"http://studio.example"}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	_ = conn.Close()
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := broadcast.NewHub(discardLogger())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	hub.Broadcast([]byte(`{}`))
	assert.Equal(t, 0, hub.ClientCount())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
}
