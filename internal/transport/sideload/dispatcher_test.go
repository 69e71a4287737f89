package sideload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nulzo/ai-gateway/internal/core/domain"
)

// runLines feeds input through a dispatcher and returns the decoded
// response lines.
func runLines(t *testing.T, d *Dispatcher, input string) []Response {
	t.Helper()

	var out bytes.Buffer
	err := d.Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	var responses []Response
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp Response
		require.NoError(t, json.Unmarshal([]byte(line), &resp))
		responses = append(responses, resp)
	}
	return responses
}

func pingDispatcher() *Dispatcher {
	d := NewDispatcher()
	d.RegisterMethod("ping", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return map[string]bool{"pong": true}, nil
	})
	d.RegisterMethod("fail", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return nil, errors.New("kaboom")
	})
	return d
}

func TestDispatcher_Ping(t *testing.T) {
	responses := runLines(t, pingDispatcher(), `{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n")

	require.Len(t, responses, 1)
	resp := responses[0]
	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Equal(t, json.RawMessage("1"), resp.ID)
	assert.Nil(t, resp.Error)
	assert.Equal(t, map[string]any{"pong": true}, resp.Result)
}

func TestDispatcher_MethodNotFound(t *testing.T) {
	responses := runLines(t, pingDispatcher(), `{"jsonrpc":"2.0","id":7,"method":"nope"}`+"\n")

	require.Len(t, responses, 1)
	require.NotNil(t, responses[0].Error)
	assert.Equal(t, CodeMethodNotFound, responses[0].Error.Code)
	assert.Contains(t, responses[0].Error.Message, "nope")
}

func TestDispatcher_ParseError(t *testing.T) {
	responses := runLines(t, pingDispatcher(), "{not json\n")

	require.Len(t, responses, 1)
	assert.Equal(t, json.RawMessage("null"), responses[0].ID)
	require.NotNil(t, responses[0].Error)
	assert.Equal(t, CodeParseError, responses[0].Error.Code)
}

func TestDispatcher_HandlerError(t *testing.T) {
	responses := runLines(t, pingDispatcher(), `{"jsonrpc":"2.0","id":3,"method":"fail"}`+"\n")

	require.Len(t, responses, 1)
	require.NotNil(t, responses[0].Error)
	assert.Equal(t, CodeInternalError, responses[0].Error.Code)
	assert.Equal(t, "kaboom", responses[0].Error.Message)
}

func TestDispatcher_InvalidParams(t *testing.T) {
	d := NewDispatcher()
	d.RegisterMethod("strict", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return nil, domain.ProtocolError("invalid params: want object")
	})

	responses := runLines(t, d, `{"jsonrpc":"2.0","id":9,"method":"strict","params":[1]}`+"\n")

	require.Len(t, responses, 1)
	require.NotNil(t, responses[0].Error)
	assert.Equal(t, CodeInvalidParams, responses[0].Error.Code)
}

func TestDispatcher_NotificationsNeverAnswered(t *testing.T) {
	input := `{"jsonrpc":"2.0","method":"ping"}` + "\n" +
		`{"jsonrpc":"2.0","method":"nope"}` + "\n" +
		`{"jsonrpc":"2.0","method":"fail"}` + "\n" +
		`{"jsonrpc":"2.0","id":null,"method":"ping"}` + "\n"

	responses := runLines(t, pingDispatcher(), input)
	assert.Empty(t, responses)
}

func TestDispatcher_StopEndsRun(t *testing.T) {
	d := pingDispatcher()
	d.RegisterMethod("shutdown", func(ctx context.Context, _ json.RawMessage) (any, error) {
		d.Stop()
		return map[string]any{}, nil
	})

	pr, pw := newBlockingPipe()
	var out bytes.Buffer

	done := make(chan error, 1)
	go func() {
		done <- d.Run(context.Background(), pr, &out)
	}()

	pw <- `{"jsonrpc":"2.0","id":1,"method":"shutdown"}` + "\n"
	require.NoError(t, <-done)
	assert.Contains(t, out.String(), `"id":1`)
}

func TestDispatcher_ConcurrentRequestsWriteIntactLines(t *testing.T) {
	release := make(chan struct{})
	d := NewDispatcher()
	d.RegisterMethod("slow", func(ctx context.Context, _ json.RawMessage) (any, error) {
		<-release
		return map[string]bool{"slow": true}, nil
	})
	d.RegisterMethod("ping", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return map[string]bool{"pong": true}, nil
	})

	pr, pw := newBlockingPipe()
	out := &syncBuffer{}

	done := make(chan error, 1)
	go func() {
		done <- d.Run(context.Background(), pr, out)
	}()

	pw <- `{"jsonrpc":"2.0","id":1,"method":"slow"}` + "\n"
	for i := 2; i <= 9; i++ {
		pw <- fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"method":"ping"}`, i) + "\n"
	}

	// The blocked slow request must not hold up the pings behind it.
	require.Eventually(t, func() bool {
		return strings.Count(out.String(), `"pong"`) == 8
	}, 2*time.Second, 5*time.Millisecond)
	assert.NotContains(t, out.String(), `"slow"`)

	close(release)
	close(pw)
	require.NoError(t, <-done)

	// Every output line is one complete JSON response, no interleaving.
	seen := make(map[string]bool)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var resp Response
		require.NoError(t, json.Unmarshal([]byte(line), &resp), "line %q", line)
		require.Nil(t, resp.Error)
		seen[string(resp.ID)] = true
	}
	assert.Len(t, seen, 9)
}

// syncBuffer lets the test read partial output while handler goroutines
// are still writing.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newBlockingPipe returns a reader that blocks until lines arrive on
// the returned channel; closing the channel reads as EOF.
func newBlockingPipe() (*chanReader, chan string) {
	ch := make(chan string, 16)
	return &chanReader{ch: ch}, ch
}

type chanReader struct {
	ch  chan string
	buf []byte
}

func (r *chanReader) Read(p []byte) (int, error) {
	if len(r.buf) == 0 {
		line, ok := <-r.ch
		if !ok {
			return 0, io.EOF
		}
		r.buf = []byte(line)
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
