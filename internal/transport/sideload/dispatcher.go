package sideload

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/nulzo/ai-gateway/internal/core/domain"
	"github.com/nulzo/ai-gateway/internal/logger"
)

// Handler serves one JSON-RPC method. The returned value is marshaled
// as the result member; a non-nil error becomes an Internal error
// response for requests and is swallowed for notifications.
type Handler func(ctx context.Context, params json.RawMessage) (any, error)

// Dispatcher reads line-delimited JSON-RPC 2.0 from an input stream
// and writes responses to an output stream. Each request is served in
// its own goroutine so a slow generation does not block pings.
type Dispatcher struct {
	handlers map[string]Handler

	writeMu sync.Mutex
	out     *bufio.Writer

	stopOnce sync.Once
	stopped  chan struct{}
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
		stopped:  make(chan struct{}),
	}
}

// RegisterMethod installs a handler. Not safe to call after Run starts.
func (d *Dispatcher) RegisterMethod(name string, h Handler) {
	d.handlers[name] = h
}

// Stop ends the read loop after in-flight requests finish writing.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopped) })
}

// Run serves until EOF on in, Stop, or context cancellation.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	d.out = bufio.NewWriter(out)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			case <-d.stopped:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	logger.Info("sideload dispatcher started, reading from stdin")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.stopped:
			return nil
		case line, ok := <-lines:
			if !ok {
				logger.Info("eof on input, sideload dispatcher stopping")
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				d.dispatch(ctx, line)
			}()
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, raw string) {
	var req Request
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		// The id is unknowable here, so the response carries null.
		d.write(errorResponse(nil, CodeParseError, fmt.Sprintf("Parse error: %v", err)))
		return
	}

	handler, ok := d.handlers[req.Method]
	if !ok {
		if req.IsNotification() {
			return
		}
		d.write(errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method)))
		return
	}

	result, err := handler(ctx, req.Params)
	if req.IsNotification() {
		if err != nil {
			logger.Error("notification handler failed", zap.String("method", req.Method), zap.Error(err))
		}
		return
	}
	if err != nil {
		logger.Error("handler failed", zap.String("method", req.Method), zap.Error(err))
		code := CodeInternalError
		if domain.IsKind(err, domain.KindProtocol) {
			code = CodeInvalidParams
		}
		d.write(errorResponse(req.ID, code, err.Error()))
		return
	}
	d.write(resultResponse(req.ID, result))
}

// write marshals a response as a single line and flushes it. The lock
// keeps concurrent handler goroutines from interleaving output.
func (d *Dispatcher) write(resp *Response) {
	payload, err := json.Marshal(resp)
	if err != nil {
		logger.Error("failed to marshal response", zap.Error(err))
		return
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	if _, err := d.out.Write(append(payload, '\n')); err != nil {
		logger.Error("failed to write response", zap.Error(err))
		return
	}
	if err := d.out.Flush(); err != nil {
		logger.Error("failed to flush response", zap.Error(err))
	}
}
