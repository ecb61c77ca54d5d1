// Package stdio implements the tool-invocation protocol over standard
// streams: newline-delimited JSON-RPC 2.0 requests on stdin, responses on
// stdout. Stdout carries protocol frames only; every diagnostic goes
// through the zap logger, which writes to stderr.
package stdio

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/tool"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/version"
)

const protocolVersion = "2025-06-18"

// maxFrameSize bounds a single request line.
const maxFrameSize = 4 * 1024 * 1024

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// textContent is one content block in a tools/call result.
type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callResult struct {
	Content []textContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// Server serves the tool protocol over one in/out stream pair.
type Server struct {
	registry *tool.Registry
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger
}

// NewServer creates a stdio protocol server.
func NewServer(registry *tool.Registry, in io.Reader, out io.Writer, logger *zap.Logger) *Server {
	return &Server{registry: registry, in: in, out: out, logger: logger}
}

// Serve reads requests until EOF or context cancellation. Each request is
// handled to completion before the next is read; a running tool call is
// not cancellable mid-scan.
func (s *Server) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)
	enc := json.NewEncoder(s.out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("unparseable frame", zap.Error(err))
			if err := enc.Encode(response{
				JSONRPC: "2.0",
				Error:   &rpcError{Code: codeParseError, Message: "parse error"},
			}); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
			continue
		}

		resp := s.handle(ctx, &req)
		if resp == nil {
			continue // notification
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read frames: %w", err)
	}
	return nil
}

// handle dispatches one request. Returns nil for notifications.
func (s *Server) handle(ctx context.Context, req *request) *response {
	if len(req.ID) == 0 {
		// Notifications (e.g. notifications/initialized) get no reply.
		s.logger.Debug("notification", zap.String("method", req.Method))
		return nil
	}

	resp := &response{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		resp.Result = map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo": map[string]any{
				"name":    "dealdesk",
				"version": version.Version,
			},
		}

	case "ping":
		resp.Result = map[string]any{}

	case "tools/list":
		resp.Result = map[string]any{"tools": s.registry.Declarations()}

	case "tools/call":
		resp.Result, resp.Error = s.callTool(ctx, req.Params)

	default:
		resp.Error = &rpcError{Code: codeMethodNotFound, Message: "method not found: " + req.Method}
	}

	return resp
}

// callTool runs a tool. Tool-level failures (bad arguments, store errors)
// come back as an isError result per the protocol; only an unusable params
// envelope is a protocol error.
func (s *Server) callTool(ctx context.Context, params json.RawMessage) (any, *rpcError) {
	var p struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(params, &p); err != nil || p.Name == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "invalid tools/call params"}
	}

	text, err := s.registry.Call(ctx, p.Name, p.Arguments)
	if err != nil {
		s.logger.Warn("tool call failed", zap.String("tool", p.Name), zap.Error(err))
		if errors.Is(err, domain.ErrUnknownTool) {
			return nil, &rpcError{Code: codeInvalidParams, Message: err.Error()}
		}
		return callResult{
			Content: []textContent{{Type: "text", Text: "Error: " + err.Error()}},
			IsError: true,
		}, nil
	}

	s.logger.Info("tool call", zap.String("tool", p.Name))
	return callResult{Content: []textContent{{Type: "text", Text: text}}}, nil
}
