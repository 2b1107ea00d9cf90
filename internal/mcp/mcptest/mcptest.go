// Package mcptest provides test helpers for invoking gocalc MCP tools
// with swappable transports: in-process (fast) or subprocess (full binary).
package mcptest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	mcpsdk "github.com/mark3labs/mcp-go/mcp"

	internalmcp "github.com/mamaar/gocalc/internal/mcp"
	"github.com/mamaar/gocalc/pkg/calculation"
)

// Session wraps an initialized MCP client with cleanup logic.
type Session struct {
	*client.Client
}

// Close tears down the session.
func (s *Session) Close() {
	_ = s.Client.Close()
}

// Transport selects how the MCP server is reached.
type Transport interface {
	connect(ctx context.Context, t testing.TB) (*client.Client, error)
}

// Dial connects to an MCP server using the given transport and performs
// the initialize handshake.
func Dial(ctx context.Context, t testing.TB, transport Transport) *Session {
	t.Helper()
	c, err := transport.connect(ctx, t)
	if err != nil {
		t.Fatalf("mcptest.Dial: connect: %v", err)
	}
	if err := c.Start(ctx); err != nil {
		_ = c.Close()
		t.Fatalf("mcptest.Dial: start: %v", err)
	}

	req := mcpsdk.InitializeRequest{}
	req.Params.ProtocolVersion = mcpsdk.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcpsdk.Implementation{Name: "test-client", Version: "1.0"}
	if _, err := c.Initialize(ctx, req); err != nil {
		_ = c.Close()
		t.Fatalf("mcptest.Dial: initialize: %v", err)
	}
	return &Session{Client: c}
}

// Call invokes a tool and returns its first text content.
func (s *Session) Call(ctx context.Context, t testing.TB, tool string, args map[string]any) (string, bool) {
	t.Helper()
	req := mcpsdk.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args

	res, err := s.CallTool(ctx, req)
	if err != nil {
		t.Fatalf("mcptest.Call %s: %v", tool, err)
	}
	if len(res.Content) == 0 {
		return "", res.IsError
	}
	text, ok := res.Content[0].(mcpsdk.TextContent)
	if !ok {
		t.Fatalf("mcptest.Call %s: unexpected content %T", tool, res.Content[0])
	}
	return text.Text, res.IsError
}

// inProcess is the in-process transport.
type inProcess struct {
	registry *calculation.Registry
}

// InProcess returns a transport that runs the MCP server in-process. A nil
// registry means the default operations.
func InProcess(registry *calculation.Registry) Transport { return inProcess{registry: registry} }

func (ip inProcess) connect(ctx context.Context, t testing.TB) (*client.Client, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := ip.registry
	if registry == nil {
		registry = calculation.NewDefaultRegistry(logger)
	}
	state := internalmcp.NewCalcServer(registry, logger)
	return client.NewInProcessClient(internalmcp.NewMCPServer(state, "test"))
}

// subprocess is the subprocess transport speaking stdio to a built binary.
type subprocess struct {
	binPath string
}

// Subprocess returns a transport that shells out to the given binary.
func Subprocess(bin string) Transport { return subprocess{binPath: bin} }

func (sp subprocess) connect(ctx context.Context, t testing.TB) (*client.Client, error) {
	return client.NewClient(transport.NewStdio(sp.binPath, nil)), nil
}
