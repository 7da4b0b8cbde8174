package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"winstash/internal/diag"
	"winstash/internal/dispatch"
	"winstash/internal/logging"
	"winstash/internal/stack"
	"winstash/internal/version"
	"winstash/internal/wctl"
)

// mcpServer wraps the MCP server with the action dispatcher. The mutex
// serializes tool calls: the log files have no locking of their own, so at
// least within one serve process pushes and pops must not interleave.
type mcpServer struct {
	dispatcher   *dispatch.Dispatcher
	dispatcherMu sync.Mutex
	mcp          *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all winstash tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	control, err := wctl.NewXdotool()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		dispatcher: dispatch.New(stack.DefaultPaths(), control, logging.New(debugMode)),
	}

	s.mcp = mcpserver.NewMCPServer(
		"winstash",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// hide_window
	s.mcp.AddTool(
		mcp.NewTool("hide_window",
			mcp.WithDescription("Hide the currently active window, recording it so it can be restored later"),
			mcp.WithString("stack", mcp.Description("Which stack to record on: normal (default) or priority")),
		),
		s.handleHide,
	)

	// show_window
	s.mcp.AddTool(
		mcp.NewTool("show_window",
			mcp.WithDescription("Restore the most recently hidden window from a stack"),
			mcp.WithString("stack", mcp.Description("Which stack to restore from: normal (default) or priority")),
		),
		s.handleShow,
	)

	// stash_status
	s.mcp.AddTool(
		mcp.NewTool("stash_status",
			mcp.WithDescription("List both stacks and the window identifiers recorded on them"),
		),
		s.handleStatus,
	)
}

// stringParam reads a string parameter with a default.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// resultToText serializes an ActionResult to YAML for the MCP response.
func resultToText(result ActionResult) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nwindow: %s", result.OK, result.Action, result.Window)
	}
	return string(b)
}

func (s *mcpServer) handleHide(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := stack.ParseName(stringParam(request.GetArguments(), "stack", "normal"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.dispatcherMu.Lock()
	defer s.dispatcherMu.Unlock()

	id, err := s.dispatcher.Hide(name)
	if err != nil {
		return mcp.NewToolResultError(diag.Message(err)), nil
	}
	return mcp.NewToolResultText(resultToText(ActionResult{
		OK:     true,
		Action: "hide",
		Stack:  name.String(),
		Window: id,
	})), nil
}

func (s *mcpServer) handleShow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := stack.ParseName(stringParam(request.GetArguments(), "stack", "normal"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.dispatcherMu.Lock()
	defer s.dispatcherMu.Unlock()

	id, err := s.dispatcher.Show(name)
	if err != nil {
		return mcp.NewToolResultError(diag.Message(err)), nil
	}
	return mcp.NewToolResultText(resultToText(ActionResult{
		OK:     true,
		Action: "show",
		Stack:  name.String(),
		Window: id,
	})), nil
}

func (s *mcpServer) handleStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.dispatcherMu.Lock()
	defer s.dispatcherMu.Unlock()

	statuses, err := s.dispatcher.Status()
	if err != nil {
		return mcp.NewToolResultError(diag.Message(err)), nil
	}
	b, _ := yaml.Marshal(statuses)
	return mcp.NewToolResultText(string(b)), nil
}
