// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the task session as tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/orion/internal/models"
	"github.com/starford/orion/internal/parser"
	"github.com/starford/orion/internal/session"
)

const commandsURI = "orion://commands"

// Server wraps the MCP server with Orion tools.
type Server struct {
	mcp    *server.MCPServer
	logger *slog.Logger

	mu   sync.Mutex
	sess *session.Session
}

// TaskView is the JSON shape returned by list_tasks and find_tasks.
type TaskView struct {
	Number      int    `json:"number"`
	Kind        string `json:"kind"`
	Done        bool   `json:"done"`
	Description string `json:"description"`
	Display     string `json:"display"`
}

// New creates a new MCP server with all Orion tools registered.
func New(sess *session.Session, version string, logger *slog.Logger) *Server {
	s := &Server{sess: sess, logger: logger}

	s.mcp = server.NewMCPServer(
		"Orion",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("run_command",
		mcp.WithDescription("Run one Orion command line (e.g. \"todo read book\", \"mark 2\") "+
			"and return the framed response text. Read the command reference first via "+
			"the orion://commands resource."),
		mcp.WithString("command", mcp.Required(), mcp.Description("A single command line")),
	), s.runCommand)

	s.mcp.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("List all tasks as JSON with their 1-based numbers."),
	), s.listTasks)

	s.mcp.AddTool(mcp.NewTool("find_tasks",
		mcp.WithDescription("Find tasks whose description contains the keyword (case-insensitive)."),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("Substring to look for")),
	), s.findTasks)

	s.mcp.AddResource(
		mcp.NewResource(commandsURI, "Command Reference",
			mcp.WithResourceDescription("Command language accepted by run_command."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readCommandsResource,
	)

	return s
}

// Serve runs the MCP protocol on the given streams until ctx is done or in
// reaches EOF. A cancelled ctx is a normal shutdown.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	err := server.NewStdioServer(s.mcp).Listen(ctx, in, out)
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) runCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	line, err := req.RequireString("command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("mcp command", slog.String("command", line))
	return mcp.NewToolResultText(s.sess.Respond(line)), nil
}

func (s *Server) listTasks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	tasks := s.sess.Tasks()
	s.mu.Unlock()

	return taskResult(tasks, func(models.Task) bool { return true })
}

func (s *Server) findTasks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	keyword, err := parser.ParseFindKeyword(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	tasks := s.sess.Tasks()
	s.mu.Unlock()

	return taskResult(tasks, func(t models.Task) bool { return t.Matches(keyword) })
}

func (s *Server) readCommandsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      commandsURI,
			MIMEType: "text/markdown",
			Text:     CommandReference,
		},
	}, nil
}

// taskResult renders the tasks accepted by keep. Numbers are positions in
// the full list so they can be passed straight to mark, unmark and delete.
func taskResult(tasks []models.Task, keep func(models.Task) bool) (*mcp.CallToolResult, error) {
	views := []TaskView{}
	for i, t := range tasks {
		if !keep(t) {
			continue
		}
		views = append(views, TaskView{
			Number:      i + 1,
			Kind:        string(t.Kind()),
			Done:        t.IsDone(),
			Description: t.Description(),
			Display:     t.String(),
		})
	}
	out, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}
