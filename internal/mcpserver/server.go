// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Dagaz tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/journalservice"
)

// Server wraps the MCP server with Dagaz tools.
type Server struct {
	mcp *server.MCPServer
	svc *journalservice.Service
}

// New creates a new MCP server with all Dagaz tools registered.
func New(svc *journalservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Dagaz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("read_journal",
		mcp.WithDescription("Read the full content of a journal file."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the journal (e.g. daily.txt)")),
	), s.readJournal)

	s.mcp.AddTool(mcp.NewTool("search_items",
		mcp.WithDescription("Full-text search through journal items and tags."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchItems)

	s.mcp.AddTool(mcp.NewTool("list_journals",
		mcp.WithDescription("List journal files, newest first."),
	), s.listJournals)

	s.mcp.AddTool(mcp.NewTool("update_section",
		mcp.WithDescription("Replace a section's items for a date. Items MUST follow the "+
			"journal format contract. Read it first via the get_journal_contract tool or "+
			"the dagaz://journal-format resource."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Journal path")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Target date (YYYY-MM-DD)")),
		mcp.WithString("section", mcp.Required(), mcp.Description("Section label, e.g. DOING")),
		mcp.WithString("items", mcp.Required(), mcp.Description("Item lines joined by newlines (empty clears the section)")),
	), s.updateSection)

	s.mcp.AddTool(mcp.NewTool("toggle_task",
		mcp.WithDescription("Toggle completion of a task. Pass the exact raw line as it "+
			"appears in the journal."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Journal path")),
		mcp.WithString("line", mcp.Required(), mcp.Description("The task line to toggle")),
	), s.toggleTask)

	s.mcp.AddTool(mcp.NewTool("seed_day",
		mcp.WithDescription("Create a day block for the given date with calendar events "+
			"and unfinished tasks carried over from the previous day. No-op if the date "+
			"already exists."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Journal path")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date to seed (YYYY-MM-DD)")),
	), s.seedDay)

	s.mcp.AddTool(mcp.NewTool("carry_over",
		mcp.WithDescription("Preview the unfinished DOING lines that would carry over to "+
			"the given date. Does not modify the journal."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Journal path")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Target date (YYYY-MM-DD)")),
	), s.carryOver)

	s.mcp.AddTool(mcp.NewTool("get_journal_contract",
		mcp.WithDescription("Returns the plain-text journal format contract. "+
			"Call this before writing journal content to ensure correct structure."),
	), s.getJournalContract)

	// Resource: journal format contract.
	s.mcp.AddResource(
		mcp.NewResource("dagaz://journal-format", "Journal Format Contract",
			mcp.WithResourceDescription("Plain-text journal format that all journals follow."),
			mcp.WithMIMEType("text/plain"),
		),
		s.readJournalFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) readJournal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	j, err := s.svc.GetJournal(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(j.Content), nil
}

func (s *Server) searchItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.Search(ctx, query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listJournals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, _, err := s.svc.ListJournals(ctx, 200, 0, "", "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var paths []string
	for _, it := range items {
		paths = append(paths, it.Path)
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) updateSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	section, err := req.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := req.RequireString("items")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var items []string
	if raw != "" {
		items = strings.Split(raw, "\n")
	}

	_, changed, err := s.svc.ApplyUpdateSection(ctx, path, "", date, section, items)
	if err != nil {
		return mcp.NewToolResultError(toolError(err, path)), nil
	}
	if !changed {
		return mcp.NewToolResultText("no change"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("updated [%s] for %s", section, date)), nil
}

func (s *Server) toggleTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	line, err := req.RequireString("line")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	_, changed, err := s.svc.ApplyToggle(ctx, path, "", line)
	if err != nil {
		return mcp.NewToolResultError(toolError(err, path)), nil
	}
	if !changed {
		return mcp.NewToolResultText("no matching line found"), nil
	}
	return mcp.NewToolResultText("toggled"), nil
}

func (s *Server) seedDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	_, changed, err := s.svc.SeedDay(ctx, path, "", date)
	if err != nil {
		return mcp.NewToolResultError(toolError(err, path)), nil
	}
	if !changed {
		return mcp.NewToolResultText(fmt.Sprintf("%s already present", date)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("seeded %s", date)), nil
}

func (s *Server) carryOver(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	items, err := s.svc.CarryOver(ctx, path, date)
	if err != nil {
		return mcp.NewToolResultError(toolError(err, path)), nil
	}
	if len(items) == 0 {
		return mcp.NewToolResultText("nothing to carry over"), nil
	}
	return mcp.NewToolResultText(strings.Join(items, "\n")), nil
}

func (s *Server) getJournalContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(JournalFormatContract), nil
}

func (s *Server) readJournalFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "dagaz://journal-format",
			MIMEType: "text/plain",
			Text:     JournalFormatContract,
		},
	}, nil
}

func toolError(err error, path string) string {
	if errors.Is(err, apperr.ErrNotFound) {
		return fmt.Sprintf("not found: %s", path)
	}
	return err.Error()
}
