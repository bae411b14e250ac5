package mcp

import (
	"context"
	"log/slog"

	"interntrack/internal/domain/alert"
	"interntrack/internal/domain/application"
	"interntrack/internal/domain/calendar"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ApplicationService defines application operations needed by MCP.
type ApplicationService interface {
	Create(ctx context.Context, req application.CreateRequest) (*application.Record, error)
	Update(ctx context.Context, req application.UpdateRequest) (*application.Record, error)
	SetStatus(ctx context.Context, id string, status application.Status) (*application.Record, error)
	Get(ctx context.Context, id string) (*application.Record, error)
	List(ctx context.Context, opts application.ListOptions) ([]application.Record, error)
	Delete(ctx context.Context, id string) error
}

// AlertService defines alert operations needed by MCP.
type AlertService interface {
	Regenerate(ctx context.Context) (int, error)
	List(ctx context.Context) ([]alert.Alert, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
}

// ExportService defines calendar export operations needed by MCP.
type ExportService interface {
	Export(ctx context.Context) (*calendar.Document, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Applications ApplicationService
	Alerts       AlertService
	Exports      ExportService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "interntrack",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(sessionMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
