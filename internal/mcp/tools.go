package mcp

import (
	"context"

	"interntrack/internal/domain/application"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolHandler binds the domain services to the MCP tool surface.
type toolHandler struct {
	services Services
}

func registerTools(server *sdkmcp.Server, services Services) {
	h := &toolHandler{services: services}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_application",
		Description: "Create a new internship application. Status defaults to 'applied'. Dates are YYYY-MM-DD or YYYY-MM-DDTHH:MM strings.",
	}, h.createApplication)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_application",
		Description: "Fetch a single application by ID.",
	}, h.getApplication)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_applications",
		Description: "List applications, newest first. Optionally filter by status and paginate with limit/offset.",
	}, h.listApplications)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_application",
		Description: "Update fields of an application. Only the provided fields change. Alerts are re-derived afterwards.",
	}, h.updateApplication)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_application_status",
		Description: "Move an application to a new status (applied, interview, offer, rejected, accepted).",
	}, h.setApplicationStatus)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_application",
		Description: "Delete an application by ID. Previously generated alerts are kept.",
	}, h.deleteApplication)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_alerts",
		Description: "List all alerts, newest first, with the current unread count.",
	}, h.listAlerts)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "mark_alert_read",
		Description: "Mark a single alert as read.",
	}, h.markAlertRead)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "mark_all_alerts_read",
		Description: "Mark every alert as read.",
	}, h.markAllAlertsRead)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "regenerate_alerts",
		Description: "Run the alert rules against the current clock and report how many new alerts appeared.",
	}, h.regenerateAlerts)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_calendar",
		Description: "Export deadlines and interviews for all applications as an iCalendar (.ics) document.",
	}, h.exportCalendar)
}

func (h *toolHandler) createApplication(ctx context.Context, req *sdkmcp.CallToolRequest, params CreateApplicationParams) (*sdkmcp.CallToolResult, ApplicationResponse, error) {
	rec, err := h.services.Applications.Create(ctx, application.CreateRequest{
		Company:         params.Company,
		Position:        params.Position,
		Status:          application.Status(params.Status),
		ApplicationDate: params.ApplicationDate,
		Deadline:        params.Deadline,
		InterviewDate:   params.InterviewDate,
		Location:        params.Location,
	})
	if err != nil {
		return nil, ApplicationResponse{}, mapError(err)
	}
	return nil, ApplicationResponse{Application: *rec}, nil
}

func (h *toolHandler) getApplication(ctx context.Context, req *sdkmcp.CallToolRequest, params GetApplicationParams) (*sdkmcp.CallToolResult, ApplicationResponse, error) {
	rec, err := h.services.Applications.Get(ctx, params.ID)
	if err != nil {
		return nil, ApplicationResponse{}, mapError(err)
	}
	return nil, ApplicationResponse{Application: *rec}, nil
}

func (h *toolHandler) listApplications(ctx context.Context, req *sdkmcp.CallToolRequest, params ListApplicationsParams) (*sdkmcp.CallToolResult, ListApplicationsResponse, error) {
	statuses := make([]application.Status, 0, len(params.Statuses))
	for _, s := range params.Statuses {
		statuses = append(statuses, application.Status(s))
	}
	records, err := h.services.Applications.List(ctx, application.ListOptions{
		Statuses: statuses,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
	if err != nil {
		return nil, ListApplicationsResponse{}, mapError(err)
	}
	return nil, ListApplicationsResponse{Applications: records}, nil
}

func (h *toolHandler) updateApplication(ctx context.Context, req *sdkmcp.CallToolRequest, params UpdateApplicationParams) (*sdkmcp.CallToolResult, ApplicationResponse, error) {
	rec, err := h.services.Applications.Update(ctx, application.UpdateRequest{
		ID:              params.ID,
		Company:         params.Company,
		Position:        params.Position,
		ApplicationDate: params.ApplicationDate,
		Deadline:        params.Deadline,
		InterviewDate:   params.InterviewDate,
		Location:        params.Location,
	})
	if err != nil {
		return nil, ApplicationResponse{}, mapError(err)
	}
	return nil, ApplicationResponse{Application: *rec}, nil
}

func (h *toolHandler) setApplicationStatus(ctx context.Context, req *sdkmcp.CallToolRequest, params SetApplicationStatusParams) (*sdkmcp.CallToolResult, ApplicationResponse, error) {
	rec, err := h.services.Applications.SetStatus(ctx, params.ID, application.Status(params.Status))
	if err != nil {
		return nil, ApplicationResponse{}, mapError(err)
	}
	return nil, ApplicationResponse{Application: *rec}, nil
}

func (h *toolHandler) deleteApplication(ctx context.Context, req *sdkmcp.CallToolRequest, params DeleteApplicationParams) (*sdkmcp.CallToolResult, StatusResponse, error) {
	if err := h.services.Applications.Delete(ctx, params.ID); err != nil {
		return nil, StatusResponse{}, mapError(err)
	}
	return nil, StatusResponse{Status: "deleted"}, nil
}

func (h *toolHandler) listAlerts(ctx context.Context, req *sdkmcp.CallToolRequest, params EmptyParams) (*sdkmcp.CallToolResult, ListAlertsResponse, error) {
	alerts, err := h.services.Alerts.List(ctx)
	if err != nil {
		return nil, ListAlertsResponse{}, mapError(err)
	}
	unread, err := h.services.Alerts.UnreadCount(ctx)
	if err != nil {
		return nil, ListAlertsResponse{}, mapError(err)
	}
	return nil, ListAlertsResponse{Alerts: alerts, UnreadCount: unread}, nil
}

func (h *toolHandler) markAlertRead(ctx context.Context, req *sdkmcp.CallToolRequest, params MarkAlertReadParams) (*sdkmcp.CallToolResult, StatusResponse, error) {
	if err := h.services.Alerts.MarkRead(ctx, params.ID); err != nil {
		return nil, StatusResponse{}, mapError(err)
	}
	return nil, StatusResponse{Status: "ok"}, nil
}

func (h *toolHandler) markAllAlertsRead(ctx context.Context, req *sdkmcp.CallToolRequest, params EmptyParams) (*sdkmcp.CallToolResult, StatusResponse, error) {
	if err := h.services.Alerts.MarkAllRead(ctx); err != nil {
		return nil, StatusResponse{}, mapError(err)
	}
	return nil, StatusResponse{Status: "ok"}, nil
}

func (h *toolHandler) regenerateAlerts(ctx context.Context, req *sdkmcp.CallToolRequest, params EmptyParams) (*sdkmcp.CallToolResult, RegenerateAlertsResponse, error) {
	count, err := h.services.Alerts.Regenerate(ctx)
	if err != nil {
		return nil, RegenerateAlertsResponse{}, mapError(err)
	}
	return nil, RegenerateAlertsResponse{NewAlerts: count}, nil
}

func (h *toolHandler) exportCalendar(ctx context.Context, req *sdkmcp.CallToolRequest, params EmptyParams) (*sdkmcp.CallToolResult, ExportCalendarResponse, error) {
	doc, err := h.services.Exports.Export(ctx)
	if err != nil {
		return nil, ExportCalendarResponse{}, mapError(err)
	}
	return nil, ExportCalendarResponse{
		Filename: doc.Filename,
		MIMEType: doc.MIMEType,
		Content:  doc.Content,
	}, nil
}
