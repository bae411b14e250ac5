package mcp

import (
	"interntrack/internal/domain/alert"
	"interntrack/internal/domain/application"
)

type CreateApplicationParams struct {
	Company         string `json:"company"`
	Position        string `json:"position"`
	Status          string `json:"status,omitempty"`
	ApplicationDate string `json:"application_date,omitempty"`
	Deadline        string `json:"deadline,omitempty"`
	InterviewDate   string `json:"interview_date,omitempty"`
	Location        string `json:"location,omitempty"`
}

type GetApplicationParams struct {
	ID string `json:"id"`
}

type ListApplicationsParams struct {
	Statuses []string `json:"statuses,omitempty"`
	Limit    int      `json:"limit,omitempty"`
	Offset   int      `json:"offset,omitempty"`
}

type UpdateApplicationParams struct {
	ID              string  `json:"id"`
	Company         *string `json:"company,omitempty"`
	Position        *string `json:"position,omitempty"`
	ApplicationDate *string `json:"application_date,omitempty"`
	Deadline        *string `json:"deadline,omitempty"`
	InterviewDate   *string `json:"interview_date,omitempty"`
	Location        *string `json:"location,omitempty"`
}

type SetApplicationStatusParams struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type DeleteApplicationParams struct {
	ID string `json:"id"`
}

type MarkAlertReadParams struct {
	ID string `json:"id"`
}

type EmptyParams struct{}

type ApplicationResponse struct {
	Application application.Record `json:"application"`
}

type ListApplicationsResponse struct {
	Applications []application.Record `json:"applications"`
}

type ListAlertsResponse struct {
	Alerts      []alert.Alert `json:"alerts"`
	UnreadCount int           `json:"unread_count"`
}

type RegenerateAlertsResponse struct {
	NewAlerts int `json:"new_alerts"`
}

type ExportCalendarResponse struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Content  string `json:"content"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
