package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `interntrack tracks internship applications and derives alerts and calendar exports from them.

Core concepts:
- Application: one record per company/position with a workflow status (applied | interview | offer | rejected | accepted) and optional date fields (application_date, deadline, interview_date). Dates are strings: YYYY-MM-DD or YYYY-MM-DDTHH:MM.
- Alert: derived notification (deadline countdowns, interview reminders, follow-up nudges). Alerts are generated automatically after every mutation and on an hourly sweep; regenerate_alerts forces a sweep.
- Alerts are append-only with deterministic identities, so the same reminder never fires twice. The only mutable bit is the read flag.
- Calendar export: export_calendar renders every deadline and interview as an iCalendar (.ics) document with a reminder alarm on interviews.

Typical workflow:
1) create_application when you apply somewhere.
2) set_application_status / update_application as things progress. Setting status to 'interview' plus an interview_date arms the interview reminders.
3) list_alerts to check what needs attention; mark_alert_read / mark_all_alerts_read to clear them.
4) export_calendar to pull everything into a calendar app.

Docs:
- interntrack://docs/index (entry point)
- interntrack://docs/alerts (alert rules and timing)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "interntrack://docs/index",
		Name:        "docs_index",
		Title:       "interntrack docs index",
		Description: "Entry point for agent-facing docs.",
		Content: `# interntrack: Docs Index

## Quick start

1. ` + "`create_application`" + ` with company, position, and whatever dates you know.
2. ` + "`list_applications`" + ` / ` + "`get_application`" + ` to browse.
3. ` + "`set_application_status`" + ` as the process moves along.
4. ` + "`list_alerts`" + ` for upcoming deadlines and interviews.
5. ` + "`export_calendar`" + ` for an .ics file of everything.

## Date formats

Date fields accept ` + "`YYYY-MM-DD`" + `, ` + "`YYYY-MM-DDTHH:MM`" + `, ` + "`YYYY-MM-DDTHH:MM:SS`" + `, or RFC 3339. Unparseable values simply never trigger alerts or calendar events.

## Docs

- ` + "`interntrack://docs/alerts`" + ` — when each alert kind fires.
`,
	},
	{
		URI:         "interntrack://docs/alerts",
		Name:        "docs_alerts",
		Title:       "Alert rules",
		Description: "When each alert kind fires and how duplicates are prevented.",
		Content: `# Alert rules

Alerts are derived from the record set, never stored by hand.

## Deadline alerts

Fire when a deadline is exactly 7 days, 3 days, or 1 day away (rounded up to whole days).

## Interview alerts

Fire when an interview is exactly 24 hours or 2 hours away (rounded up to whole hours). The application must be in 'interview' status and carry an interview_date.

## Follow-up alerts

Fire the day after an interview to prompt a thank-you email.

## Duplicate suppression

Each alert has a deterministic identity built from the record, kind, and time bucket. Re-running generation (mutations, the hourly sweep, or ` + "`regenerate_alerts`" + `) only appends alerts whose identity has not been seen before.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
