package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/field-sync/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	syncedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func statusStyle(s models.SyncStatus) lipgloss.Style {
	switch s {
	case models.SyncStatusSynced:
		return syncedStyle
	case models.SyncStatusPending:
		return pendingStyle
	case models.SyncStatusFailed:
		return failedStyle
	default:
		return mutedStyle
	}
}

func outcomeStyle(o models.PushOutcome) lipgloss.Style {
	switch o {
	case models.PushSynced:
		return syncedStyle
	case models.PushRetry:
		return pendingStyle
	default:
		return failedStyle
	}
}

func renderSaveResult(res models.SaveResult) string {
	return fmt.Sprintf("%s %s %s",
		mutedStyle.Render(res.RecordID),
		outcomeStyle(res.Outcome).Render(res.Outcome.String()),
		res.Message,
	)
}

func renderReports(reports []models.SyncReport) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, titleStyle.Render("FORM")+"\tSYNCED\tFAILED\tORPHANED")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.EntityType, r.Succeeded, r.Failed, r.Orphaned)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func renderStatus(records []models.FormRecord, depth map[string]int, entries []models.SyncQueueEntry) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Forms"))
	b.WriteString("\n")
	if len(records) == 0 {
		b.WriteString(mutedStyle.Render("no forms saved on this device"))
		b.WriteString("\n")
	} else {
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFORM\tAPPLICATION\tSTATUS\tATTEMPTS\tVERSION\tERROR")
		for _, rec := range records {
			syncErr := "-"
			if rec.SyncError != nil {
				syncErr = *rec.SyncError
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
				rec.ID,
				rec.FormType.Path(),
				rec.ApplicationID,
				statusStyle(rec.SyncStatus).Render(rec.SyncStatus.String()),
				rec.SyncAttempts,
				rec.Version,
				syncErr,
			)
		}
		w.Flush()
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Queue"))
	b.WriteString("\n")

	keys := make([]string, 0, len(depth))
	total := 0
	for k, n := range depth {
		keys = append(keys, k)
		total += n
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %d\n", k, depth[k])
	}
	fmt.Fprintf(&b, "total: %d", total)

	if len(entries) > 0 {
		b.WriteString("\n\n")
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ENTITY\tID\tRETRIES\tLAST ATTEMPT\tERROR")
		for _, e := range entries {
			last, errMsg := "-", "-"
			if e.LastAttempt != nil {
				last = e.LastAttempt.Local().Format(time.DateTime)
			}
			if e.ErrorMessage != nil {
				errMsg = *e.ErrorMessage
			}
			fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\n", e.EntityType, e.EntityID, e.RetryCount, e.MaxRetries, last, errMsg)
		}
		w.Flush()
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderApplications(res models.ListResult, apps []models.Application) string {
	var b strings.Builder

	header := fmt.Sprintf("[%s] %d applications", res.State, len(apps))
	if res.Message != "" {
		header += " " + res.Message
	}
	if res.State == models.ListError {
		b.WriteString(failedStyle.Render(header))
	} else {
		b.WriteString(titleStyle.Render(header))
	}

	for _, a := range apps {
		fmt.Fprintf(&b, "\n%s\t%s\t%s\t%s", a.ID, a.CustomerName, a.Address, a.Status)
	}
	return b.String()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
