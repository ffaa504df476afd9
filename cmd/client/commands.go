package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/field-sync/internal/service"
	"github.com/MKhiriev/field-sync/models"
)

var errEmptyPayload = errors.New("payload is empty")

func newOpenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open FORM APPLICATION_ID",
		Short: "Open a form for an application, creating a draft on first open",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formType, err := models.ParseFormType(args[0])
			if err != nil {
				return err
			}

			rec, err := opts.app.Services.FormService.Open(cmd.Context(), formType, args[1])
			if err != nil {
				return fmt.Errorf("open form: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
}

func newSaveCmd(opts *rootOptions) *cobra.Command {
	var payload string

	cmd := &cobra.Command{
		Use:   "save FORM APPLICATION_ID",
		Short: "Save a form locally and try to send it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formType, err := models.ParseFormType(args[0])
			if err != nil {
				return err
			}

			body, err := readPayload(payload)
			if err != nil {
				return err
			}

			res, err := opts.app.Services.FormService.Save(cmd.Context(), models.FormRecord{
				FormType:      formType,
				ApplicationID: args[1],
				Payload:       body,
			})
			if err != nil {
				return fmt.Errorf("save form: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSaveResult(res))
			return nil
		},
	}
	cmd.Flags().StringVarP(&payload, "payload", "p", "", "Form payload as JSON, or @file to read it from a file")
	_ = cmd.MarkFlagRequired("payload")

	return cmd
}

func newSyncCmd(opts *rootOptions) *cobra.Command {
	var form string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push every queued form now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			retry := opts.app.Services.RetryService

			if _, err := retry.RequeuePending(cmd.Context()); err != nil {
				return fmt.Errorf("requeue pending forms: %w", err)
			}

			var reports []models.SyncReport
			if form == "" {
				var err error
				if reports, err = retry.SyncAll(cmd.Context()); err != nil {
					return fmt.Errorf("sync forms: %w", err)
				}
			} else {
				formType, err := models.ParseFormType(form)
				if err != nil {
					return err
				}
				report, err := retry.SyncPendingForms(cmd.Context(), formType)
				if err != nil {
					return fmt.Errorf("sync %s: %w", formType, err)
				}
				reports = append(reports, report)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderReports(reports))
			return nil
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "Only sync this form type")

	return cmd
}

func newRetryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "retry RECORD_ID",
		Short: "Retry a failed form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.app.Services.RetryService.Retry(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("retry form: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSaveResult(res))
			return nil
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var form string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show local forms and the sync queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formTypes := models.FormTypes
			if form != "" {
				formType, err := models.ParseFormType(form)
				if err != nil {
					return err
				}
				formTypes = []models.FormType{formType}
			}

			var records []models.FormRecord
			for _, formType := range formTypes {
				recs, err := opts.app.Services.FormService.List(cmd.Context(), formType)
				if err != nil {
					return fmt.Errorf("list %s: %w", formType, err)
				}
				records = append(records, recs...)
			}

			depth, err := opts.app.Services.RetryService.QueueDepth(cmd.Context())
			if err != nil {
				return fmt.Errorf("queue depth: %w", err)
			}

			entries, err := opts.app.Services.RetryService.QueueEntries(cmd.Context())
			if err != nil {
				return fmt.Errorf("queue entries: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderStatus(records, depth, entries))
			return nil
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "Only show this form type")

	return cmd
}

func newApplicationsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "applications",
		Short: "List applications, cached rows first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var last models.ListResult
			for res := range opts.app.Services.ListCacheService.Applications(cmd.Context()) {
				last = res
				apps, err := service.DecodeApplications(res.Items)
				if err != nil {
					return fmt.Errorf("decode applications: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderApplications(res, apps))
			}
			if last.State == models.ListError && len(last.Items) == 0 {
				return last.Err
			}
			return nil
		},
	}
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the background sync until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
			defer stop()

			return opts.app.Run(ctx)
		},
	}
}

func newVersionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
		},
	}
}

// readPayload accepts inline JSON or @path.
func readPayload(value string) (json.RawMessage, error) {
	value = strings.TrimSpace(value)
	if path, ok := strings.CutPrefix(value, "@"); ok {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		value = strings.TrimSpace(string(raw))
	}

	if value == "" {
		return nil, errEmptyPayload
	}
	if !json.Valid([]byte(value)) {
		return nil, fmt.Errorf("payload is not valid JSON")
	}
	return json.RawMessage(value), nil
}
