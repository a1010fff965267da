package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/mutation"
	"github.com/chrisdamba/foodadmin/internal/screens"
)

func documentsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "Review the documents drivers upload",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List driver documents",
		Args:  cobra.NoArgs,
	}
	lf := bindListFlags(list, screens.Documents)
	list.RunE = func(cmd *cobra.Command, args []string) error {
		return showList(cmd.Context(), a, screens.NewDocuments(a.client), lf)
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Count documents by review state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.DocumentStats(cmd.Context())
			if err != nil {
				if errors.Is(err, api.ErrNoSession) {
					return err
				}
				// counters fall back to zero
				a.log.Error("document stats fetch failed", "error", err)
				s = models.DocumentStats{}
			}
			if a.output == "json" {
				return writeJSON(a.out, s)
			}
			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Pending review\t%d\n", s.PendingDocuments)
			fmt.Fprintf(tw, "Approved\t%d\n", s.ApprovedDocuments)
			fmt.Fprintf(tw, "Rejected\t%d\n", s.RejectedDocuments)
			fmt.Fprintf(tw, "Expiring soon\t%d\n", s.ExpiringSoon)
			return tw.Flush()
		},
	}

	approve := &cobra.Command{
		Use:   "approve DOCUMENT_ID",
		Short: "Approve a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			screen := screens.NewDocuments(a.client)
			defer screen.Close()
			err := a.mutate(cmd.Context(), mutation.Mutation{
				Action:   "approve",
				Entity:   "document",
				TargetID: id,
				Confirm:  "Are you sure you want to approve this document?",
				Success:  "Document approved successfully!",
				Failure:  "Failed to approve document. Please try again.",
				Send: func(ctx context.Context, _ string) (*api.Envelope, error) {
					return a.client.ApproveDocument(ctx, id)
				},
			}, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}

	var reason string
	reject := &cobra.Command{
		Use:   "reject DOCUMENT_ID",
		Short: "Reject a document with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			m := mutation.Mutation{
				Action:   "reject",
				Entity:   "document",
				TargetID: id,
				Success:  "Document rejected successfully!",
				Failure:  "Failed to reject document. Please try again.",
				Send: func(ctx context.Context, asked string) (*api.Envelope, error) {
					if asked != "" {
						return a.client.RejectDocument(ctx, id, asked)
					}
					return a.client.RejectDocument(ctx, id, reason)
				},
			}
			if cmd.Flags().Changed("reason") {
				reason = strings.TrimSpace(reason)
				if reason == "" {
					return a.settle(mutation.ErrDeclined)
				}
			} else {
				m.Reason = "Please provide a reason for rejection:"
			}
			screen := screens.NewDocuments(a.client)
			defer screen.Close()
			err := a.mutate(cmd.Context(), m, screen)
			if err == nil {
				showCounts(a, screen)
			}
			return err
		},
	}
	reject.Flags().StringVar(&reason, "reason", "", "why the document is rejected (asked for when omitted)")

	cmd.AddCommand(list, stats, approve, reject)
	return cmd
}
