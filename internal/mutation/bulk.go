package mutation

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/audit"
	"github.com/chrisdamba/foodadmin/internal/listing"
)

// BulkResult counts the outcome of a bulk delete.
type BulkResult struct {
	Attempted int
	Deleted   int
	Failed    []string
}

// BulkDelete deletes every record of the screen's visible view that pick
// selects. It confirms once, deletes one record at a time, skips failures and
// refetches the screen at the end. label names the subset in messages, as in
// "inactive drivers".
func BulkDelete[T any](
	ctx context.Context,
	d *Dispatcher,
	screen *listing.Screen[T],
	label string,
	pick func(T) bool,
	del func(ctx context.Context, id string) (*api.Envelope, error),
) (BulkResult, error) {
	spec := screen.Spec()

	var ids []string
	for _, r := range screen.Visible() {
		if pick(r) {
			ids = append(ids, spec.Key(r))
		}
	}

	var res BulkResult
	if len(ids) == 0 {
		d.notify.Success(fmt.Sprintf("No %s %ss to delete", label, spec.Entity))
		return res, nil
	}

	prompt := fmt.Sprintf("Delete %d %s %s(s)? This action cannot be undone.", len(ids), label, spec.Entity)
	ok, err := d.prompt.Confirm(prompt)
	if err != nil {
		return res, fmt.Errorf("confirm bulk delete: %w", err)
	}
	if !ok {
		return res, ErrDeclined
	}

	bar := progressbar.NewOptions(len(ids),
		progressbar.OptionSetWriter(d.progress),
		progressbar.OptionSetDescription("deleting "+label+" "+spec.Entity+"s"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var interrupted error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			d.logger.Warn("bulk delete interrupted", "deleted", res.Deleted, "remaining", len(ids)-res.Attempted, "error", err)
			interrupted = err
			break
		}
		res.Attempted++
		_, err := del(ctx, id)
		e := audit.NewEvent(d.actor, "delete", spec.Entity, id)
		if err != nil {
			d.logger.Error("bulk delete item failed", "entity", spec.Entity, "id", id, "error", err)
			res.Failed = append(res.Failed, id)
			e.Outcome, e.Message = audit.OutcomeFailure, api.Message(err, err.Error())
		} else {
			res.Deleted++
			e.Outcome = audit.OutcomeSuccess
		}
		if err := d.sink.Record(ctx, e); err != nil {
			d.logger.Warn("audit event not recorded", "action", "delete", "error", err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	// a cancelled context cannot refetch; the screen keeps its last list
	if interrupted == nil {
		d.refresh(ctx, screen)
	}
	d.notify.Success(fmt.Sprintf("Successfully deleted %d of %d %s(s)", res.Deleted, res.Attempted, spec.Entity))
	if interrupted != nil {
		return res, fmt.Errorf("bulk delete interrupted after %d of %d %s(s): %w", res.Attempted, len(ids), spec.Entity, interrupted)
	}
	return res, nil
}
