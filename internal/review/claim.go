package review

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// ClaimNext hands the oldest eligible item in a queue to reviewerID. An item
// is eligible when it is pending and either unleased or its lease has
// expired. The claim itself is a conditional update matching the exact lease
// state that was read, so two concurrent callers can never both win the same
// item; the loser re-selects a bounded number of times and then reports no
// item. A nil item with a nil error means the queue has nothing to hand out.
//
// When the claimed object is an observation, the returned item carries the
// parent trace identifier as a read-only enrichment outside the claim. The
// lookup is best effort; on failure the field stays empty.
func (s *Store) ClaimNext(ctx context.Context, queueID, reviewerID string, now time.Time) (*Item, error) {
	ctx = ensureContext(ctx)
	queueID = strings.TrimSpace(queueID)
	reviewerID = strings.TrimSpace(reviewerID)
	if queueID == "" {
		return nil, Wrap(ErrInvalidInput, "claim", "queue id is required", nil)
	}
	if reviewerID == "" {
		return nil, Wrap(ErrInvalidInput, "claim", "reviewer id is required", nil)
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	if _, err := s.GetQueue(ctx, queueID); err != nil {
		return nil, err
	}

	cutoff := now.Add(-s.leaseDuration)
	for attempt := 0; attempt < s.claimAttempts; attempt++ {
		candidate, err := s.nextEligible(ctx, queueID, cutoff)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			return nil, nil
		}

		won, err := s.acquireLease(ctx, candidate, reviewerID, now)
		if err != nil {
			return nil, err
		}
		if !won {
			// Lost the race on the lease triple; someone else claimed
			// the row between our read and write.
			continue
		}

		candidate.LeaseHolderID = reviewerID
		started := now
		candidate.LeaseStartedAt = &started
		if err := s.attachParent(ctx, candidate); err != nil {
			// The lease is already written; a failed enrichment lookup
			// degrades to an empty parent field, not a failed claim.
			s.logger.Warn("parent lookup failed", "object", candidate.ObjectID, "error", err)
		}
		s.recordAudit(ctx, queueID, reviewerID, AuditItemClaim, candidate.ObjectID, now)
		return candidate, nil
	}
	return nil, nil
}

// nextEligible selects the oldest claimable item in the queue. Eligibility
// mirrors LeaseExpired: unleased, or leased at or before the cutoff.
func (s *Store) nextEligible(ctx context.Context, queueID string, cutoff time.Time) (*Item, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+itemColumns+` FROM queue_items
         WHERE queue_id = ? AND status = ?
           AND (lease_holder_id IS NULL OR lease_started_at <= ?)
         ORDER BY created_at ASC, id ASC
         LIMIT 1`,
		queueID,
		StatusPending,
		formatTime(cutoff),
	)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, Wrap(ErrUnavailable, "claim", "select eligible item", err)
	}
	return item, nil
}

// acquireLease writes the lease pair only if the row still carries the lease
// state the selection read. A zero-row update means a rival claimer won.
func (s *Store) acquireLease(ctx context.Context, item *Item, reviewerID string, now time.Time) (bool, error) {
	query := `UPDATE queue_items
        SET lease_holder_id = ?, lease_started_at = ?
        WHERE id = ? AND status = ?`
	args := []any{reviewerID, formatTime(now), item.ID, StatusPending}
	if item.LeaseHolderID == "" {
		query += ` AND lease_holder_id IS NULL`
	} else {
		query += ` AND lease_holder_id = ? AND lease_started_at = ?`
		args = append(args, item.LeaseHolderID, formatTime(*item.LeaseStartedAt))
	}

	res, err := s.execWithRetry(ctx, query, args...)
	if err != nil {
		return false, Wrap(ErrUnavailable, "claim", "acquire lease", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, Wrap(ErrUnavailable, "claim", "rows affected", err)
	}
	return affected == 1, nil
}
