// Package review persists annotation queues in SQLite and implements the
// claim-and-lease protocol that hands queue items to concurrent reviewers.
//
// The Store manages database connections, schema initialization, queue CRUD,
// membership queries, and the three core transitions: ClaimNext (atomic
// claim of the oldest eligible item), Enroll (idempotent bulk insertion of
// pending items), and Complete (terminal transition independent of lease
// ownership). Lease expiry is evaluated lazily at claim time through the
// pure LeaseExpired predicate; no background sweeper runs.
//
// A claimed item stays in the pending status. The claim is encoded by the
// lease pair (lease_holder_id, lease_started_at), which is only ever written
// through the conditional updates in ClaimNext and Complete. Two claimers
// can therefore never hold the same item at once, even across processes
// sharing the database file.
//
// Treat this package as the single source of truth for queue semantics; when
// you add item fields or statuses, update schema.sql and bump schemaVersion.
package review
