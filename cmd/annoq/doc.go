// Command annoq manages annotation review queues from the terminal: queue
// CRUD, bulk enrollment, claiming the next eligible item, completing items,
// and inspecting the audit log. Output renders as tables on a terminal and
// as JSON otherwise (or with --json).
package main
