// Package sqlerr classifies PostgreSQL driver errors and converts them into
// client-facing errs.HTTPError values (e.g. a unique violation becomes a
// 400 with a readable message).
package sqlerr
