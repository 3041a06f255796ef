// Package esierr defines the errors returned when an ESI document
// cannot be converted.
//
// Every failure is reported as a single *Error carrying its Kind and,
// where known, the entity, field and document path involved. Errors
// are usually wrapped with a stack trace by the caller; use As or
// KindOf to inspect them.
package esierr
