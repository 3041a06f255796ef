package esierr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option   { return func(e *Error) { e.Message = msg } }
func WithPath(path string) Option     { return func(e *Error) { e.Path = path } }
func WithEntity(entity string) Option { return func(e *Error) { e.Entity = entity } }
func WithField(field string) Option   { return func(e *Error) { e.Field = field } }
func WithOverflow() Option            { return func(e *Error) { e.Overflow = true } }

// WithLocation sets Entity, Field and Path at once, keeping any value
// already set.
func WithLocation(entity, field, path string) Option {
	return func(e *Error) {
		if e.Entity == "" {
			e.Entity = entity
		}
		if e.Field == "" {
			e.Field = field
		}
		if e.Path == "" {
			e.Path = path
		}
	}
}
