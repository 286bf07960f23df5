package settle

import (
	"context"

	"github.com/rs/zerolog"
)

// Opts configures a translation.  It is built from the Option values passed to To or Do.
type Opts struct {
	// Context bounds the wait on the input future.  When it is done first the returned future is canceled.
	// Defaults to context.Background().
	Context context.Context
	// OnSuccess is invoked once, before the tuple is produced, when the input future completes.
	OnSuccess func()
	// OnFailure is invoked once, before the tuple is produced, when the input future fails.
	OnFailure func()
	// Logger receives debug events on settlement and an error event when a hook panics.
	// Defaults to the logger attached to Context, which is disabled unless one was attached.
	Logger *zerolog.Logger
}

// Option sets a field of Opts.
type Option func(*Opts)

// OnSuccess sets the hook invoked when the input future completes successfully.
func OnSuccess(hook func()) Option {
	return func(o *Opts) {
		o.OnSuccess = hook
	}
}

// OnFailure sets the hook invoked when the input future fails.
func OnFailure(hook func()) Option {
	return func(o *Opts) {
		o.OnFailure = hook
	}
}

// WithContext bounds the wait on the input future by ctx.  The input future itself is never canceled.
func WithContext(ctx context.Context) Option {
	return func(o *Opts) {
		o.Context = ctx
	}
}

// WithLogger sets the logger used by the translation.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Opts) {
		o.Logger = &logger
	}
}

func newOpts(opts []Option) Opts {
	o := Opts{Context: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	o.validate()

	if o.Logger == nil {
		o.Logger = zerolog.Ctx(o.Context)
	}

	return o
}

func (o Opts) validate() {
	if o.Context == nil {
		panic("settle context must not be nil")
	}
}
