package animation

import "github.com/sgostarter/i/l"

// ErrorSink receives the errors of binders that failed during Updater.Update.
type ErrorSink func(binder *Binder, at Time, err error)

type Options struct {
	logger         l.Wrapper
	errorSink      ErrorSink
	invarianceSkip bool
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// ErrorSinkOption replaces the default sink, which logs the error.
func ErrorSinkOption(sink ErrorSink) Option {
	return func(o *Options) {
		o.errorSink = sink
	}
}

// InvarianceSkipOption lets the updater skip a binder while the new time stays inside
// the invariant interval that held its previous time.
//
// Only use it with curves that call NotifyValueChange whenever their configuration
// changes. A curve that changes without notifying keeps its binders on the stale value.
func InvarianceSkipOption(skip bool) Option {
	return func(o *Options) {
		o.invarianceSkip = skip
	}
}
