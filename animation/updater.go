package animation

import (
	"github.com/sgostarter/i/l"
)

// Updater drives every registered binder once per tick. It belongs to the host's
// render loop and is not safe for concurrent use.
//
// Binders are updated in registration order. A binder unregistered during a pass is not
// updated later in that pass; a binder registered during a pass waits for the next one.
type Updater struct {
	logger l.Wrapper
	opts   *Options

	binders    []*Binder
	registered map[*Binder]struct{}
	updating   bool
}

func NewUpdater(options ...Option) *Updater {
	opts := optionNew(options...)

	return &Updater{
		logger:     opts.logger.WithFields(l.StringField(l.ClsKey, "Updater")),
		opts:       opts,
		registered: make(map[*Binder]struct{}),
	}
}

// Register adds b. Registering a binder twice does nothing.
func (u *Updater) Register(b *Binder) error {
	if b == nil || b.updater != u {
		return wrapf(ErrInvalidArgument, "binder belongs to another updater")
	}

	if !b.bound {
		return wrapf(ErrInvalidArgument, "binder %d was unbound", b.id)
	}

	if _, ok := u.registered[b]; ok {
		return nil
	}

	u.registered[b] = struct{}{}
	u.binders = append(u.binders, b)

	b.attach()

	return nil
}

// Unregister removes b and unbinds it. Unknown binders are ignored.
func (u *Updater) Unregister(b *Binder) {
	if _, ok := u.registered[b]; !ok {
		return
	}

	delete(u.registered, b)

	for idx, rb := range u.binders {
		if rb == b {
			u.binders = append(u.binders[:idx:idx], u.binders[idx+1:]...)

			break
		}
	}

	b.detach()
}

func (u *Updater) Len() int {
	return len(u.binders)
}

// Binders returns the registered binders in update order.
func (u *Updater) Binders() []*Binder {
	return append([]*Binder(nil), u.binders...)
}

// Clear unbinds every binder.
func (u *Updater) Clear() {
	for _, b := range u.Binders() {
		u.Unregister(b)
	}
}

// Update evaluates every registered binder at at and returns how many failed. A failing
// binder is reported to the error sink and does not stop the others.
func (u *Updater) Update(at Time) (failed int) {
	if u.updating {
		u.logger.WithFields(l.StringField("at", at.String())).Error("nested update ignored")

		return 0
	}

	u.updating = true
	defer func() {
		u.updating = false
	}()

	for _, b := range u.Binders() {
		if _, ok := u.registered[b]; !ok {
			continue
		}

		if err := u.updateBinder(b, at); err != nil {
			failed++

			u.reportError(b, at, err)
		}
	}

	return
}

func (u *Updater) updateBinder(b *Binder, at Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = wrapf(ErrBinderPanic, "%v", r)
		}
	}()

	return b.update(at, u.opts.invarianceSkip)
}

func (u *Updater) reportError(b *Binder, at Time, err error) {
	if u.opts.errorSink != nil {
		u.opts.errorSink(b, at, err)

		return
	}

	u.logger.WithFields(l.ErrorField(err), l.UInt64Field("binderID", b.ID()),
		l.StringField("at", at.String())).Error("binder update failed")
}
