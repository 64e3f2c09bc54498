package animation

// Parameter describes one animatable property of a BindingBlock.
type Parameter struct {
	ID    string
	Types []Type
}

// BindingBlock exposes the animatable properties of an object.
type BindingBlock interface {
	EnumSupportedParameters() []Parameter

	IsBound(id string) bool
	GetBoundUpdater(id string) *Updater

	Bind(id string, updater *Updater, curve Curve) error
	Unbind(id string)
	UnbindAll()
	// UnbindAllRecursively also unbinds the blocks of descendant objects.
	UnbindAllRecursively()
}

// TypeSolver picks the type a curve is bound with, or nil when none fits.
type TypeSolver func(types []Type, curve Curve) Type

// FirstSupportedType is the default TypeSolver: the first declared type the curve
// supports.
func FirstSupportedType(types []Type, curve Curve) Type {
	for _, t := range types {
		if curve.IsTypeSupported(t) {
			return t
		}
	}

	return nil
}

type easyEntry struct {
	types  []Type
	solver TypeSolver
	setter Setter
	binder *Binder
}

// EasyBindingBlock is a BindingBlock built from named entries, each with its accepted
// types and a setter.
type EasyBindingBlock struct {
	entries             map[string]*easyEntry
	ids                 []string
	descendantUnbinders []func()
}

func NewEasyBindingBlock() *EasyBindingBlock {
	return &EasyBindingBlock{
		entries: make(map[string]*easyEntry),
	}
}

// AddEntry declares the parameter id. A nil solver means FirstSupportedType.
func (bb *EasyBindingBlock) AddEntry(id string, types []Type, solver TypeSolver, setter Setter) error {
	if id == "" || len(types) == 0 || setter == nil {
		return wrapf(ErrInvalidArgument, "entry %q needs types and a setter", id)
	}

	if _, ok := bb.entries[id]; ok {
		return wrapf(ErrInvalidArgument, "entry %q already exists", id)
	}

	for _, t := range types {
		if t == nil {
			return wrapf(ErrInvalidArgument, "entry %q has a nil type", id)
		}
	}

	if solver == nil {
		solver = FirstSupportedType
	}

	bb.entries[id] = &easyEntry{
		types:  append([]Type(nil), types...),
		solver: solver,
		setter: setter,
	}
	bb.ids = append(bb.ids, id)

	return nil
}

// AddDescendantUnbinder registers fn to be called by UnbindAllRecursively.
func (bb *EasyBindingBlock) AddDescendantUnbinder(fn func()) {
	if fn != nil {
		bb.descendantUnbinders = append(bb.descendantUnbinders, fn)
	}
}

func (bb *EasyBindingBlock) EnumSupportedParameters() []Parameter {
	ps := make([]Parameter, 0, len(bb.ids))

	for _, id := range bb.ids {
		ps = append(ps, Parameter{
			ID:    id,
			Types: append([]Type(nil), bb.entries[id].types...),
		})
	}

	return ps
}

func (bb *EasyBindingBlock) IsBound(id string) bool {
	entry, ok := bb.entries[id]

	return ok && entry.binder != nil && entry.binder.IsBound()
}

func (bb *EasyBindingBlock) GetBoundUpdater(id string) *Updater {
	if !bb.IsBound(id) {
		return nil
	}

	return bb.entries[id].binder.Updater()
}

// Bind animates parameter id with curve. A previous binding of id is replaced only when
// the new one succeeds.
func (bb *EasyBindingBlock) Bind(id string, updater *Updater, curve Curve) error {
	entry, ok := bb.entries[id]
	if !ok {
		return wrapf(ErrUnknownEntry, "%s", id)
	}

	if curve == nil {
		return wrapf(ErrInvalidArgument, "nil curve for %s", id)
	}

	t := entry.solver(entry.types, curve)
	if t == nil || !containsType(entry.types, t) || !curve.IsTypeSupported(t) {
		return wrapf(ErrTypeMismatch, "curve supplies none of the types of %s", id)
	}

	binder, err := NewBinder(updater, curve, t, entry.setter)
	if err != nil {
		return err
	}

	if entry.binder != nil {
		entry.binder.Unbind()
	}

	entry.binder = binder

	return nil
}

func (bb *EasyBindingBlock) Unbind(id string) {
	entry, ok := bb.entries[id]
	if !ok || entry.binder == nil {
		return
	}

	entry.binder.Unbind()
	entry.binder = nil
}

func (bb *EasyBindingBlock) UnbindAll() {
	for _, id := range bb.ids {
		bb.Unbind(id)
	}
}

func (bb *EasyBindingBlock) UnbindAllRecursively() {
	bb.UnbindAll()

	for _, fn := range bb.descendantUnbinders {
		fn()
	}
}

func containsType(types []Type, t Type) bool {
	for _, tt := range types {
		if tt == t {
			return true
		}
	}

	return false
}

var _ BindingBlock = (*EasyBindingBlock)(nil)
