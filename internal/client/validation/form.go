package validation

// FormState is a live form: it holds the current value of every field and
// the message currently shown under each one. It satisfies Form, so
// cross-field rules always see the latest values.
type FormState struct {
	rules   *RuleSet
	values  Values
	errors  Errors
	touched map[string]bool
}

// NewFormState starts a form with optional initial values (e.g. the row
// being edited). Initial values are not validated until touched.
func NewFormState(rules *RuleSet, initial Values) *FormState {
	values := make(Values, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &FormState{
		rules:   rules,
		values:  values,
		errors:  make(Errors),
		touched: make(map[string]bool),
	}
}

func (f *FormState) Value(field string) string { return f.values[field] }

// Set records a keystroke-level change of field and re-validates it together
// with every touched field whose cross-field rules read it. It returns the
// message now shown under field, or "".
func (f *FormState) Set(field, value string) string {
	f.values[field] = value
	f.touched[field] = true

	f.revalidate(field)
	for _, dep := range f.rules.Dependents(field) {
		if f.touched[dep] {
			f.revalidate(dep)
		}
	}
	return f.errors[field]
}

func (f *FormState) revalidate(field string) {
	if err := f.rules.Validate(field, f.values[field], f); err != nil {
		f.errors[field] = err.(*FieldError).Message
		return
	}
	delete(f.errors, field)
}

// Error returns the message currently shown under field.
func (f *FormState) Error(field string) string { return f.errors[field] }

// Errors returns a copy of every message currently shown.
func (f *FormState) Errors() Errors {
	out := make(Errors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Submit validates every field, marks them touched and returns a snapshot of
// the values. errs is nil when the form may be submitted.
func (f *FormState) Submit() (Values, Errors) {
	for _, field := range f.rules.Fields() {
		f.touched[field] = true
		f.revalidate(field)
	}

	snapshot := make(Values, len(f.values))
	for k, v := range f.values {
		snapshot[k] = v
	}
	if len(f.errors) == 0 {
		return snapshot, nil
	}
	return snapshot, f.Errors()
}
