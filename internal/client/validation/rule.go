// Package validation implements the declarative field rules shared by the
// login, signup, create-user and edit-user forms.
//
// A RuleSet maps a field name to an ordered list of rules. Evaluation stops at
// the first failing rule, so a Required rule declared before a Pattern rule
// keeps an empty value from reporting a pattern error. Cross-field rules read
// the other field through the live Form accessor at validation time and never
// capture a value when they are declared.
package validation

import (
	"regexp"
	"sort"
	"strings"
)

// Kind classifies a rule.
type Kind int

const (
	KindRequired Kind = iota
	KindPattern
	KindCrossField
)

// Form gives rules read access to the current values of every field.
type Form interface {
	Value(field string) string
}

// Values is a plain snapshot of form values. It satisfies Form.
type Values map[string]string

func (v Values) Value(field string) string { return v[field] }

// Rule is a single check with the message reported when it fails.
type Rule struct {
	Kind    Kind
	Message string

	// field is the other field a cross-field rule reads.
	field string
	check func(value string, form Form) bool
}

// Passes reports whether value satisfies the rule given the live form.
func (r Rule) Passes(value string, form Form) bool {
	return r.check(value, form)
}

// Required fails on empty or whitespace-only values.
func Required(message string) Rule {
	return Rule{
		Kind:    KindRequired,
		Message: message,
		check: func(value string, _ Form) bool {
			return strings.TrimSpace(value) != ""
		},
	}
}

// Pattern fails when the value does not match re.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{
		Kind:    KindPattern,
		Message: message,
		check: func(value string, _ Form) bool {
			return re.MatchString(value)
		},
	}
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int, message string) Rule {
	return Rule{
		Kind:    KindPattern,
		Message: message,
		check: func(value string, _ Form) bool {
			return len([]rune(value)) >= n
		},
	}
}

// MatchesField fails when the value differs from the current value of
// other. Empty values pass; pair it with Required.
func MatchesField(other, message string) Rule {
	return Rule{
		Kind:    KindCrossField,
		Message: message,
		field:   other,
		check: func(value string, form Form) bool {
			return value == "" || form.Value(other) == value
		},
	}
}

// FieldError is the first failing rule of a field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors holds one message per failing field.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// RuleSet is an ordered mapping from field name to its rules.
type RuleSet struct {
	fields []string
	rules  map[string][]Rule
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{rules: make(map[string][]Rule)}
}

// Field appends rules for a field and returns the set for chaining.
func (rs *RuleSet) Field(name string, rules ...Rule) *RuleSet {
	if _, ok := rs.rules[name]; !ok {
		rs.fields = append(rs.fields, name)
	}
	rs.rules[name] = append(rs.rules[name], rules...)
	return rs
}

// Fields returns the field names in declaration order.
func (rs *RuleSet) Fields() []string {
	return append([]string(nil), rs.fields...)
}

// Rules returns the rules declared for a field.
func (rs *RuleSet) Rules(field string) []Rule {
	return append([]Rule(nil), rs.rules[field]...)
}

// Validate runs the rules of field against value in declaration order and
// returns the first failure as *FieldError. Fields without rules pass.
func (rs *RuleSet) Validate(field, value string, form Form) error {
	for _, r := range rs.rules[field] {
		if !r.Passes(value, form) {
			return &FieldError{Field: field, Message: r.Message}
		}
	}
	return nil
}

// ValidateForm validates every declared field against form. It returns nil
// when all fields pass.
func (rs *RuleSet) ValidateForm(form Form) Errors {
	var errs Errors
	for _, f := range rs.fields {
		if err := rs.Validate(f, form.Value(f), form); err != nil {
			if errs == nil {
				errs = make(Errors)
			}
			errs[f] = err.(*FieldError).Message
		}
	}
	return errs
}

// ValidateFields validates only the named fields, in the set's declaration
// order. Names without rules are ignored.
func (rs *RuleSet) ValidateFields(form Form, names ...string) Errors {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var errs Errors
	for _, f := range rs.fields {
		if !want[f] {
			continue
		}
		if err := rs.Validate(f, form.Value(f), form); err != nil {
			if errs == nil {
				errs = make(Errors)
			}
			errs[f] = err.(*FieldError).Message
		}
	}
	return errs
}

// Dependents returns the fields with a cross-field rule that reads field.
func (rs *RuleSet) Dependents(field string) []string {
	var deps []string
	for _, f := range rs.fields {
		for _, r := range rs.rules[f] {
			if r.Kind == KindCrossField && r.field == field {
				deps = append(deps, f)
				break
			}
		}
	}
	return deps
}
