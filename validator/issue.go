package validator

// Issue is a single diagnostic produced by a validation rule. Issues are
// immutable once created.
type Issue struct {
	// Code is the symbolic rule identifier, e.g. "PARAMETER_SCHEMA_TYPE_MISSING".
	Code string `yaml:"code" json:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message" json:"message"`
	// Context points at the offending node, e.g. "path:/pets,parameter:limit".
	Context string `yaml:"context,omitempty" json:"context,omitempty"`
}

// Result is an ordered, append-only sequence of issues. Rules only ever
// append; nothing removes, reorders, or short-circuits, so a Result always
// reflects every rule that matched.
type Result struct {
	issues []Issue
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{}
}

// Append adds issue to the end of the sequence.
func (r *Result) Append(issue Issue) {
	r.issues = append(r.issues, issue)
}

// Issues returns the accumulated issues in append order.
func (r *Result) Issues() []Issue {
	if r == nil {
		return nil
	}
	return r.issues
}

// Len returns the number of accumulated issues.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.issues)
}

// Valid reports whether no issues were accumulated.
func (r *Result) Valid() bool {
	return r.Len() == 0
}

// ByCode returns the issues carrying code, preserving append order.
func (r *Result) ByCode(code string) []Issue {
	if r == nil {
		return nil
	}
	var matched []Issue
	for _, issue := range r.issues {
		if issue.Code == code {
			matched = append(matched, issue)
		}
	}
	return matched
}
