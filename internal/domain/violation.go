package domain

type ViolationKind string

const (
	ViolationTooMany        ViolationKind = "too_many"
	ViolationTooFew         ViolationKind = "too_few"
	ViolationInvalidPattern ViolationKind = "invalid_pattern"
)

// ViolationKinds lists kinds in the order the violations list renders them.
var ViolationKinds = []ViolationKind{
	ViolationTooMany,
	ViolationTooFew,
	ViolationInvalidPattern,
}

func (k ViolationKind) IsValid() bool {
	switch k {
	case ViolationTooMany, ViolationTooFew, ViolationInvalidPattern:
		return true
	}
	return false
}

// Violation is a staffing or pattern problem found on a single day.
// Supervisor is set only for pattern violations.
type Violation struct {
	Day        int           `json:"day"`
	Kind       ViolationKind `json:"kind"`
	Supervisor string        `json:"supervisor,omitempty"`
	Message    string        `json:"message"`
}
