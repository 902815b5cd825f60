package domain

// Status models the coarse order lifecycle. Values are stored as small
// integers; the zero value is invalid.
type Status int

const (
	StatusNew Status = iota + 1
	StatusInProduction
	StatusReady
	StatusShipped
	StatusDone
)

var statusNames = map[Status]string{
	StatusNew:          "new",
	StatusInProduction: "in_production",
	StatusReady:        "ready",
	StatusShipped:      "shipped",
	StatusDone:         "done",
}

// statusTransitions is the allowed-transition table. Ready orders may skip
// shipping entirely (counter pickup).
var statusTransitions = map[Status][]Status{
	StatusNew:          {StatusInProduction},
	StatusInProduction: {StatusReady},
	StatusReady:        {StatusShipped, StatusDone},
	StatusShipped:      {StatusDone},
	StatusDone:         {},
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// CanTransitionTo reports whether moving to next is legal. Re-asserting the
// current status is always allowed (idempotent updates).
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
