package domain

import "fmt"

// DayStatus is what a supervisor is doing on a given day.
type DayStatus string

const (
	StatusSubida    DayStatus = "S"
	StatusInduction DayStatus = "I"
	StatusDrilling  DayStatus = "P"
	StatusBajada    DayStatus = "B"
	StatusRest      DayStatus = "D"
	StatusEmpty     DayStatus = "-"
)

// AllStatuses lists every status in legend order.
var AllStatuses = []DayStatus{
	StatusSubida,
	StatusInduction,
	StatusDrilling,
	StatusBajada,
	StatusRest,
	StatusEmpty,
}

func (s DayStatus) IsValid() bool {
	switch s {
	case StatusSubida, StatusInduction, StatusDrilling, StatusBajada, StatusRest, StatusEmpty:
		return true
	}
	return false
}

// Label returns the long name shown in legends and tooltips.
func (s DayStatus) Label() string {
	switch s {
	case StatusSubida:
		return "Subida"
	case StatusInduction:
		return "Induction"
	case StatusDrilling:
		return "Drilling"
	case StatusBajada:
		return "Bajada"
	case StatusRest:
		return "Rest"
	case StatusEmpty:
		return "Empty"
	default:
		return string(s)
	}
}

// OnSite reports whether the supervisor is physically at the rig.
func (s DayStatus) OnSite() bool {
	switch s {
	case StatusSubida, StatusInduction, StatusDrilling, StatusBajada:
		return true
	}
	return false
}

func ParseDayStatus(v string) (DayStatus, error) {
	s := DayStatus(v)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown day status %q", v)
	}
	return s, nil
}
