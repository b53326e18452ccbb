package domain

// SupervisorTrack is one supervisor's status for every day of the horizon.
type SupervisorTrack struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	EntryDay int         `json:"entry_day"`
	Days     []DayStatus `json:"days"`
}

// StatusAt returns the status on day, or StatusEmpty outside the track.
func (t SupervisorTrack) StatusAt(day int) DayStatus {
	if day < 0 || day >= len(t.Days) {
		return StatusEmpty
	}
	return t.Days[day]
}

// FirstActiveDay returns the first day that is not Empty, or -1.
func (t SupervisorTrack) FirstActiveDay() int {
	for i, s := range t.Days {
		if s != StatusEmpty {
			return i
		}
	}
	return -1
}

// FirstDayWith returns the first day carrying status, or -1.
func (t SupervisorTrack) FirstDayWith(status DayStatus) int {
	for i, s := range t.Days {
		if s == status {
			return i
		}
	}
	return -1
}

// ScheduleResult is the complete output of one schedule calculation.
// All tracks and DrillingCount have length TotalDays.
type ScheduleResult struct {
	Supervisors      []SupervisorTrack `json:"supervisors"`
	DrillingCount    []int             `json:"drilling_count"`
	TotalDays        int               `json:"total_days"`
	Violations       []Violation       `json:"violations"`
	S3EntryDay       int               `json:"s3_entry_day"`
	CoverageStartDay int               `json:"coverage_start_day"`
}

// Supervisor returns the track with the given ID.
func (r ScheduleResult) Supervisor(id string) (SupervisorTrack, bool) {
	for _, t := range r.Supervisors {
		if t.ID == id {
			return t, true
		}
	}
	return SupervisorTrack{}, false
}
