package formatter

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	// Should contain rounded border characters
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestRegimeLine(t *testing.T) {
	got := stripANSI(RegimeLine(domain.ScheduleConfig{WorkDays: 21, RestDays: 7, InductionDays: 3}))
	assert.Equal(t, "Regime 21x7 | 3 induction days", got)
}

func TestDayRange(t *testing.T) {
	assert.Equal(t, "Days 30 - 59", DayRange(30, 59))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "day", Pluralize(1, "day", "days"))
	assert.Equal(t, "days", Pluralize(0, "day", "days"))
	assert.Equal(t, "days", Pluralize(2, "day", "days"))
}

func TestHeader(t *testing.T) {
	got := stripANSI(Header("Legend"))
	assert.Equal(t, "LEGEND\n──────", got)
}

func TestClassifyCount(t *testing.T) {
	tests := []struct {
		name               string
		count, day, s3Fill int
		want               CountClass
	}{
		{"two is valid", 2, 40, 14, CountValid},
		{"three is always an error", 3, 2, 14, CountError},
		{"one before S3 drills is a warning", 1, 10, 14, CountWarning},
		{"zero before S3 drills is a warning", 0, 0, 14, CountWarning},
		{"one once S3 drills is an error", 1, 14, 14, CountError},
		{"S3 never drills", 1, 100, -1, CountError},
		{"S3 never drills, day zero", 0, 0, -1, CountError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCount(tt.count, tt.day, tt.s3Fill))
		})
	}
}

func TestStatusStyle_EveryStatusRenders(t *testing.T) {
	for _, s := range domain.AllStatuses {
		assert.Equal(t, string(s), stripANSI(StatusStyle(s).Render(string(s))))
	}
}
