package service

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/MKhiriev/career-dashboard/models"
)

// Display helpers shared by the terminal views.

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders bytes in 1024-based units with at most two
// decimals, e.g. 1536 -> "1.5 KB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(fileSizeUnits) {
		i = len(fileSizeUnits) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))

	return strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64) + " " + fileSizeUnits[i]
}

// FormatDate renders t as "Jan 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2006")
}

// FormatDateRange renders the period of a milestone.
func FormatDateRange(m models.Milestone) string {
	start := FormatDate(m.StartDate)
	switch {
	case m.Current:
		return start + " - Present"
	case m.EndDate != nil:
		return start + " - " + FormatDate(*m.EndDate)
	default:
		return start
	}
}

// CalculateDuration renders the length of a milestone in days, months or
// years and months. Open-ended milestones run until now.
func CalculateDuration(m models.Milestone, now time.Time) string {
	end := now
	if !m.Current && m.EndDate != nil {
		end = *m.EndDate
	}

	diff := end.Sub(m.StartDate)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))

	switch {
	case days < 30:
		return plural(days, "day")
	case days < 365:
		return plural(days/30, "month")
	default:
		out := plural(days/365, "year")
		if months := (days % 365) / 30; months > 0 {
			out += " " + plural(months, "month")
		}
		return out
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// MilestoneIcon returns a short marker for the milestone type.
func MilestoneIcon(t models.MilestoneType) string {
	switch t {
	case models.MilestoneEducation:
		return "🎓"
	case models.MilestoneJob:
		return "💼"
	case models.MilestoneCertification:
		return "📜"
	case models.MilestoneAchievement:
		return "🏆"
	case models.MilestoneProject:
		return "💻"
	default:
		return "📌"
	}
}

// StatusIcon returns a short marker for a resume processing status.
func StatusIcon(s models.ProcessingStatus) string {
	switch s {
	case models.ProcessingCompleted:
		return "✅"
	case models.ProcessingProcessing:
		return "⏳"
	case models.ProcessingFailed:
		return "❌"
	default:
		return "⏸"
	}
}
