// =============================================================================
// Performance Index Calculator - Shared Types
// =============================================================================
//
// This package contains types shared by the session orchestrator and the
// CLI commands.
//
// =============================================================================

package types

// Stage names the point a session reached.
type Stage string

const (
	StageCourseCount   Stage = "course_count"
	StageCourseValues  Stage = "course_values"
	StageSPI           Stage = "spi"
	StageSemesterCount Stage = "semester_count"
	StageSemesterSPIs  Stage = "semester_spis"
	StageCPI           Stage = "cpi"
	StageDone          Stage = "done"
)

// Report is the outcome of one interactive session.
//
// Fields are filled in as the session progresses, so a failed session still
// reports what it had collected. SPI and CPI are only meaningful when
// HasSPI / HasCPI are true.
type Report struct {
	// SessionID identifies the run in logs.
	SessionID string

	// Stage is the last stage entered.
	Stage Stage

	// Courses is the number of courses in the semester.
	Courses int

	// Credits and Grades are parallel, indexed by course.
	Credits []float64
	Grades  []float64

	SPI    float64
	HasSPI bool

	// Semesters is the number of semesters whose SPI was entered.
	Semesters int

	// SemesterSPIs holds one SPI per semester.
	SemesterSPIs []float64

	CPI    float64
	HasCPI bool
}
