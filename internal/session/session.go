// =============================================================================
// Performance Index Calculator - Session Orchestrator
// =============================================================================
//
// This module drives one interactive session from the first prompt to the
// CPI line. It owns the course and semester sequences for the lifetime of
// the run and hands them to the collector and the index calculators.
//
// SESSION PIPELINE:
//   1. Read the number of courses           (reject 0)
//   2. Collect course credits and grades
//   3. Compute and print the SPI            (reject zero total credits)
//   4. Read the number of semesters         (reject 0)
//   5. Collect one SPI per semester
//   6. Compute and print the CPI
//
// ERROR HANDLING:
//   Every rejection prints its message to the output stream and ends the
//   session. The returned error is a *validation.Error; the CLI decides the
//   exit status.
//
// =============================================================================

package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/ginjaninja78/performance-index/internal/collector"
	"github.com/ginjaninja78/performance-index/internal/config"
	"github.com/ginjaninja78/performance-index/internal/index"
	"github.com/ginjaninja78/performance-index/internal/types"
	"github.com/ginjaninja78/performance-index/internal/validation"
)

// Prompts and messages written to the output stream.
const (
	PromptCourses   = "Enter number of courses in the semester: "
	PromptSemesters = "Enter number of semesters: "

	FieldCourses      = "number of courses"
	FieldCredits      = "course credits"
	FieldGrades       = "course grades"
	FieldSemesters    = "number of semesters"
	FieldSemesterSPIs = "SPI values for each semester"

	MsgZeroCourses = "Enter the correct number of courses"
)

// =============================================================================
// SESSION STRUCTURE
// =============================================================================

// Session runs the interactive SPI/CPI calculation.
type Session struct {
	// cfg supplies output formatting.
	cfg *config.Config

	// collector reads counts and values from the input stream and writes
	// their prompts.
	collector *collector.Collector

	// out receives results and rejection messages.
	out io.Writer

	// id correlates log lines of one run.
	id string

	logger *slog.Logger
}

// New creates a Session reading from in and writing to out.
//
// PARAMETERS:
//   - cfg: The application configuration. nil means defaults.
//   - in: The input stream (normally os.Stdin).
//   - out: The output stream (normally os.Stdout).
//   - logger: Destination for diagnostics. nil discards them.
func New(cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	id := uuid.New().String()

	return &Session{
		cfg:       cfg,
		collector: collector.New(in, out),
		out:       out,
		id:        id,
		logger:    logger.With("session", id),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// =============================================================================
// MAIN SESSION FUNCTION
// =============================================================================

// Run executes the session pipeline.
//
// RETURNS:
//   - The report, populated up to the stage reached. Never nil.
//   - A *validation.Error if the user's input was rejected, or a plain error
//     if the streams failed or ctx was cancelled between stages.
func (s *Session) Run(ctx context.Context) (*types.Report, error) {
	report := &types.Report{SessionID: s.id}

	s.logger.Debug("session started")

	err := s.run(ctx, report)
	if err != nil {
		s.logger.Warn("session ended early",
			"stage", report.Stage,
			"kind", validation.KindOf(err),
			"error", err,
		)
		return report, err
	}

	s.logger.Info("session completed",
		"courses", report.Courses,
		"semesters", report.Semesters,
		"spi", report.SPI,
		"cpi", report.CPI,
		"tokens", s.collector.TokensRead(),
	)

	return report, nil
}

// run performs the stages in order, stopping at the first failure.
func (s *Session) run(ctx context.Context, report *types.Report) error {
	// =========================================================================
	// STAGE 1: COURSE COUNT
	// =========================================================================

	report.Stage = types.StageCourseCount

	courses, err := s.collector.ReadCount(PromptCourses, FieldCourses)
	if err != nil {
		return s.reject(err)
	}
	report.Courses = courses

	if courses == 0 {
		return s.reject(validation.New(validation.KindZeroCourses, FieldCourses, MsgZeroCourses))
	}

	// =========================================================================
	// STAGE 2: CREDITS AND GRADES
	// =========================================================================

	if err := ctx.Err(); err != nil {
		return err
	}
	report.Stage = types.StageCourseValues

	report.Credits, err = s.collector.Collect(courses, FieldCredits)
	if err != nil {
		return s.reject(err)
	}
	report.Grades, err = s.collector.Collect(courses, FieldGrades)
	if err != nil {
		return s.reject(err)
	}

	s.logger.Debug("course values collected", "credits", report.Credits, "grades", report.Grades)

	// =========================================================================
	// STAGE 3: SPI
	// =========================================================================

	report.Stage = types.StageSPI

	spi, err := index.SPI(report.Credits, report.Grades)
	if err != nil {
		return s.reject(err)
	}
	report.SPI = spi
	report.HasSPI = true

	if err := s.printIndex("SPI", spi); err != nil {
		return err
	}

	// =========================================================================
	// STAGE 4: SEMESTER COUNT
	// =========================================================================

	if err := ctx.Err(); err != nil {
		return err
	}
	report.Stage = types.StageSemesterCount

	sems, err := s.collector.ReadCount(PromptSemesters, FieldSemesters)
	if err != nil {
		return s.reject(err)
	}
	report.Semesters = sems

	if sems == 0 {
		// CPI rejects an empty sequence; let it produce the error.
		_, err := index.CPI(nil)
		return s.reject(err)
	}

	// =========================================================================
	// STAGE 5: SEMESTER SPIs
	// =========================================================================

	if err := ctx.Err(); err != nil {
		return err
	}
	report.Stage = types.StageSemesterSPIs

	report.SemesterSPIs, err = s.collector.Collect(sems, FieldSemesterSPIs)
	if err != nil {
		return s.reject(err)
	}

	// =========================================================================
	// STAGE 6: CPI
	// =========================================================================

	report.Stage = types.StageCPI

	cpi, err := index.CPI(report.SemesterSPIs)
	if err != nil {
		return s.reject(err)
	}
	report.CPI = cpi
	report.HasCPI = true

	if err := s.printIndex("CPI", cpi); err != nil {
		return err
	}

	report.Stage = types.StageDone
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// reject prints the user-facing message of a validation error and returns
// err unchanged. Non-validation errors are returned without printing.
func (s *Session) reject(err error) error {
	if !validation.IsValidationError(err) {
		return err
	}

	if _, werr := fmt.Fprintln(s.out, validation.MessageOf(err)); werr != nil {
		return fmt.Errorf("failed to write message: %w", werr)
	}

	return err
}

// printIndex writes "<label>: <value>" in fixed-point notation.
func (s *Session) printIndex(label string, value float64) error {
	formatted := strconv.FormatFloat(value, 'f', s.cfg.Precision(), 64)
	if _, err := fmt.Fprintf(s.out, "%s: %s\n", label, formatted); err != nil {
		return fmt.Errorf("failed to write %s: %w", label, err)
	}
	return nil
}
