package clean

import (
	"go.uber.org/zap"

	"github.com/icmixed/league-cli/internal/model"
)

// Stage is one pure transformation over the match table. Stages never
// mutate their input; each returns a fresh slice.
type Stage func([]model.Match) []model.Match

// stages composes the pipeline in its fixed order. Sorting followed by
// sequential ID assignment makes the IDs deterministic, so the ID stages
// must never be reordered or parallelized internally.
var stages = []Stage{
	FixDates,
	ClassifyDivisions,
	ValidateLines,
	AssignTeamMatchIDs,
	AssignMatchIDs,
}

// Run cleans one batch of raw rows and returns the cleaned rows together
// with the validation report. No anomaly stops the run: unparseable input
// becomes a sentinel value and structural problems surface in the report.
func Run(rows []model.Match) ([]model.Match, model.Report) {
	out := rows
	for _, stage := range stages {
		out = stage(out)
	}

	report := BuildReport(out)

	if report.AllDatesBad {
		zap.L().Warn("all dates failed to parse - systemic parse problem, check the input data",
			zap.Int("rows", report.Rows))
	} else if report.BadDates > 0 {
		zap.L().Warn("some dates failed to parse",
			zap.Int("bad_dates", report.BadDates),
			zap.Int("rows", report.Rows))
	}
	if len(report.BadDivisions) > 0 {
		zap.L().Warn("divisions outside the expected schema",
			zap.Any("value_counts", report.BadDivisions))
	}
	if len(report.BadLines) > 0 {
		zap.L().Warn("invalid line values",
			zap.Any("value_counts", report.BadLines))
	}
	if len(report.BadTeamMatches) > 0 {
		zap.L().Warn("team matches with invalid or duplicate lines",
			zap.Ints("team_match_ids", report.BadTeamMatches))
	}
	if report.MatchIDCollision() {
		zap.L().Warn("match ID collision: duplicate source rows",
			zap.Int("rows", report.Rows),
			zap.Int("distinct_match_ids", report.DistinctMatchIDs))
	}

	zap.L().Info("cleaning complete",
		zap.Int("rows", report.Rows),
		zap.Int("team_matches", report.TeamMatches),
		zap.Int("matches", report.DistinctMatchIDs))

	return out, report
}
