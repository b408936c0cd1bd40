package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/repository"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/xuri/excelize/v2"
)

// ExportService builds downloadable backups and reports and accepts
// backups coming back in. Export is the trusted path out; import is the
// untrusted path in and always validates.
type ExportService struct {
	Repo     *repository.ProgressRepository
	Session  *SessionService
	Progress *ProgressService
	Archive  ArchiveProvider

	now func() time.Time
}

func NewExportService(repo *repository.ProgressRepository, session *SessionService, progress *ProgressService, archive ArchiveProvider) *ExportService {
	return &ExportService{
		Repo:     repo,
		Session:  session,
		Progress: progress,
		Archive:  archive,
		now:      time.Now,
	}
}

// ExportFile is one rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportJSON renders the full backup envelope.
func (s *ExportService) ExportJSON(ctx context.Context) (*ExportFile, error) {
	backup := model.BackupFile{
		Version:    model.BackupVersion,
		ExportedAt: s.now(),
		Progress:   s.Repo.Load(ctx),
		Stats:      s.Session.Stats(ctx),
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("snake-scholars-backup-%s.json", s.now().Format(util.DateFormat)),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// ExportCSV renders the two-block report: a Metric,Value summary, a blank
// separator row, then one row per lesson view joined with its mastery
// level. Time spent is whole minutes.
func (s *ExportService) ExportCSV(ctx context.Context) (*ExportFile, error) {
	p := s.Repo.Load(ctx)

	var b strings.Builder
	b.WriteString("Metric,Value\n")
	for _, row := range s.summaryRows(p) {
		fmt.Fprintf(&b, "%s,%v\n", row.name, row.value)
	}
	b.WriteString("\n")

	b.WriteString("Topic ID,Mastery Level,Last Viewed,Time Spent\n")
	for _, lv := range p.LessonsViewed {
		level, ok := p.MasteryFor(lv.TopicID)
		if !ok {
			level = model.MasteryBeginner
		}
		fmt.Fprintf(&b, "%d,%s,%s,%d\n",
			lv.TopicID,
			level,
			lv.Timestamp.Format(util.TimeFormat),
			lv.TimeSpent/60,
		)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("snake-scholars-report-%s.csv", s.now().Format(util.DateFormat)),
		ContentType: "text/csv",
		Data:        []byte(b.String()),
	}, nil
}

// ExportXLSX renders the same report as a two-sheet spreadsheet.
func (s *ExportService) ExportXLSX(ctx context.Context) (*ExportFile, error) {
	p := s.Repo.Load(ctx)

	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	f.SetSheetName("Sheet1", summary)
	f.SetCellValue(summary, "A1", "Metric")
	f.SetCellValue(summary, "B1", "Value")
	for i, row := range s.summaryRows(p) {
		f.SetCellValue(summary, fmt.Sprintf("A%d", i+2), row.name)
		f.SetCellValue(summary, fmt.Sprintf("B%d", i+2), row.value)
	}

	const lessons = "Lessons"
	f.NewSheet(lessons)
	f.SetCellValue(lessons, "A1", "Topic ID")
	f.SetCellValue(lessons, "B1", "Mastery Level")
	f.SetCellValue(lessons, "C1", "Last Viewed")
	f.SetCellValue(lessons, "D1", "Time Spent (min)")
	for i, lv := range p.LessonsViewed {
		level, ok := p.MasteryFor(lv.TopicID)
		if !ok {
			level = model.MasteryBeginner
		}
		row := i + 2
		f.SetCellValue(lessons, fmt.Sprintf("A%d", row), lv.TopicID)
		f.SetCellValue(lessons, fmt.Sprintf("B%d", row), string(level))
		f.SetCellValue(lessons, fmt.Sprintf("C%d", row), lv.Timestamp.Format(util.TimeFormat))
		f.SetCellValue(lessons, fmt.Sprintf("D%d", row), lv.TimeSpent/60)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("snake-scholars-report-%s.xlsx", s.now().Format(util.DateFormat)),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

type summaryRow struct {
	name  string
	value interface{}
}

func (s *ExportService) summaryRows(p *model.UserProgress) []summaryRow {
	return []summaryRow{
		{"Stars", p.Stars},
		{"Topics Completed", len(p.TopicsCompleted)},
		{"Topics In Progress", len(p.TopicsInProgress)},
		{"Daily Streak", p.Streak.DailyCount},
		{"Weekly Streak", p.Streak.WeeklyCount},
		{"Total Learning Minutes", p.TotalLearningMinutes},
		{"Challenges Completed", len(p.ChallengeHistory)},
		{"Badges Earned", len(p.Badges)},
	}
}

// ArchiveExport pushes a rendered export through the configured archive
// provider and returns its URL.
func (s *ExportService) ArchiveExport(ctx context.Context, file *ExportFile) (string, error) {
	return s.Archive.Put(ctx, file.Filename, file.Data, file.ContentType)
}

// Import accepts a backup produced by ExportJSON. Missing version or
// progress fields reject outright; the progress document then runs the
// shape validator and, only on success, overwrites the slot wholesale.
// There is no partial application.
func (s *ExportService) Import(ctx context.Context, data []byte) error {
	var envelope struct {
		Version  string          `json:"version"`
		Progress json.RawMessage `json:"progress"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return util.ErrInvalidBackup
	}
	if envelope.Version == "" || len(envelope.Progress) == 0 || string(envelope.Progress) == "null" {
		return util.ErrInvalidBackup
	}

	p := model.ValidateProgress(envelope.Progress)
	if p == nil {
		return util.ErrBackupRejected
	}

	return s.Progress.ReplaceProgress(ctx, p)
}
