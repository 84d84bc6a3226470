package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/resume-site/internal/entity"
)

// ResumeReader is the slice of the record store an export needs.
type ResumeReader interface {
	GetByID(ctx context.Context, id string) (entity.Resume, error)
}

// Service is a tiny façade over the record store that produces XLSX bytes for exports.
type Service struct {
	repo   ResumeReader
	logger *slog.Logger
}

func NewService(repo ResumeReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Sheet names, in workbook order.
const (
	SheetPersonal   = "Personal"
	SheetExperience = "Experience"
	SheetSkills     = "Skills"
	SheetProjects   = "Projects"
	SheetEducation  = "Education"
)

// ExportResumeXLSX loads the stored record and returns it as an XLSX workbook.
// Store errors (including not found) are returned unchanged.
func (s *Service) ExportResumeXLSX(ctx context.Context, id string) ([]byte, error) {
	start := time.Now()
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bs, err := Workbook(rec)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "id", id, "error", err)
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"id", id,
		"bytes", len(bs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return bs, nil
}

// Workbook renders rec as a workbook with one sheet per section.
func Workbook(rec entity.Resume) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetPersonal); err != nil {
		return nil, err
	}
	p := rec.Personal
	personal := [][]any{
		{"Field", "Value"},
		{"Name", p.Name},
		{"Role", p.Role},
		{"Tagline", p.Tagline},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Location", p.Location},
		{"Bio", p.Bio},
		{"Avatar", p.Avatar},
	}
	if err := writeSheet(f, SheetPersonal, personal); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetPersonal, "A", "A", 14)
	_ = f.SetColWidth(SheetPersonal, "B", "B", 80)

	rows := [][]any{{"ID", "Company", "Position", "Duration", "Description", "Technologies"}}
	for _, e := range rec.Experience {
		rows = append(rows, []any{e.ID, e.Company, e.Position, e.Duration, e.Description, strings.Join(e.Technologies, ", ")})
	}
	if err := writeSheet(f, SheetExperience, rows); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetExperience, "B", "D", 22)
	_ = f.SetColWidth(SheetExperience, "E", "E", 80)
	_ = f.SetColWidth(SheetExperience, "F", "F", 40)

	rows = [][]any{{"Name", "Level", "Category"}}
	for _, sk := range rec.Skills {
		rows = append(rows, []any{sk.Name, sk.Level, sk.Category})
	}
	if err := writeSheet(f, SheetSkills, rows); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetSkills, "A", "A", 24)
	_ = f.SetColWidth(SheetSkills, "C", "C", 16)

	rows = [][]any{{"ID", "Title", "Description", "Long Description", "Image", "Technologies", "GitHub", "Demo", "Featured"}}
	for _, pr := range rec.Projects {
		rows = append(rows, []any{pr.ID, pr.Title, pr.Description, pr.LongDescription, pr.Image, strings.Join(pr.Technologies, ", "), pr.Github, pr.Demo, pr.Featured})
	}
	if err := writeSheet(f, SheetProjects, rows); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetProjects, "B", "B", 28)
	_ = f.SetColWidth(SheetProjects, "C", "D", 60)
	_ = f.SetColWidth(SheetProjects, "E", "H", 32)

	rows = [][]any{{"ID", "Institution", "Degree", "Duration", "Description", "Logo"}}
	for _, ed := range rec.Education {
		rows = append(rows, []any{ed.ID, ed.Institution, ed.Degree, ed.Duration, ed.Description, ed.Logo})
	}
	if err := writeSheet(f, SheetEducation, rows); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetEducation, "B", "D", 28)
	_ = f.SetColWidth(SheetEducation, "E", "E", 60)

	idx, _ := f.GetSheetIndex(SheetPersonal)
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSheet creates sheet if needed and writes rows starting at A1.
func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, r+1, err)
		}
	}
	return nil
}
