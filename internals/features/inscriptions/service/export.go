package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	activityModel "youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/inscriptions/dto"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
	"youthcentre_backend/internals/helpers/dbtime"
)

var exportHeaders = []string{"Activity", "Last name", "First name", "Email", "Phone", "Wilaya", "Commune", "Status", "Registered at"}

// MaxExportRows bounds a single workbook; larger exports must be narrowed with filters.
const MaxExportRows = 10000

// Export renders the scoped inscription list as an XLSX workbook.
func (s *WorkflowService) Export(ctx context.Context, spec activityModel.KindSpec, actor helperAuth.Actor, q dto.ListInscriptionsQuery) (*bytes.Buffer, error) {
	q.Normalize()
	if err := validateStatusFilter(q.Status); err != nil {
		return nil, err
	}
	rows, err := s.store.ListAll(ctx, spec.Kind, actor, q, s.exportMax+1)
	if err != nil {
		return nil, err
	}
	if len(rows) > s.exportMax {
		return nil, helper.Unprocessable(fmt.Sprintf("Export is limited to %d rows, narrow the filters", s.exportMax))
	}
	return s.renderWorkbook(rows)
}

func (s *WorkflowService) renderWorkbook(rows []dto.InscriptionRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Errorf("failed to close workbook: %v", err)
		}
	}()

	sheetName := "Inscriptions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to set sheet name: %w", err)
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream writer: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := sw.SetRow(cell, []any{
			row.ActivityTitle,
			row.UserLastName,
			row.UserFirstName,
			deref(row.UserEmail),
			deref(row.UserPhone),
			deref(row.UserWilaya),
			deref(row.UserCommune),
			row.Status,
			dbtime.ToLocal(row.CreatedAt).Format("2006-01-02 15:04"),
		}); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
