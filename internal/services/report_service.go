package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"transfer-backend/internal/metrics"
	"transfer-backend/internal/models"
	"transfer-backend/internal/repositories"
	"transfer-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

type ReportService struct {
	Repo      DailyReportStore
	Transfers TransferStore
}

func NewReportService(repo DailyReportStore, transfers TransferStore) *ReportService {
	return &ReportService{Repo: repo, Transfers: transfers}
}

// GenerateForDate builds the daily report for the given date. The
// returned bool is true when a new report was created and false when
// one already existed (a no-op, not an error). An empty day still
// produces a report with zero totals.
//
// The existence check and the insert are not atomic; the unique
// constraint on report_date plus conflict-is-success in the
// repository close that gap.
func (s *ReportService) GenerateForDate(ctx context.Context, date time.Time) (*models.DailyReport, bool, error) {
	day := timeutil.StartOfDay(date)

	exists, err := s.Repo.ExistsForDate(ctx, day)
	if err != nil {
		return nil, false, err
	}
	if exists {
		report, err := s.Repo.GetByDate(ctx, day)
		if err != nil {
			return nil, false, err
		}
		return report, false, nil
	}

	transfers, err := s.Transfers.ListCompletedOn(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, false, err
	}

	report := &models.DailyReport{ReportDate: day}
	for _, t := range transfers {
		if t.ServiceValue != nil {
			report.TotalValue += *t.ServiceValue
		}
		if t.ServiceCost != nil {
			report.TotalCost += *t.ServiceCost
		}
		report.TransferIDs = append(report.TransferIDs, t.ID)
	}

	inserted, err := s.Repo.Insert(ctx, report)
	if err != nil {
		return nil, false, err
	}
	if !inserted {
		// Lost the race to a concurrent generator; its report wins.
		existing, err := s.Repo.GetByDate(ctx, day)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	metrics.ReportsGeneratedTotal.Inc()
	return report, true, nil
}

// GeneratePreviousDay runs the daily rollup for the day that just
// ended. Called by the scheduler; safe to invoke repeatedly.
func (s *ReportService) GeneratePreviousDay(ctx context.Context) {
	target := timeutil.Now().AddDate(0, 0, -1)
	report, generated, err := s.GenerateForDate(ctx, target)
	if err != nil {
		log.Printf("[Report] Daily report generation failed for %s: %v", target.Format(timeutil.DateLayout), err)
		return
	}
	if !generated {
		log.Printf("[Report] Report for %s already exists, skipping", report.ReportDate.Format(timeutil.DateLayout))
		return
	}
	log.Printf("[Report] Generated report for %s: value=%.2f cost=%.2f transfers=%d",
		report.ReportDate.Format(timeutil.DateLayout), report.TotalValue, report.TotalCost, len(report.TransferIDs))
}

func (s *ReportService) Get(ctx context.Context, id int) (*models.DailyReport, error) {
	report, err := s.Repo.Get(ctx, id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return nil, fmt.Errorf("%w: report %d", ErrNotFound, id)
		}
		return nil, err
	}
	return report, nil
}

func (s *ReportService) List(ctx context.Context) ([]*models.DailyReport, error) {
	return s.Repo.List(ctx)
}

// RenderPDF produces a printable summary of a report: totals plus one
// line per contributing transfer.
func (s *ReportService) RenderPDF(ctx context.Context, report *models.DailyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Daily Report - %s", report.ReportDate.Format(timeutil.DateLayout)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Total value: %.2f", report.TotalValue))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total cost: %.2f", report.TotalCost))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Completed transfers: %d", len(report.TransferIDs)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(20, 7, "ID", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 7, "From", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 7, "To", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 7, "Value", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Cost", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, transferID := range report.TransferIDs {
		t, err := s.Transfers.Get(ctx, transferID)
		if err != nil {
			// Historical reports survive transfer deletion; skip the row.
			continue
		}
		endLocation := ""
		if t.EndLocation != nil {
			endLocation = *t.EndLocation
		}
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", t.ID), "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 7, t.StartLocation, "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 7, endLocation, "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, formatAmount(t.ServiceValue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, formatAmount(t.ServiceCost), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
