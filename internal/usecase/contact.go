package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

// ContactNotifier delivers the owner notification for a new submission.
type ContactNotifier interface {
	IsConfigured() bool
	SendContactNotification(ctx context.Context, data email.ContactEmailData) error
}

type contactUsecase struct {
	repo     domain.ContactRepository
	notifier ContactNotifier
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. notifier may be nil.
func NewContactUsecase(repo domain.ContactRepository, notifier ContactNotifier, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{repo: repo, notifier: notifier, validate: validate}
}

// SubmitContact stores an anonymous message. The owner notification is sent
// in the background; a mail failure is logged and never reaches the visitor.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if err := validate(uc.validate, req); err != nil {
		return err
	}

	submission := &domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: optionalString(&req.Subject),
		Message: req.Message,
	}
	if err := uc.repo.Create(ctx, submission); err != nil {
		return err
	}

	if uc.notifier != nil && uc.notifier.IsConfigured() {
		go uc.notify(context.WithoutCancel(ctx), submission, req.Subject)
	}
	return nil
}

// notify runs after the visitor's request has returned.
func (uc *contactUsecase) notify(ctx context.Context, submission *domain.ContactSubmission, subject string) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	err := uc.notifier.SendContactNotification(ctx, email.ContactEmailData{
		SenderName:  submission.Name,
		SenderEmail: submission.Email,
		Subject:     subject,
		Message:     submission.Message,
		ReceivedAt:  submission.CreatedAt,
	})
	if err != nil {
		logger.Log.Warn("Contact notification failed", "submission_id", submission.ID, "error", err)
	}
}

func (uc *contactUsecase) ListContacts(ctx context.Context, filter domain.ContactFilter) (*domain.ContactList, error) {
	if _, err := RequireOwner(ctx); err != nil {
		return nil, err
	}
	filter, ok := domain.ParseContactFilter(string(filter))
	if !ok {
		return nil, apperror.BadRequest("filter must be one of: all, unread, archived")
	}

	submissions, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	counts, err := uc.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ContactList{Filter: filter, Submissions: submissions, Counts: counts}, nil
}

func (uc *contactUsecase) MarkContactRead(ctx context.Context, id string) error {
	if _, err := RequireOwner(ctx); err != nil {
		return err
	}
	return uc.repo.MarkRead(ctx, id)
}

func (uc *contactUsecase) ArchiveContact(ctx context.Context, id string, archived bool) error {
	if _, err := RequireOwner(ctx); err != nil {
		return err
	}
	return uc.repo.SetArchived(ctx, id, archived)
}

func (uc *contactUsecase) DeleteContact(ctx context.Context, id string) error {
	if _, err := RequireOwner(ctx); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

var contactExportColumns = []string{"RECEIVED", "NAME", "EMAIL", "SUBJECT", "MESSAGE", "READ", "ARCHIVED"}

// ExportContacts renders every submission, archived ones included, newest first.
func (uc *contactUsecase) ExportContacts(ctx context.Context, format string) (*domain.ContactExport, error) {
	if _, err := RequireOwner(ctx); err != nil {
		return nil, err
	}

	active, err := uc.repo.List(ctx, domain.ContactFilterAll)
	if err != nil {
		return nil, err
	}
	archived, err := uc.repo.List(ctx, domain.ContactFilterArchived)
	if err != nil {
		return nil, err
	}
	rows := append(active, archived...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })

	stamp := time.Now().UTC().Format("20060102_150405")
	switch format {
	case "csv":
		data, err := exportContactsCSV(rows)
		if err != nil {
			return nil, err
		}
		return &domain.ContactExport{Filename: "contacts_" + stamp + ".csv", ContentType: "text/csv", Data: data}, nil
	case "xlsx", "":
		data, err := exportContactsExcel(rows)
		if err != nil {
			return nil, err
		}
		return &domain.ContactExport{
			Filename:    "contacts_" + stamp + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, apperror.BadRequest(fmt.Sprintf("unsupported export format: %s", format))
	}
}

func contactRow(s domain.ContactSubmission) []interface{} {
	subject := ""
	if s.Subject != nil {
		subject = *s.Subject
	}
	return []interface{}{s.CreatedAt.Format(time.RFC3339), s.Name, s.Email, subject, s.Message, s.Read, s.Archived}
}

func exportContactsExcel(rows []domain.ContactSubmission) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Contacts"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range contactExportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#312E81"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(contactExportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, s := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		row := contactRow(s)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	widths := []float64{22, 24, 30, 30, 60, 8, 10}
	for i, w := range widths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, w)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// csvSafe stops spreadsheet apps from evaluating visitor text as a formula.
func csvSafe(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}

func exportContactsCSV(rows []domain.ContactSubmission) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(contactExportColumns); err != nil {
		return nil, err
	}
	for _, s := range rows {
		row := contactRow(s)
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = csvSafe(fmt.Sprint(v))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
