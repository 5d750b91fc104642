package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/repository"
)

// ExportService builds the office spreadsheet of registration applications.
type ExportService struct {
	regRepo *repository.RegistrationRepository
}

func NewExportService(regRepo *repository.RegistrationRepository) *ExportService {
	return &ExportService{regRepo: regRepo}
}

// BuildApplicationsWorkbook renders every application (optionally one status)
// into an .xlsx workbook, oldest first.
func (s *ExportService) BuildApplicationsWorkbook(status *domain.ApplicationStatus) (*excelize.File, error) {
	apps, err := s.regRepo.ListAll(status)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Đơn ghi danh"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Ngày nộp", "Họ tên học sinh", "Ngày sinh", "Lớp",
		"Phụ huynh", "Email", "Điện thoại", "Địa chỉ",
		"Liên lạc khẩn cấp", "Trạng thái", "Ghi chú duyệt",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	for i, app := range apps {
		row := i + 2
		grade := domain.GradeLabelVi(app.PreferredGrade)
		if app.PreferredGrade == "" {
			grade = "Chưa xếp"
		}
		notes := ""
		if app.ReviewNotes != nil {
			notes = *app.ReviewNotes
		}

		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), app.CreatedAt.Format("2006-01-02"))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), app.StudentFirstName+" "+app.StudentLastName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), app.StudentDOB)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), grade)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), app.ParentFirstName+" "+app.ParentLastName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), app.ParentEmail)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), app.ParentPhone)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), app.Address+", "+app.City+", "+app.State+" "+app.ZipCode)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), app.EmergencyName+" ("+app.EmergencyRelation+") "+app.EmergencyPhone)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), string(app.Status))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), notes)
	}

	return f, nil
}
