package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/dto"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/i18n"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/repository"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/service"
)

// AdminHandler covers the office workflow: the application review queue,
// student roster, contact triage and the spreadsheet export.
type AdminHandler struct {
	regService    *service.RegistrationService
	exportService *service.ExportService
	regRepo       *repository.RegistrationRepository
	studentRepo   *repository.StudentRepository
	siteRepo      *repository.SiteRepository
}

func NewAdminHandler(
	regService *service.RegistrationService,
	exportService *service.ExportService,
	regRepo *repository.RegistrationRepository,
	studentRepo *repository.StudentRepository,
	siteRepo *repository.SiteRepository,
) *AdminHandler {
	return &AdminHandler{
		regService:    regService,
		exportService: exportService,
		regRepo:       regRepo,
		studentRepo:   studentRepo,
		siteRepo:      siteRepo,
	}
}

// Applications

func (h *AdminHandler) ListApplications(c *fiber.Ctx) error {
	page, limit := pageParams(c, 20)

	var status *domain.ApplicationStatus
	if s := c.Query("status"); s != "" {
		parsed := domain.ApplicationStatus(s)
		status = &parsed
	}

	apps, total, err := h.regRepo.List(status, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải danh sách đơn",
		))
	}

	items := make([]dto.ApplicationListItem, 0, len(apps))
	for _, a := range apps {
		grade := i18n.T(i18n.LocaleVi, "register.grade_unassigned")
		if a.PreferredGrade != "" {
			grade = domain.GradeLabelVi(a.PreferredGrade)
		}
		items = append(items, dto.ApplicationListItem{
			ID:          a.ID,
			StudentName: a.StudentFirstName + " " + a.StudentLastName,
			StudentDOB:  a.StudentDOB,
			GradeLabel:  grade,
			ParentName:  a.ParentFirstName + " " + a.ParentLastName,
			ParentEmail: a.ParentEmail,
			ParentPhone: a.ParentPhone,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt,
			ReviewedAt:  a.ReviewedAt,
		})
	}
	return c.JSON(dto.SuccessWithMeta(items, dto.NewMeta(page, limit, total)))
}

func (h *AdminHandler) GetApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "ID không hợp lệ",
		))
	}
	app, err := h.regRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"APPLICATION_NOT_FOUND", "Không tìm thấy đơn ghi danh",
		))
	}
	return c.JSON(dto.SuccessResponse(app, ""))
}

// StartReview moves a pending application into the review queue.
func (h *AdminHandler) StartReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "ID không hợp lệ",
		))
	}

	var body struct {
		ReviewedBy string `json:"reviewedBy"`
	}
	_ = c.BodyParser(&body)

	app, err := h.regService.StartReview(id, body.ReviewedBy)
	if err != nil {
		return h.applicationFailure(c, err)
	}
	return c.JSON(dto.SuccessResponse(app, ""))
}

// Decide records the review outcome.
func (h *AdminHandler) Decide(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "ID không hợp lệ",
		))
	}

	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Nội dung không hợp lệ",
		))
	}

	app, err := h.regService.Decide(id, &req)
	if err != nil {
		return h.applicationFailure(c, err)
	}
	return c.JSON(dto.SuccessResponse(app, ""))
}

// Convert materializes an approved application into a student record.
func (h *AdminHandler) Convert(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "ID không hợp lệ",
		))
	}

	var req dto.ConvertRequest
	_ = c.BodyParser(&req)

	student, err := h.regService.Convert(id, &req)
	if err != nil {
		return h.applicationFailure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(student, ""))
}

// ExportApplications streams the intake spreadsheet.
func (h *AdminHandler) ExportApplications(c *fiber.Ctx) error {
	var status *domain.ApplicationStatus
	if s := c.Query("status"); s != "" {
		parsed := domain.ApplicationStatus(s)
		status = &parsed
	}

	f, err := h.exportService.BuildApplicationsWorkbook(status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tạo bảng tính",
		))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tạo bảng tính",
		))
	}

	fileName := fmt.Sprintf("don_ghi_danh_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+fileName)
	return c.Send(buf.Bytes())
}

// Dashboard returns the application counters for the admin landing page.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	counts, err := h.regRepo.CountByStatus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải thống kê",
		))
	}
	return c.JSON(dto.SuccessResponse(fiber.Map{
		"pending":      counts[domain.ApplicationPending],
		"under_review": counts[domain.ApplicationUnderReview],
		"approved":     counts[domain.ApplicationApproved],
		"waitlisted":   counts[domain.ApplicationWaitlisted],
		"rejected":     counts[domain.ApplicationRejected],
	}, ""))
}

// Students

func (h *AdminHandler) ListStudents(c *fiber.Ctx) error {
	page, limit := pageParams(c, 50)
	activeOnly := c.Query("active", "true") != "false"

	students, total, err := h.studentRepo.List(activeOnly, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải danh sách học sinh",
		))
	}
	return c.JSON(dto.SuccessWithMeta(students, dto.NewMeta(page, limit, total)))
}

// Contact triage

func (h *AdminHandler) ListContacts(c *fiber.Ctx) error {
	page, limit := pageParams(c, 20)

	var status *domain.ContactStatus
	if s := c.Query("status"); s != "" {
		parsed := domain.ContactStatus(s)
		status = &parsed
	}

	msgs, total, err := h.siteRepo.ListContacts(status, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải tin nhắn",
		))
	}
	return c.JSON(dto.SuccessWithMeta(msgs, dto.NewMeta(page, limit, total)))
}

func (h *AdminHandler) SetContactStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "ID không hợp lệ",
		))
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Nội dung không hợp lệ",
		))
	}
	status := domain.ContactStatus(body.Status)
	if status != domain.ContactRead && status != domain.ContactResolved {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Trạng thái không hợp lệ",
		))
	}

	if _, err := h.siteRepo.FindContactByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"CONTACT_NOT_FOUND", "Không tìm thấy tin nhắn",
		))
	}
	if err := h.siteRepo.SetContactStatus(id, status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể cập nhật tin nhắn",
		))
	}
	return c.JSON(dto.SuccessResponse(fiber.Map{"id": id, "status": status}, ""))
}

// applicationFailure maps service errors onto API responses.
func (h *AdminHandler) applicationFailure(c *fiber.Ctx, err error) error {
	switch {
	case repository.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"APPLICATION_NOT_FOUND", "Không tìm thấy đơn ghi danh",
		))
	case errors.Is(err, service.ErrIllegalTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse(
			"ILLEGAL_TRANSITION", "Trạng thái đơn không cho phép thao tác này",
		))
	case errors.Is(err, service.ErrNotApproved):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse(
			"NOT_APPROVED", "Đơn chưa được chấp thuận",
		))
	case errors.Is(err, service.ErrAlreadyConverted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse(
			"ALREADY_CONVERTED", "Đơn đã được chuyển thành hồ sơ học sinh",
		))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Lỗi hệ thống",
		))
	}
}
