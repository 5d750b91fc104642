package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/dto"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/i18n"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/repository"
)

// PublicHandler serves the read side of the site: blog, calendar, volunteer
// board, gallery, homepage slides, class list, plus the contact form.
type PublicHandler struct {
	contentRepo *repository.ContentRepository
	siteRepo    *repository.SiteRepository
	studentRepo *repository.StudentRepository
}

func NewPublicHandler(
	contentRepo *repository.ContentRepository,
	siteRepo *repository.SiteRepository,
	studentRepo *repository.StudentRepository,
) *PublicHandler {
	return &PublicHandler{contentRepo: contentRepo, siteRepo: siteRepo, studentRepo: studentRepo}
}

// pageParams reads ?page and ?limit, clamping both to at least 1 so garbage
// query strings cannot reach the pagination math.
func pageParams(c *fiber.Ctx, defaultLimit int) (int, int) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func (h *PublicHandler) ListPosts(c *fiber.Ctx) error {
	page, limit := pageParams(c, 10)

	posts, total, err := h.contentRepo.ListPublishedPosts(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải bài viết",
		))
	}
	return c.JSON(dto.SuccessWithMeta(posts, dto.NewMeta(page, limit, total)))
}

func (h *PublicHandler) GetPostBySlug(c *fiber.Ctx) error {
	post, err := h.contentRepo.FindPublishedPostBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"POST_NOT_FOUND", "Không tìm thấy bài viết",
		))
	}
	return c.JSON(dto.SuccessResponse(post, ""))
}

// ListEvents returns upcoming events. ?from=YYYY-MM-DD overrides the start;
// adding ?to=YYYY-MM-DD switches to an inclusive date range, for the monthly
// calendar view.
func (h *PublicHandler) ListEvents(c *fiber.Ctx) error {
	from := time.Now()
	if raw := c.Query("from"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			from = parsed
		}
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 {
		limit = 20
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
				"VALIDATION_ERROR", "Khoảng thời gian không hợp lệ",
			))
		}
		events, err := h.contentRepo.ListEventsBetween(from, to.AddDate(0, 0, 1))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
				"INTERNAL_ERROR", "Không thể tải lịch sinh hoạt",
			))
		}
		return c.JSON(dto.SuccessResponse(events, ""))
	}

	events, err := h.contentRepo.ListUpcomingEvents(from, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải lịch sinh hoạt",
		))
	}
	return c.JSON(dto.SuccessResponse(events, ""))
}

func (h *PublicHandler) ListVolunteers(c *fiber.Ctx) error {
	vols, err := h.siteRepo.ListVolunteers(true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải danh sách thiện nguyện",
		))
	}
	return c.JSON(dto.SuccessResponse(vols, ""))
}

func (h *PublicHandler) ListAlbums(c *fiber.Ctx) error {
	albums, err := h.siteRepo.ListAlbums()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải hình ảnh",
		))
	}
	return c.JSON(dto.SuccessResponse(albums, ""))
}

func (h *PublicHandler) GetAlbum(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "ID không hợp lệ",
		))
	}
	album, err := h.siteRepo.FindAlbumByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"ALBUM_NOT_FOUND", "Không tìm thấy album",
		))
	}
	return c.JSON(dto.SuccessResponse(album, ""))
}

func (h *PublicHandler) ListSlides(c *fiber.Ctx) error {
	slides, err := h.siteRepo.ListActiveSlides()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải trang chủ",
		))
	}
	return c.JSON(dto.SuccessResponse(slides, ""))
}

// ListClasses shows active class sections with seats taken, for the "our
// classes" page.
func (h *PublicHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.studentRepo.ListClasses(true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải danh sách lớp",
		))
	}

	summaries := make([]dto.ClassSummary, 0, len(classes))
	for _, cl := range classes {
		enrolled, _ := h.studentRepo.EnrollmentCount(cl.ID)
		summaries = append(summaries, dto.ClassSummary{
			ID:          cl.ID,
			Name:        cl.Name,
			GradeLevel:  cl.GradeLevel,
			GradeLabel:  domain.GradeLabelVi(cl.GradeLevel),
			SchoolYear:  cl.SchoolYear,
			TeacherName: cl.TeacherName,
			Enrolled:    enrolled,
			Capacity:    cl.Capacity,
		})
	}
	return c.JSON(dto.SuccessResponse(summaries, ""))
}

// Contact handles the public contact form.
func (h *PublicHandler) Contact(c *fiber.Ctx) error {
	loc := i18n.ParseLocale(c.Query("lang"))

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", i18n.T(loc, "contact.incomplete"),
		))
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", i18n.T(loc, "contact.incomplete"),
		))
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.ContactNew,
	}
	if err := h.siteRepo.CreateContact(msg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể gửi tin nhắn",
		))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(
		fiber.Map{"id": msg.ID}, i18n.T(loc, "contact.received"),
	))
}
