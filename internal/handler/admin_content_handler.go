package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/dto"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/repository"
)

// AdminContentHandler is the editorial side of the admin dashboard: blog
// posts, calendar events, volunteer board, gallery and homepage slides, plus
// class sections.
type AdminContentHandler struct {
	contentRepo *repository.ContentRepository
	siteRepo    *repository.SiteRepository
	studentRepo *repository.StudentRepository
}

func NewAdminContentHandler(
	contentRepo *repository.ContentRepository,
	siteRepo *repository.SiteRepository,
	studentRepo *repository.StudentRepository,
) *AdminContentHandler {
	return &AdminContentHandler{contentRepo: contentRepo, siteRepo: siteRepo, studentRepo: studentRepo}
}

func parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "ID không hợp lệ",
		))
		return uuid.Nil, false
	}
	return id, true
}

// Blog posts

func (h *AdminContentHandler) ListPosts(c *fiber.Ctx) error {
	page, limit := pageParams(c, 20)

	posts, total, err := h.contentRepo.ListAllPosts(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải bài viết",
		))
	}
	return c.JSON(dto.SuccessWithMeta(posts, dto.NewMeta(page, limit, total)))
}

func (h *AdminContentHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil || req.Slug == "" || req.TitleVi == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Bài viết cần slug và tiêu đề tiếng Việt",
		))
	}

	post := &domain.BlogPost{
		Slug:     req.Slug,
		TitleVi:  req.TitleVi,
		TitleEn:  req.TitleEn,
		BodyVi:   req.BodyVi,
		BodyEn:   req.BodyEn,
		CoverURL: req.CoverURL,
		Author:   req.Author,
		Status:   domain.PostDraft,
	}
	if req.Publish {
		now := time.Now()
		post.Status = domain.PostPublished
		post.PublishedAt = &now
	}

	if err := h.contentRepo.CreatePost(post); err != nil {
		if repository.IsUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse(
				"SLUG_TAKEN", "Slug đã được sử dụng",
			))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tạo bài viết",
		))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(post, ""))
}

func (h *AdminContentHandler) UpdatePost(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	post, err := h.contentRepo.FindPostByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"POST_NOT_FOUND", "Không tìm thấy bài viết",
		))
	}

	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Nội dung không hợp lệ",
		))
	}

	if req.Slug != "" {
		post.Slug = req.Slug
	}
	if req.TitleVi != "" {
		post.TitleVi = req.TitleVi
	}
	post.TitleEn = req.TitleEn
	post.BodyVi = req.BodyVi
	post.BodyEn = req.BodyEn
	post.CoverURL = req.CoverURL
	post.Author = req.Author
	if req.Publish && post.Status != domain.PostPublished {
		now := time.Now()
		post.Status = domain.PostPublished
		post.PublishedAt = &now
	}
	if !req.Publish {
		post.Status = domain.PostDraft
	}

	if err := h.contentRepo.UpdatePost(post); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể cập nhật bài viết",
		))
	}
	return c.JSON(dto.SuccessResponse(post, ""))
}

func (h *AdminContentHandler) DeletePost(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.contentRepo.DeletePost(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể xoá bài viết",
		))
	}
	return c.JSON(dto.SuccessResponse(nil, "Đã xoá bài viết"))
}

// Calendar events

func (h *AdminContentHandler) CreateEvent(c *fiber.Ctx) error {
	event, resp := h.eventFromRequest(c, &domain.CalendarEvent{})
	if event == nil {
		return resp
	}
	if err := h.contentRepo.CreateEvent(event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tạo sự kiện",
		))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(event, ""))
}

func (h *AdminContentHandler) UpdateEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	existing, err := h.contentRepo.FindEventByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"EVENT_NOT_FOUND", "Không tìm thấy sự kiện",
		))
	}

	event, resp := h.eventFromRequest(c, existing)
	if event == nil {
		return resp
	}
	if err := h.contentRepo.UpdateEvent(event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể cập nhật sự kiện",
		))
	}
	return c.JSON(dto.SuccessResponse(event, ""))
}

func (h *AdminContentHandler) DeleteEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.contentRepo.DeleteEvent(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể xoá sự kiện",
		))
	}
	return c.JSON(dto.SuccessResponse(nil, "Đã xoá sự kiện"))
}

// eventFromRequest fills target from the request body; on failure it returns
// (nil, response already written).
func (h *AdminContentHandler) eventFromRequest(c *fiber.Ctx, target *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil || req.TitleVi == "" || req.StartsAt == "" {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Sự kiện cần tiêu đề và thời gian bắt đầu",
		))
	}
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Thời gian bắt đầu không hợp lệ (RFC 3339)",
		))
	}

	target.TitleVi = req.TitleVi
	target.TitleEn = req.TitleEn
	target.Description = req.Description
	target.Location = req.Location
	target.StartsAt = startsAt
	target.IsAllDay = req.IsAllDay
	target.EndsAt = nil
	if req.EndsAt != nil {
		endsAt, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
				"VALIDATION_ERROR", "Thời gian kết thúc không hợp lệ (RFC 3339)",
			))
		}
		target.EndsAt = &endsAt
	}
	return target, nil
}

// Volunteer board

func (h *AdminContentHandler) ListVolunteers(c *fiber.Ctx) error {
	vols, err := h.siteRepo.ListVolunteers(false)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải danh sách thiện nguyện",
		))
	}
	return c.JSON(dto.SuccessResponse(vols, ""))
}

func (h *AdminContentHandler) CreateVolunteer(c *fiber.Ctx) error {
	var req dto.VolunteerRequest
	if err := c.BodyParser(&req); err != nil || req.TitleVi == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Cần tiêu đề tiếng Việt",
		))
	}
	v := &domain.VolunteerOpportunity{
		TitleVi:      req.TitleVi,
		TitleEn:      req.TitleEn,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		SpotsTotal:   req.SpotsTotal,
		IsOpen:       req.IsOpen,
	}
	if v.SpotsTotal < 1 {
		v.SpotsTotal = 1
	}
	if err := h.siteRepo.CreateVolunteer(v); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tạo mục thiện nguyện",
		))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(v, ""))
}

func (h *AdminContentHandler) UpdateVolunteer(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	v, err := h.siteRepo.FindVolunteerByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"VOLUNTEER_NOT_FOUND", "Không tìm thấy mục thiện nguyện",
		))
	}

	var req dto.VolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Nội dung không hợp lệ",
		))
	}
	if req.TitleVi != "" {
		v.TitleVi = req.TitleVi
	}
	v.TitleEn = req.TitleEn
	v.Description = req.Description
	v.ContactEmail = req.ContactEmail
	if req.SpotsTotal > 0 {
		v.SpotsTotal = req.SpotsTotal
	}
	v.IsOpen = req.IsOpen

	if err := h.siteRepo.UpdateVolunteer(v); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể cập nhật mục thiện nguyện",
		))
	}
	return c.JSON(dto.SuccessResponse(v, ""))
}

func (h *AdminContentHandler) DeleteVolunteer(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.siteRepo.DeleteVolunteer(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể xoá mục thiện nguyện",
		))
	}
	return c.JSON(dto.SuccessResponse(nil, "Đã xoá"))
}

// Gallery

func (h *AdminContentHandler) CreateAlbum(c *fiber.Ctx) error {
	var req dto.AlbumRequest
	if err := c.BodyParser(&req); err != nil || req.TitleVi == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Cần tiêu đề tiếng Việt",
		))
	}
	album := &domain.GalleryAlbum{
		TitleVi:     req.TitleVi,
		TitleEn:     req.TitleEn,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	}
	if err := h.siteRepo.CreateAlbum(album); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tạo album",
		))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(album, ""))
}

func (h *AdminContentHandler) AddAlbumImage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if _, err := h.siteRepo.FindAlbumByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"ALBUM_NOT_FOUND", "Không tìm thấy album",
		))
	}

	var req dto.AlbumImageRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Cần URL hình ảnh",
		))
	}
	img := &domain.GalleryImage{AlbumID: id, URL: req.URL, Caption: req.Caption, Position: req.Position}
	if err := h.siteRepo.AddAlbumImage(img); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể thêm hình",
		))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(img, ""))
}

func (h *AdminContentHandler) DeleteAlbumImage(c *fiber.Ctx) error {
	albumID, err := uuid.Parse(c.Params("id"))
	imageID, err2 := uuid.Parse(c.Params("image_id"))
	if err != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "ID không hợp lệ",
		))
	}
	if err := h.siteRepo.DeleteAlbumImage(albumID, imageID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể xoá hình",
		))
	}
	return c.JSON(dto.SuccessResponse(nil, "Đã xoá hình"))
}

func (h *AdminContentHandler) DeleteAlbum(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.siteRepo.DeleteAlbum(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể xoá album",
		))
	}
	return c.JSON(dto.SuccessResponse(nil, "Đã xoá album"))
}

// Slideshow

func (h *AdminContentHandler) ListSlides(c *fiber.Ctx) error {
	slides, err := h.siteRepo.ListAllSlides()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải slides",
		))
	}
	return c.JSON(dto.SuccessResponse(slides, ""))
}

func (h *AdminContentHandler) CreateSlide(c *fiber.Ctx) error {
	var req dto.SlideRequest
	if err := c.BodyParser(&req); err != nil || req.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Cần URL hình ảnh",
		))
	}
	slide := &domain.SlideshowSlide{
		ImageURL:  req.ImageURL,
		CaptionVi: req.CaptionVi,
		CaptionEn: req.CaptionEn,
		LinkURL:   req.LinkURL,
		Position:  req.Position,
		IsActive:  req.IsActive,
	}
	if err := h.siteRepo.CreateSlide(slide); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tạo slide",
		))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(slide, ""))
}

func (h *AdminContentHandler) UpdateSlide(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	slide, err := h.siteRepo.FindSlideByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"SLIDE_NOT_FOUND", "Không tìm thấy slide",
		))
	}

	var req dto.SlideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Nội dung không hợp lệ",
		))
	}
	if req.ImageURL != "" {
		slide.ImageURL = req.ImageURL
	}
	slide.CaptionVi = req.CaptionVi
	slide.CaptionEn = req.CaptionEn
	slide.LinkURL = req.LinkURL
	slide.Position = req.Position
	slide.IsActive = req.IsActive

	if err := h.siteRepo.UpdateSlide(slide); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể cập nhật slide",
		))
	}
	return c.JSON(dto.SuccessResponse(slide, ""))
}

func (h *AdminContentHandler) DeleteSlide(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.siteRepo.DeleteSlide(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể xoá slide",
		))
	}
	return c.JSON(dto.SuccessResponse(nil, "Đã xoá slide"))
}

// Classes

func (h *AdminContentHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.studentRepo.ListClasses(false)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tải danh sách lớp",
		))
	}
	return c.JSON(dto.SuccessResponse(classes, ""))
}

func (h *AdminContentHandler) CreateClass(c *fiber.Ctx) error {
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" || req.SchoolYear == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Lớp cần tên và niên khóa",
		))
	}
	if req.GradeLevel != "" && !domain.ValidGrade(req.GradeLevel) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Cấp lớp không hợp lệ",
		))
	}

	class := &domain.Class{
		Name:        req.Name,
		GradeLevel:  req.GradeLevel,
		SchoolYear:  req.SchoolYear,
		Room:        req.Room,
		TeacherName: req.TeacherName,
		Capacity:    req.Capacity,
		IsActive:    true,
	}
	if class.Capacity < 1 {
		class.Capacity = 20
	}
	if err := h.studentRepo.CreateClass(class); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể tạo lớp",
		))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(class, ""))
}

func (h *AdminContentHandler) UpdateClass(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	class, err := h.studentRepo.FindClassByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"CLASS_NOT_FOUND", "Không tìm thấy lớp",
		))
	}

	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Nội dung không hợp lệ",
		))
	}
	if req.Name != "" {
		class.Name = req.Name
	}
	if req.GradeLevel != "" {
		if !domain.ValidGrade(req.GradeLevel) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
				"VALIDATION_ERROR", "Cấp lớp không hợp lệ",
			))
		}
		class.GradeLevel = req.GradeLevel
	}
	if req.SchoolYear != "" {
		class.SchoolYear = req.SchoolYear
	}
	class.Room = req.Room
	class.TeacherName = req.TeacherName
	if req.Capacity > 0 {
		class.Capacity = req.Capacity
	}

	if err := h.studentRepo.UpdateClass(class); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể cập nhật lớp",
		))
	}
	return c.JSON(dto.SuccessResponse(class, ""))
}

func (h *AdminContentHandler) DeleteClass(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.studentRepo.DeleteClass(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Không thể xoá lớp",
		))
	}
	return c.JSON(dto.SuccessResponse(nil, "Đã xoá lớp"))
}
