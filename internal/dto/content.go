package dto

import "github.com/google/uuid"

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// PostRequest is the admin create/update payload for a blog post.
type PostRequest struct {
	Slug     string `json:"slug"`
	TitleVi  string `json:"titleVi"`
	TitleEn  string `json:"titleEn"`
	BodyVi   string `json:"bodyVi"`
	BodyEn   string `json:"bodyEn"`
	CoverURL string `json:"coverUrl"`
	Author   string `json:"author"`
	Publish  bool   `json:"publish"`
}

// EventRequest is the admin create/update payload for a calendar event.
type EventRequest struct {
	TitleVi     string  `json:"titleVi"`
	TitleEn     string  `json:"titleEn"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	StartsAt    string  `json:"startsAt"` // RFC 3339
	EndsAt      *string `json:"endsAt,omitempty"`
	IsAllDay    bool    `json:"isAllDay"`
}

// VolunteerRequest is the admin payload for a volunteer opportunity.
type VolunteerRequest struct {
	TitleVi      string `json:"titleVi"`
	TitleEn      string `json:"titleEn"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	SpotsTotal   int    `json:"spotsTotal"`
	IsOpen       bool   `json:"isOpen"`
}

// AlbumRequest is the admin payload for a gallery album. Image files live on
// an external host; only URLs pass through here.
type AlbumRequest struct {
	TitleVi     string `json:"titleVi"`
	TitleEn     string `json:"titleEn"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
}

type AlbumImageRequest struct {
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

// SlideRequest is the admin payload for a homepage slide.
type SlideRequest struct {
	ImageURL  string `json:"imageUrl"`
	CaptionVi string `json:"captionVi"`
	CaptionEn string `json:"captionEn"`
	LinkURL   string `json:"linkUrl"`
	Position  int    `json:"position"`
	IsActive  bool   `json:"isActive"`
}

// ClassRequest is the admin payload for a class section.
type ClassRequest struct {
	Name        string `json:"name"`
	GradeLevel  string `json:"gradeLevel"`
	SchoolYear  string `json:"schoolYear"`
	Room        string `json:"room"`
	TeacherName string `json:"teacherName"`
	Capacity    int    `json:"capacity"`
}

// ClassSummary is the public class listing row.
type ClassSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	GradeLevel  string    `json:"gradeLevel"`
	GradeLabel  string    `json:"gradeLabel"`
	SchoolYear  string    `json:"schoolYear"`
	TeacherName string    `json:"teacherName"`
	Enrolled    int64     `json:"enrolled"`
	Capacity    int       `json:"capacity"`
}
