package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enum types
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationApproved    ApplicationStatus = "APPROVED"
	ApplicationWaitlisted  ApplicationStatus = "WAITLISTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactRead     ContactStatus = "read"
	ContactResolved ContactStatus = "resolved"
)

// Base model with soft delete
type BaseModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}

// RegistrationApplication is one submitted registration form, exactly as the
// parent filled it in. It carries the full flattened draft plus the review
// lifecycle fields set later by an admin.
type RegistrationApplication struct {
	BaseModel

	// Step 1 - student
	StudentFirstName string `gorm:"type:varchar(100);not null" json:"studentFirstName"`
	StudentLastName  string `gorm:"type:varchar(100);not null" json:"studentLastName"`
	StudentDOB       string `gorm:"type:varchar(20);not null" json:"studentDOB"`
	PreferredGrade   string `gorm:"type:varchar(20)" json:"preferredGrade"`

	// Step 2 - primary parent
	ParentFirstName string `gorm:"type:varchar(100);not null" json:"parentFirstName"`
	ParentLastName  string `gorm:"type:varchar(100);not null" json:"parentLastName"`
	ParentEmail     string `gorm:"type:varchar(255);not null" json:"parentEmail"`
	ParentPhone     string `gorm:"type:varchar(30);not null" json:"parentPhone"`
	ParentRelation  string `gorm:"type:varchar(50);not null" json:"parentRelation"`

	// Optional secondary parent
	Parent2FirstName string `gorm:"type:varchar(100)" json:"parent2FirstName"`
	Parent2LastName  string `gorm:"type:varchar(100)" json:"parent2LastName"`
	Parent2Email     string `gorm:"type:varchar(255)" json:"parent2Email"`
	Parent2Phone     string `gorm:"type:varchar(30)" json:"parent2Phone"`
	Parent2Relation  string `gorm:"type:varchar(50)" json:"parent2Relation"`

	// Step 3 - address
	Address string `gorm:"type:varchar(255);not null" json:"address"`
	City    string `gorm:"type:varchar(100);not null" json:"city"`
	State   string `gorm:"type:varchar(10);not null;default:'HI'" json:"state"`
	ZipCode string `gorm:"type:varchar(10);not null" json:"zipCode"`

	// Step 4 - emergency contact
	EmergencyName     string `gorm:"type:varchar(200);not null" json:"emergencyName"`
	EmergencyPhone    string `gorm:"type:varchar(30);not null" json:"emergencyPhone"`
	EmergencyRelation string `gorm:"type:varchar(50);not null" json:"emergencyRelation"`

	// Supplementary
	PreviousSchool  string `gorm:"type:varchar(255)" json:"previousSchool"`
	MedicalNotes    string `gorm:"type:text" json:"medicalNotes"`
	Allergies       string `gorm:"type:text" json:"allergies"`
	SpecialNeeds    string `gorm:"type:text" json:"specialNeeds"`
	HowHeard        string `gorm:"type:varchar(255)" json:"howHeard"`
	AdditionalNotes string `gorm:"type:text" json:"additionalNotes"`

	// Review lifecycle
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ReviewedAt  *time.Time        `json:"reviewedAt,omitempty"`
	ReviewedBy  *string           `gorm:"type:varchar(100)" json:"reviewedBy,omitempty"`
	ReviewNotes *string           `gorm:"type:text" json:"reviewNotes,omitempty"`

	// Set once when an approved application is converted to a Student.
	StudentID *uuid.UUID `gorm:"type:uuid" json:"studentId,omitempty"`
	Student   *Student   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (RegistrationApplication) TableName() string { return "registration_applications" }

// Student
type Student struct {
	BaseModel
	FirstName      string     `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName       string     `gorm:"type:varchar(100);not null" json:"lastName"`
	DateOfBirth    string     `gorm:"type:varchar(20);not null" json:"dateOfBirth"`
	GradeLevel     string     `gorm:"type:varchar(20)" json:"gradeLevel"`
	ParentName     string     `gorm:"type:varchar(200);not null" json:"parentName"`
	ParentEmail    string     `gorm:"type:varchar(255);not null" json:"parentEmail"`
	ParentPhone    string     `gorm:"type:varchar(30);not null" json:"parentPhone"`
	Address        string     `gorm:"type:varchar(255)" json:"address"`
	EmergencyName  string     `gorm:"type:varchar(200)" json:"emergencyName"`
	EmergencyPhone string     `gorm:"type:varchar(30)" json:"emergencyPhone"`
	MedicalNotes   string     `gorm:"type:text" json:"medicalNotes"`
	IsActive       bool       `gorm:"not null;default:true" json:"isActive"`
	ClassID        *uuid.UUID `gorm:"type:uuid" json:"classId,omitempty"`
	Class          *Class     `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

func (Student) TableName() string { return "students" }

// Class is one section for a school year, e.g. "Lớp 3A 2026-2027".
type Class struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	GradeLevel  string `gorm:"type:varchar(20);not null" json:"gradeLevel"`
	SchoolYear  string `gorm:"type:varchar(20);not null" json:"schoolYear"`
	Room        string `gorm:"type:varchar(50)" json:"room"`
	TeacherName string `gorm:"type:varchar(200)" json:"teacherName"`
	Capacity    int    `gorm:"not null;default:20" json:"capacity"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

func (Class) TableName() string { return "classes" }

// Enrollment links a student to a class for a school year.
type Enrollment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null" json:"studentId"`
	ClassID    uuid.UUID `gorm:"type:uuid;not null" json:"classId"`
	SchoolYear string    `gorm:"type:varchar(20);not null" json:"schoolYear"`
	EnrolledAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"enrolledAt"`
	Student    *Student  `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Class      *Class    `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

func (Enrollment) TableName() string { return "enrollments" }

// BlogPost carries both languages in one row; the frontend picks per locale.
type BlogPost struct {
	BaseModel
	Slug        string     `gorm:"type:varchar(250);not null;uniqueIndex" json:"slug"`
	TitleVi     string     `gorm:"type:varchar(200);not null" json:"titleVi"`
	TitleEn     string     `gorm:"type:varchar(200)" json:"titleEn"`
	BodyVi      string     `gorm:"type:text;not null" json:"bodyVi"`
	BodyEn      string     `gorm:"type:text" json:"bodyEn"`
	CoverURL    string     `gorm:"type:text" json:"coverUrl"`
	Author      string     `gorm:"type:varchar(100)" json:"author"`
	Status      PostStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func (BlogPost) TableName() string { return "blog_posts" }

// CalendarEvent
type CalendarEvent struct {
	BaseModel
	TitleVi     string     `gorm:"type:varchar(200);not null" json:"titleVi"`
	TitleEn     string     `gorm:"type:varchar(200)" json:"titleEn"`
	Description string     `gorm:"type:text" json:"description"`
	Location    string     `gorm:"type:varchar(255)" json:"location"`
	StartsAt    time.Time  `gorm:"not null;index" json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	IsAllDay    bool       `gorm:"not null;default:false" json:"isAllDay"`
}

func (CalendarEvent) TableName() string { return "calendar_events" }

// ContactMessage
type ContactMessage struct {
	BaseModel
	Name       string        `gorm:"type:varchar(200);not null" json:"name"`
	Email      string        `gorm:"type:varchar(255);not null" json:"email"`
	Phone      string        `gorm:"type:varchar(30)" json:"phone"`
	Subject    string        `gorm:"type:varchar(255)" json:"subject"`
	Message    string        `gorm:"type:text;not null" json:"message"`
	Status     ContactStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	ResolvedAt *time.Time    `json:"resolvedAt,omitempty"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// VolunteerOpportunity
type VolunteerOpportunity struct {
	BaseModel
	TitleVi      string `gorm:"type:varchar(200);not null" json:"titleVi"`
	TitleEn      string `gorm:"type:varchar(200)" json:"titleEn"`
	Description  string `gorm:"type:text" json:"description"`
	ContactEmail string `gorm:"type:varchar(255)" json:"contactEmail"`
	SpotsTotal   int    `gorm:"not null;default:1" json:"spotsTotal"`
	SpotsFilled  int    `gorm:"not null;default:0" json:"spotsFilled"`
	IsOpen       bool   `gorm:"not null;default:true" json:"isOpen"`
}

func (VolunteerOpportunity) TableName() string { return "volunteer_opportunities" }

// GalleryAlbum holds URL references only; the files live on an external host.
type GalleryAlbum struct {
	BaseModel
	TitleVi     string         `gorm:"type:varchar(200);not null" json:"titleVi"`
	TitleEn     string         `gorm:"type:varchar(200)" json:"titleEn"`
	Description string         `gorm:"type:text" json:"description"`
	CoverURL    string         `gorm:"type:text" json:"coverUrl"`
	Images      []GalleryImage `gorm:"foreignKey:AlbumID" json:"images,omitempty"`
}

func (GalleryAlbum) TableName() string { return "gallery_albums" }

// GalleryImage
type GalleryImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AlbumID   uuid.UUID `gorm:"type:uuid;not null" json:"albumId"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Caption   string    `gorm:"type:varchar(255)" json:"caption"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (GalleryImage) TableName() string { return "gallery_images" }

// SlideshowSlide is one slide on the homepage carousel.
type SlideshowSlide struct {
	BaseModel
	ImageURL  string `gorm:"type:text;not null" json:"imageUrl"`
	CaptionVi string `gorm:"type:varchar(255)" json:"captionVi"`
	CaptionEn string `gorm:"type:varchar(255)" json:"captionEn"`
	LinkURL   string `gorm:"type:text" json:"linkUrl"`
	Position  int    `gorm:"not null;default:0" json:"position"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`
}

func (SlideshowSlide) TableName() string { return "slideshow_slides" }

// ============================================================================
// HOOKS FOR UUID GENERATION
// ============================================================================

// setUUIDIfEmpty checks if ID is nil and sets it to a new UUID
func setUUIDIfEmpty(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// BaseModel Hook
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	setUUIDIfEmpty(&b.ID)
	return nil
}

func (m *Enrollment) BeforeCreate(tx *gorm.DB) error {
	setUUIDIfEmpty(&m.ID)
	return nil
}

func (m *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	setUUIDIfEmpty(&m.ID)
	return nil
}

// CanTransition reports whether an application may move from its current
// status to next. PENDING applications must pass through UNDER_REVIEW before
// a decision; decided applications are final.
func (a *RegistrationApplication) CanTransition(next ApplicationStatus) bool {
	switch a.Status {
	case ApplicationPending:
		return next == ApplicationUnderReview
	case ApplicationUnderReview:
		return next == ApplicationApproved || next == ApplicationWaitlisted || next == ApplicationRejected
	default:
		return false
	}
}
