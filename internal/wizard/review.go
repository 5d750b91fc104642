package wizard

import (
	"strings"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/i18n"
)

// ReviewSummary is the read-only echo shown on step 5. It is part of the
// form's contract: this is the parent's only chance to catch a typo before
// the submission becomes an application the office will act on.
type ReviewSummary struct {
	StudentName   string
	StudentDOB    string
	GradeLabel    string
	ParentLine    string
	SecondParent  string // empty when no secondary parent was entered
	AddressLine   string
	EmergencyLine string
}

// ReviewSummary renders the current draft for the review step. An empty
// preferredGrade shows the "let the school assign" phrase; an empty
// parent2FirstName suppresses the secondary-parent line entirely.
func (c *Controller) ReviewSummary() ReviewSummary {
	d := &c.draft

	grade := i18n.T(c.locale, "register.grade_unassigned")
	if d.HasPreferredGrade() {
		grade = domain.GradeLabelVi(d.PreferredGrade)
	}

	summary := ReviewSummary{
		StudentName:   joinName(d.StudentFirstName, d.StudentLastName),
		StudentDOB:    d.StudentDOB,
		GradeLabel:    grade,
		ParentLine:    contactLine(joinName(d.ParentFirstName, d.ParentLastName), d.ParentRelation, d.ParentEmail, d.ParentPhone),
		AddressLine:   joinParts(", ", d.Address, d.City, joinParts(" ", d.State, d.ZipCode)),
		EmergencyLine: contactLine(d.EmergencyName, d.EmergencyRelation, "", d.EmergencyPhone),
	}

	if d.HasSecondParent() {
		summary.SecondParent = contactLine(joinName(d.Parent2FirstName, d.Parent2LastName), d.Parent2Relation, d.Parent2Email, d.Parent2Phone)
	}

	return summary
}

func joinName(first, last string) string {
	return joinParts(" ", first, last)
}

func contactLine(name, relation, email, phone string) string {
	line := name
	if relation != "" {
		line += " (" + relation + ")"
	}
	return joinParts(" - ", line, email, phone)
}

func joinParts(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
