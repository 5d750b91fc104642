package domain

// Grade level codes shared by the registration form, the review workflow and
// the admin side. The codes are stable identifiers; the labels are what
// parents see. Keep this table in sync with the class roster admin pages.
type GradeLevel string

const (
	GradeMauGiaoA GradeLevel = "MAU_GIAO_A"
	GradeMauGiaoB GradeLevel = "MAU_GIAO_B"
	GradeLop1     GradeLevel = "LOP_1"
	GradeLop2     GradeLevel = "LOP_2"
	GradeLop3     GradeLevel = "LOP_3"
	GradeLop4     GradeLevel = "LOP_4"
	GradeLop5     GradeLevel = "LOP_5"
	GradeLop6     GradeLevel = "LOP_6"
	GradeLop7     GradeLevel = "LOP_7"
)

type GradeInfo struct {
	Code    GradeLevel `json:"code"`
	LabelVi string     `json:"labelVi"`
	LabelEn string     `json:"labelEn"`
}

// GradeLevels lists every grade in teaching order. Order matters for the
// step-1 selector and the public grades endpoint.
var GradeLevels = []GradeInfo{
	{GradeMauGiaoA, "Mẫu Giáo A (4-5 tuổi)", "Kindergarten A (ages 4-5)"},
	{GradeMauGiaoB, "Mẫu Giáo B (5-6 tuổi)", "Kindergarten B (ages 5-6)"},
	{GradeLop1, "Lớp 1 (6-7 tuổi)", "Level 1 (ages 6-7)"},
	{GradeLop2, "Lớp 2 (7-8 tuổi)", "Level 2 (ages 7-8)"},
	{GradeLop3, "Lớp 3 (8-9 tuổi)", "Level 3 (ages 8-9)"},
	{GradeLop4, "Lớp 4 (9-10 tuổi)", "Level 4 (ages 9-10)"},
	{GradeLop5, "Lớp 5 (10-11 tuổi)", "Level 5 (ages 10-11)"},
	{GradeLop6, "Lớp 6 (11-13 tuổi)", "Level 6 (ages 11-13)"},
	{GradeLop7, "Lớp 7 (13+ tuổi)", "Level 7 (ages 13+)"},
}

var gradeLabelsVi = func() map[GradeLevel]string {
	m := make(map[GradeLevel]string, len(GradeLevels))
	for _, g := range GradeLevels {
		m[g.Code] = g.LabelVi
	}
	return m
}()

// ValidGrade reports whether code is a known grade. The empty string is not a
// grade; it means "let the school assign".
func ValidGrade(code string) bool {
	_, ok := gradeLabelsVi[GradeLevel(code)]
	return ok
}

// GradeLabelVi returns the Vietnamese display label for a grade code, or the
// code itself when unknown so stale data still renders something.
func GradeLabelVi(code string) string {
	if label, ok := gradeLabelsVi[GradeLevel(code)]; ok {
		return label
	}
	return code
}
