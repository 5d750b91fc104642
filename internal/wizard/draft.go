package wizard

// Draft is the registration form as the parent is filling it in: one flat
// record accumulated across all five steps. Fields are never deleted, only
// overwritten; moving backward through the steps does not clear anything.
// Optional fields use the empty string for "not provided"; the JSON payload
// sent to the server always carries every key.
type Draft struct {
	// Step 1 - student
	StudentFirstName string `json:"studentFirstName"`
	StudentLastName  string `json:"studentLastName"`
	StudentDOB       string `json:"studentDOB"`
	PreferredGrade   string `json:"preferredGrade"`

	// Step 2 - primary parent (required) and secondary parent (optional)
	ParentFirstName  string `json:"parentFirstName"`
	ParentLastName   string `json:"parentLastName"`
	ParentEmail      string `json:"parentEmail"`
	ParentPhone      string `json:"parentPhone"`
	ParentRelation   string `json:"parentRelation"`
	Parent2FirstName string `json:"parent2FirstName"`
	Parent2LastName  string `json:"parent2LastName"`
	Parent2Email     string `json:"parent2Email"`
	Parent2Phone     string `json:"parent2Phone"`
	Parent2Relation  string `json:"parent2Relation"`

	// Step 3 - address
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`

	// Step 4 - emergency contact. The instructions ask for a person other
	// than the parents above; that stays instruction text only, the form
	// does not cross-check it.
	EmergencyName     string `json:"emergencyName"`
	EmergencyPhone    string `json:"emergencyPhone"`
	EmergencyRelation string `json:"emergencyRelation"`

	// Step 5 - supplementary, all optional
	PreviousSchool  string `json:"previousSchool"`
	MedicalNotes    string `json:"medicalNotes"`
	Allergies       string `json:"allergies"`
	SpecialNeeds    string `json:"specialNeeds"`
	HowHeard        string `json:"howHeard"`
	AdditionalNotes string `json:"additionalNotes"`
}

// NewDraft returns an empty draft. Only state carries a default; everything
// else starts blank.
func NewDraft() Draft {
	return Draft{State: "HI"}
}

// HasPreferredGrade reports whether the parent picked a grade. Empty means
// "let the school assign".
func (d *Draft) HasPreferredGrade() bool { return d.PreferredGrade != "" }

// HasSecondParent reports whether the optional secondary parent block was
// started; the review step suppresses the block when it was not.
func (d *Draft) HasSecondParent() bool { return d.Parent2FirstName != "" }

// setters maps a form field name to a setter closure. One entry per field,
// no cross-field effects: changing parentEmail never touches anything else.
var setters = map[string]func(*Draft, string){
	"studentFirstName":  func(d *Draft, v string) { d.StudentFirstName = v },
	"studentLastName":   func(d *Draft, v string) { d.StudentLastName = v },
	"studentDOB":        func(d *Draft, v string) { d.StudentDOB = v },
	"preferredGrade":    func(d *Draft, v string) { d.PreferredGrade = v },
	"parentFirstName":   func(d *Draft, v string) { d.ParentFirstName = v },
	"parentLastName":    func(d *Draft, v string) { d.ParentLastName = v },
	"parentEmail":       func(d *Draft, v string) { d.ParentEmail = v },
	"parentPhone":       func(d *Draft, v string) { d.ParentPhone = v },
	"parentRelation":    func(d *Draft, v string) { d.ParentRelation = v },
	"parent2FirstName":  func(d *Draft, v string) { d.Parent2FirstName = v },
	"parent2LastName":   func(d *Draft, v string) { d.Parent2LastName = v },
	"parent2Email":      func(d *Draft, v string) { d.Parent2Email = v },
	"parent2Phone":      func(d *Draft, v string) { d.Parent2Phone = v },
	"parent2Relation":   func(d *Draft, v string) { d.Parent2Relation = v },
	"address":           func(d *Draft, v string) { d.Address = v },
	"city":              func(d *Draft, v string) { d.City = v },
	"state":             func(d *Draft, v string) { d.State = v },
	"zipCode":           func(d *Draft, v string) { d.ZipCode = v },
	"emergencyName":     func(d *Draft, v string) { d.EmergencyName = v },
	"emergencyPhone":    func(d *Draft, v string) { d.EmergencyPhone = v },
	"emergencyRelation": func(d *Draft, v string) { d.EmergencyRelation = v },
	"previousSchool":    func(d *Draft, v string) { d.PreviousSchool = v },
	"medicalNotes":      func(d *Draft, v string) { d.MedicalNotes = v },
	"allergies":         func(d *Draft, v string) { d.Allergies = v },
	"specialNeeds":      func(d *Draft, v string) { d.SpecialNeeds = v },
	"howHeard":          func(d *Draft, v string) { d.HowHeard = v },
	"additionalNotes":   func(d *Draft, v string) { d.AdditionalNotes = v },
}

// SetField merges a single named field into the draft, leaving every other
// field untouched. Unknown names are reported, not silently dropped.
func (d *Draft) SetField(name, value string) error {
	set, ok := setters[name]
	if !ok {
		return &UnknownFieldError{Name: name}
	}
	set(d, value)
	return nil
}

// FieldNames lists every settable field, in form order.
func FieldNames() []string {
	return []string{
		"studentFirstName", "studentLastName", "studentDOB", "preferredGrade",
		"parentFirstName", "parentLastName", "parentEmail", "parentPhone", "parentRelation",
		"parent2FirstName", "parent2LastName", "parent2Email", "parent2Phone", "parent2Relation",
		"address", "city", "state", "zipCode",
		"emergencyName", "emergencyPhone", "emergencyRelation",
		"previousSchool", "medicalNotes", "allergies", "specialNeeds", "howHeard", "additionalNotes",
	}
}

// requiredByStep holds the fields that must be non-empty before the form may
// advance past each step. Step 5 has no blocking validation. Only
// non-emptiness is checked here; email and date formats belong to the input
// widgets, not the state machine.
var requiredByStep = map[int][]func(*Draft) string{
	1: {
		func(d *Draft) string { return d.StudentFirstName },
		func(d *Draft) string { return d.StudentLastName },
		func(d *Draft) string { return d.StudentDOB },
	},
	2: {
		func(d *Draft) string { return d.ParentFirstName },
		func(d *Draft) string { return d.ParentLastName },
		func(d *Draft) string { return d.ParentEmail },
		func(d *Draft) string { return d.ParentPhone },
		func(d *Draft) string { return d.ParentRelation },
	},
	3: {
		func(d *Draft) string { return d.Address },
		func(d *Draft) string { return d.City },
		func(d *Draft) string { return d.State },
		func(d *Draft) string { return d.ZipCode },
	},
	4: {
		func(d *Draft) string { return d.EmergencyName },
		func(d *Draft) string { return d.EmergencyPhone },
		func(d *Draft) string { return d.EmergencyRelation },
	},
}

// ValidateStep reports whether every required field of the given step is
// filled in. Pure function of the draft, no side effects.
func ValidateStep(d *Draft, step int) bool {
	for _, get := range requiredByStep[step] {
		if get(d) == "" {
			return false
		}
	}
	return true
}

type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return "wizard: unknown form field " + e.Name
}
