package i18n

// Locale identifies one of the two site languages.
type Locale string

const (
	LocaleVi Locale = "vi"
	LocaleEn Locale = "en"
)

// DefaultLocale is Vietnamese; the site is Vietnamese-first.
const DefaultLocale = LocaleVi

// messages holds every user-facing string keyed by message id. Vietnamese is
// the canonical text; English entries that are missing fall back to
// Vietnamese, and unknown keys render as the key so gaps are visible.
var messages = map[Locale]map[string]string{
	LocaleVi: {
		"register.incomplete":       "Vui lòng điền đầy đủ thông tin bắt buộc.",
		"register.submit_failed":    "Không thể gửi đơn ghi danh. Vui lòng thử lại.",
		"register.duplicate":        "Đơn ghi danh cho học sinh này đã tồn tại.",
		"register.too_fast":         "Đơn vừa được gửi. Vui lòng chờ trong giây lát.",
		"register.received":         "Đã nhận đơn ghi danh. Nhà trường sẽ liên lạc qua email.",
		"register.invalid_grade":    "Lớp học không hợp lệ.",
		"register.grade_unassigned": "Để trường xếp lớp",
		"contact.received":          "Đã nhận tin nhắn. Cảm ơn quý vị đã liên lạc.",
		"contact.incomplete":        "Vui lòng điền tên, email và nội dung tin nhắn.",
	},
	LocaleEn: {
		"register.incomplete":       "Please fill in all required information.",
		"register.submit_failed":    "Could not submit the registration. Please try again.",
		"register.duplicate":        "A registration for this student already exists.",
		"register.too_fast":         "An application was just submitted. Please wait a moment.",
		"register.received":         "Registration received. The school will follow up by email.",
		"register.invalid_grade":    "Invalid grade level.",
		"register.grade_unassigned": "Let the school assign a class",
		"contact.received":          "Message received. Thank you for reaching out.",
		"contact.incomplete":        "Please provide your name, email and a message.",
	},
}

// T looks up the message for key in the given locale.
func T(loc Locale, key string) string {
	if m, ok := messages[loc]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[DefaultLocale][key]; ok {
		return s
	}
	return key
}

// ParseLocale maps a request value ("vi", "en") to a Locale, defaulting to
// Vietnamese for anything unrecognized.
func ParseLocale(s string) Locale {
	if Locale(s) == LocaleEn {
		return LocaleEn
	}
	return DefaultLocale
}
