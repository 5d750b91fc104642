package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/cache"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/domain"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/dto"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/repository"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/service"
)

func newRegistrationApp(t *testing.T) *fiber.App {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.RegistrationApplication{},
		&domain.Student{},
		&domain.Class{},
		&domain.Enrollment{},
	))

	regRepo := repository.NewRegistrationRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	svc := service.NewRegistrationService(regRepo, studentRepo, &cache.Client{}, 0)
	h := NewRegistrationHandler(svc)

	app := fiber.New()
	app.Post("/api/v1/register", h.Register)
	app.Get("/api/v1/grades", h.Grades)
	return app
}

func registrationBody() map[string]string {
	return map[string]string{
		"studentFirstName":  "An",
		"studentLastName":   "Nguyen",
		"studentDOB":        "2015-03-01",
		"parentFirstName":   "Binh",
		"parentLastName":    "Tran",
		"parentEmail":       "binh@example.com",
		"parentPhone":       "8081234567",
		"parentRelation":    "Mẹ",
		"address":           "123 Main St",
		"city":              "Honolulu",
		"state":             "HI",
		"zipCode":           "96814",
		"emergencyName":     "Hoa Le",
		"emergencyPhone":    "8089999999",
		"emergencyRelation": "Bà",
	}
}

func postRegister(t *testing.T, app *fiber.App, body map[string]string) (int, map[string]any) {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestRegisterAcceptsCompleteApplication(t *testing.T) {
	app := newRegistrationApp(t)

	status, body := postRegister(t, app, registrationBody())
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Đã nhận đơn ghi danh. Nhà trường sẽ liên lạc qua email.", body["message"])
}

// Failures on this endpoint are a flat {"error": string} object, nothing
// else; the form shows the string to the parent as-is.
func TestRegisterFailureBodyIsFlatErrorString(t *testing.T) {
	app := newRegistrationApp(t)

	incomplete := registrationBody()
	incomplete["parentEmail"] = ""
	status, body := postRegister(t, app, incomplete)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Len(t, body, 1)
	assert.Equal(t, "Vui lòng điền đầy đủ thông tin bắt buộc.", body["error"])
}

func TestRegisterRejectsUnknownGrade(t *testing.T) {
	app := newRegistrationApp(t)

	bad := registrationBody()
	bad["preferredGrade"] = "LOP_12"
	status, body := postRegister(t, app, bad)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Lớp học không hợp lệ.", body["error"])
}

func TestRegisterDuplicateOpenApplicationConflicts(t *testing.T) {
	app := newRegistrationApp(t)

	status, _ := postRegister(t, app, registrationBody())
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postRegister(t, app, registrationBody())
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Đơn ghi danh cho học sinh này đã tồn tại.", body["error"])
}

func TestRegisterEnglishLocaleMessages(t *testing.T) {
	app := newRegistrationApp(t)

	payload, err := json.Marshal(map[string]string{})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/v1/register?lang=en", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please fill in all required information.", body["error"])
}

func TestGradesReturnsOrderedTable(t *testing.T) {
	app := newRegistrationApp(t)

	req := httptest.NewRequest("GET", "/api/v1/grades", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)

	rows, ok := body.Data.([]any)
	require.True(t, ok)
	require.Len(t, rows, len(domain.GradeLevels))

	first, ok := rows[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "MAU_GIAO_A", first["code"])
	assert.Equal(t, "Mẫu Giáo A (4-5 tuổi)", first["labelVi"])

	last, ok := rows[len(rows)-1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "LOP_7", last["code"])
}
