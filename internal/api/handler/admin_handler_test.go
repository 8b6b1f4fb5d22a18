package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

var testAdmin = &domain.User{ID: "1", Email: "admin@example.com", Role: domain.RoleAdmin}

func adminContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newContext(method, target, body)
	c.Set("user", testAdmin)
	return c, rec
}

func TestAdminHandler_CreateCourse(t *testing.T) {
	svc := &stubCourseService{
		createFn: func(in ports.CreateCourseInput) (*domain.Course, error) {
			if in.Code == nil || *in.Code != 42 {
				t.Fatalf("code not passed: %+v", in.Code)
			}
			if in.Duration != 90 || in.CourseURL != "https://example.com" || len(in.Tags) != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Course{ID: "7", Code: 42, Title: in.Title}, nil
		},
	}
	handler := NewAdminHandler(svc, zerolog.Nop())

	c, rec := adminContext(http.MethodPost, "/api/v1/admin/courses",
		`{"code":42,"title":"Go","description":"D","duration":90,"courseurl":"https://example.com","tags":["go","web"]}`)
	if err := handler.CreateCourse(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var got domain.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "7" || got.Code != 42 {
		t.Fatalf("unexpected course: %+v", got)
	}
}

func TestAdminHandler_CreateCourse_MissingCodeReachesService(t *testing.T) {
	svc := &stubCourseService{
		createFn: func(in ports.CreateCourseInput) (*domain.Course, error) {
			if in.Code != nil {
				t.Fatalf("missing code must stay nil")
			}
			return nil, domain.Invalid("Course code is required")
		},
	}
	c, _ := adminContext(http.MethodPost, "/api/v1/admin/courses", `{"title":"Go","description":"D"}`)

	err := NewAdminHandler(svc, zerolog.Nop()).CreateCourse(c)
	if !errors.Is(err, domain.ErrValidation) || err.Error() != "Course code is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAdminHandler_UpdateCourse_PartialPatch(t *testing.T) {
	svc := &stubCourseService{
		updateFn: func(id string, patch domain.CoursePatch) (*domain.Course, error) {
			if id != "5" {
				t.Fatalf("unexpected id %q", id)
			}
			if patch.Title == nil || *patch.Title != "New" {
				t.Fatalf("title not patched")
			}
			if patch.Description != nil || patch.Tags != nil || patch.Duration != nil {
				t.Fatalf("absent fields must stay nil: %+v", patch)
			}
			return &domain.Course{ID: id, Title: *patch.Title}, nil
		},
	}
	c, rec := adminContext(http.MethodPut, "/api/v1/admin/courses/5", `{"title":"New","code":99}`)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := NewAdminHandler(svc, zerolog.Nop()).UpdateCourse(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_UpdateCourse_NotFound(t *testing.T) {
	svc := &stubCourseService{
		updateFn: func(string, domain.CoursePatch) (*domain.Course, error) {
			return nil, domain.ErrCourseNotFound
		},
	}
	c, _ := adminContext(http.MethodPut, "/api/v1/admin/courses/404", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("404")

	if err := NewAdminHandler(svc, zerolog.Nop()).UpdateCourse(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminHandler_DeleteCourse(t *testing.T) {
	svc := &stubCourseService{}
	c, rec := adminContext(http.MethodDelete, "/api/v1/admin/courses/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := NewAdminHandler(svc, zerolog.Nop()).DeleteCourse(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.deletedID != "3" {
		t.Fatalf("expected id 3 deleted, got %q", svc.deletedID)
	}

	var resp statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Message != "Course deleted successfully" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAdminHandler_RequiresUserInContext(t *testing.T) {
	c, _ := newContext(http.MethodDelete, "/api/v1/admin/courses/3", "")

	err := NewAdminHandler(&stubCourseService{}, zerolog.Nop()).DeleteCourse(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
