package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

func TestCourseHandler_List(t *testing.T) {
	svc := &stubCourseService{courses: []domain.Course{
		{ID: "1", Code: 1, Title: "Go", CourseURL: "https://example.com/go", Tags: []string{"go"}},
	}}
	c, rec := newContext(http.MethodGet, "/api/v1/courses", "")

	if err := NewCourseHandler(svc).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0]["courseurl"] != "https://example.com/go" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCourseHandler_ListEmptyRendersArray(t *testing.T) {
	svc := &stubCourseService{courses: []domain.Course{}}
	c, rec := newContext(http.MethodGet, "/api/v1/courses", "")

	if err := NewCourseHandler(svc).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestCourseHandler_SearchPassesQuery(t *testing.T) {
	svc := &stubCourseService{courses: []domain.Course{}}
	c, rec := newContext(http.MethodGet, "/api/v1/courses/search?query=%23java", "")

	if err := NewCourseHandler(svc).Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastQuery != "#java" {
		t.Fatalf("expected query #java, got %q", svc.lastQuery)
	}
}

func TestSearchMode(t *testing.T) {
	cases := map[string]string{"": "all", "  ": "all", "#go": "tag", " #go": "tag", "spring": "text"}
	for q, want := range cases {
		if got := searchMode(q); got != want {
			t.Fatalf("searchMode(%q) = %q, want %q", q, got, want)
		}
	}
}
