package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

func newFavouriteFixture() (*FavouriteHandler, *stubFavouriteService) {
	alice := &domain.User{ID: "1", Email: "alice@example.com"}
	bob := &domain.User{ID: "2", Email: "bob@example.com"}
	gw := &stubGateway{
		byHeader: map[string]*domain.User{"Bearer alice": alice},
		byEmail:  map[string]*domain.User{"alice@example.com": alice, "bob@example.com": bob},
	}
	svc := &stubFavouriteService{courses: []domain.Course{{ID: "1", Code: 1}}}
	return NewFavouriteHandler(gw, svc), svc
}

func TestFavouriteHandler_List_ByHeader(t *testing.T) {
	h, svc := newFavouriteFixture()
	c, rec := newContext(http.MethodGet, "/api/v1/favourites?email=bob@example.com", "")
	c.Request().Header.Set("Authorization", "Bearer alice")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.listed == nil || svc.listed.ID != "1" {
		t.Fatalf("token identity must win over the email param, got %+v", svc.listed)
	}
}

func TestFavouriteHandler_List_ByEmailParam(t *testing.T) {
	h, svc := newFavouriteFixture()
	c, _ := newContext(http.MethodGet, "/api/v1/favourites?email=BOB@example.com", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.listed == nil || svc.listed.ID != "2" {
		t.Fatalf("expected bob, got %+v", svc.listed)
	}
}

func TestFavouriteHandler_List_Unauthenticated(t *testing.T) {
	h, _ := newFavouriteFixture()
	c, _ := newContext(http.MethodGet, "/api/v1/favourites", "")

	if err := h.List(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestFavouriteHandler_Add(t *testing.T) {
	h, svc := newFavouriteFixture()
	c, rec := newContext(http.MethodPost, "/api/v1/favourites", `{"email":"alice@example.com","code":12}`)

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(svc.added) != 1 || svc.added[0] != 12 {
		t.Fatalf("expected code 12 added, got %v", svc.added)
	}
}

func TestFavouriteHandler_Add_MissingCode(t *testing.T) {
	h, svc := newFavouriteFixture()
	c, _ := newContext(http.MethodPost, "/api/v1/favourites", `{"email":"alice@example.com"}`)

	err := h.Add(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err.Error() != "code is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(svc.added) != 0 {
		t.Fatalf("nothing must be added")
	}
}

func TestFavouriteHandler_Add_Duplicate(t *testing.T) {
	h, svc := newFavouriteFixture()
	svc.addErr = domain.ErrFavouriteExists
	c, _ := newContext(http.MethodPost, "/api/v1/favourites", `{"code":1}`)
	c.Request().Header.Set("Authorization", "Bearer alice")

	if err := h.Add(c); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestFavouriteHandler_Remove(t *testing.T) {
	h, svc := newFavouriteFixture()
	c, rec := newContext(http.MethodDelete, "/api/v1/favourites/5?email=alice@example.com", "")
	c.SetParamNames("code")
	c.SetParamValues("5")

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.removed) != 1 || svc.removed[0] != 5 {
		t.Fatalf("expected code 5 removed, got %v", svc.removed)
	}
}

func TestFavouriteHandler_Remove_BadCode(t *testing.T) {
	h, _ := newFavouriteFixture()
	c, _ := newContext(http.MethodDelete, "/api/v1/favourites/abc", "")
	c.SetParamNames("code")
	c.SetParamValues("abc")

	err := h.Remove(c)
	if !errors.Is(err, domain.ErrValidation) || err.Error() != "Invalid course code" {
		t.Fatalf("expected Invalid course code, got %v", err)
	}
}

func TestFavouriteHandler_Remove_NotFound(t *testing.T) {
	h, svc := newFavouriteFixture()
	svc.rmErr = domain.ErrFavouriteNotFound
	c, _ := newContext(http.MethodDelete, "/api/v1/favourites/9", "")
	c.Request().Header.Set("Authorization", "Bearer alice")
	c.SetParamNames("code")
	c.SetParamValues("9")

	if err := h.Remove(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
