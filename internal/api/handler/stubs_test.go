package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

type stubCourseService struct {
	courses   []domain.Course
	lastQuery string
	createFn  func(in ports.CreateCourseInput) (*domain.Course, error)
	updateFn  func(id string, patch domain.CoursePatch) (*domain.Course, error)
	deleteErr error
	deletedID string
}

func (s *stubCourseService) List(context.Context) ([]domain.Course, error) {
	return s.courses, nil
}

func (s *stubCourseService) Search(_ context.Context, query string) ([]domain.Course, error) {
	s.lastQuery = query
	return s.courses, nil
}

func (s *stubCourseService) Create(_ context.Context, in ports.CreateCourseInput) (*domain.Course, error) {
	return s.createFn(in)
}

func (s *stubCourseService) Update(_ context.Context, id string, patch domain.CoursePatch) (*domain.Course, error) {
	return s.updateFn(id, patch)
}

func (s *stubCourseService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.deleteErr
}

type stubGateway struct {
	byHeader map[string]*domain.User
	byEmail  map[string]*domain.User
}

func (g *stubGateway) RequireRole(context.Context, string, domain.Role) (*domain.User, error) {
	return nil, domain.ErrForbidden
}

func (g *stubGateway) ResolveUser(_ context.Context, header, fallback string) (*domain.User, error) {
	if u, ok := g.byHeader[header]; ok {
		return u, nil
	}
	if u, ok := g.byEmail[domain.CanonicalEmail(fallback)]; ok {
		return u, nil
	}
	return nil, domain.ErrUnauthenticated
}

type stubFavouriteService struct {
	listed  *domain.User
	added   []int
	removed []int
	addErr  error
	rmErr   error
	courses []domain.Course
}

func (s *stubFavouriteService) List(_ context.Context, user *domain.User) ([]domain.Course, error) {
	s.listed = user
	return s.courses, nil
}

func (s *stubFavouriteService) Add(_ context.Context, _ *domain.User, code int) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, code)
	return nil
}

func (s *stubFavouriteService) Remove(_ context.Context, _ *domain.User, code int) error {
	if s.rmErr != nil {
		return s.rmErr
	}
	s.removed = append(s.removed, code)
	return nil
}

// newContext builds an echo.Context for method and target with an optional
// JSON body.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
