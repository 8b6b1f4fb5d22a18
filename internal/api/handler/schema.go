package handler

import (
	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required,notblank"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password" validate:"required,notblank"`
}

type userSummary struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type authResponse struct {
	User  userSummary `json:"user"`
	Token string      `json:"token"`
}

func toAuthResponse(res *ports.AuthResult) authResponse {
	return authResponse{
		User:  userSummary{Name: res.User.Name, Role: string(res.User.Role)},
		Token: res.Token,
	}
}

// --- Courses ---

type createCourseRequest struct {
	Code        *int     `json:"code"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Provider    string   `json:"provider"`
	Image       string   `json:"image"`
	Duration    *int     `json:"duration"`
	CourseURL   string   `json:"courseurl"`
	Tags        []string `json:"tags"`
}

func (r createCourseRequest) toInput() ports.CreateCourseInput {
	in := ports.CreateCourseInput{
		Code:        r.Code,
		Title:       r.Title,
		Description: r.Description,
		Provider:    r.Provider,
		Image:       r.Image,
		CourseURL:   r.CourseURL,
		Tags:        r.Tags,
	}
	if r.Duration != nil {
		in.Duration = *r.Duration
	}
	return in
}

// updateCourseRequest is a partial update: absent fields keep their value.
// The course code cannot be changed.
type updateCourseRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Provider    *string   `json:"provider"`
	Image       *string   `json:"image"`
	Duration    *int      `json:"duration"`
	CourseURL   *string   `json:"courseurl"`
	Tags        *[]string `json:"tags"`
}

func (r updateCourseRequest) toPatch() domain.CoursePatch {
	return domain.CoursePatch{
		Title:       r.Title,
		Description: r.Description,
		Provider:    r.Provider,
		Image:       r.Image,
		Duration:    r.Duration,
		CourseURL:   r.CourseURL,
		Tags:        r.Tags,
	}
}

// --- Favourites ---

type addFavouriteRequest struct {
	Email string `json:"email"`
	Code  *int   `json:"code" validate:"required"`
}

// --- Shared ---

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
