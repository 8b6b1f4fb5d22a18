package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail        map[string]*domain.User
	nextID         int
	findErr        error // if set, FindByEmail returns this error
	updateErr      error // if set, UpdatePassword returns this error
	updatePassword int   // number of UpdatePassword calls
	// racing simulates a concurrent registration that lands between the
	// existence check and the insert.
	racing bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) seed(u domain.User) *domain.User {
	r.nextID++
	u.ID = strconv.Itoa(r.nextID)
	r.byEmail[u.Email] = cloneUser(&u)
	return cloneUser(&u)
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists || r.racing {
		return nil, domain.ErrUserExists
	}
	return r.seed(*user), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, userID, password string) error {
	r.updatePassword++
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, u := range r.byEmail {
		if u.ID == userID {
			u.Password = password
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubCourseRepo struct {
	byID      map[string]*domain.Course
	nextID    int
	createErr error
	findErr   error // if set, FindByID and FindByCode return this error
	listCalls int
	// afterList runs once the list has been read, before it is returned.
	afterList func()
}

func newStubCourseRepo(courses ...domain.Course) *stubCourseRepo {
	r := &stubCourseRepo{byID: make(map[string]*domain.Course)}
	for _, c := range courses {
		_, _ = r.Create(context.Background(), &c)
	}
	return r
}

func (r *stubCourseRepo) List(_ context.Context) ([]domain.Course, error) {
	r.listCalls++
	out := make([]domain.Course, 0, len(r.byID))
	for i := 1; i <= r.nextID; i++ {
		if c, ok := r.byID[strconv.Itoa(i)]; ok {
			out = append(out, *c)
		}
	}
	if hook := r.afterList; hook != nil {
		r.afterList = nil
		hook()
	}
	return out, nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCourseRepo) FindByCode(_ context.Context, code int) (*domain.Course, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, c := range r.byID {
		if c.Code == code {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) Create(_ context.Context, course *domain.Course) (*domain.Course, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, c := range r.byID {
		if c.Code == course.Code {
			return nil, domain.ErrCourseExists
		}
	}
	r.nextID++
	clone := *course
	clone.ID = strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCourseRepo) Update(_ context.Context, course *domain.Course) error {
	if _, ok := r.byID[course.ID]; !ok {
		return domain.ErrCourseNotFound
	}
	clone := *course
	r.byID[course.ID] = &clone
	return nil
}

func (r *stubCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubFavouriteRepo struct {
	favs    []domain.Favourite
	nextID  int
	listErr error
}

func (r *stubFavouriteRepo) ListByUser(_ context.Context, userID string) ([]domain.Favourite, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Favourite
	for _, f := range r.favs {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *stubFavouriteRepo) Find(_ context.Context, userID string, code int) (*domain.Favourite, error) {
	for _, f := range r.favs {
		if f.UserID == userID && f.Code == code {
			clone := f
			return &clone, nil
		}
	}
	return nil, domain.ErrFavouriteNotFound
}

func (r *stubFavouriteRepo) Create(_ context.Context, fav *domain.Favourite) error {
	for _, f := range r.favs {
		if f.UserID == fav.UserID && f.Code == fav.Code {
			return domain.ErrFavouriteExists
		}
	}
	r.nextID++
	fav.ID = strconv.Itoa(r.nextID)
	r.favs = append(r.favs, *fav)
	return nil
}

func (r *stubFavouriteRepo) Delete(_ context.Context, id string) error {
	for i, f := range r.favs {
		if f.ID == id {
			r.favs = append(r.favs[:i], r.favs[i+1:]...)
			return nil
		}
	}
	return domain.ErrFavouriteNotFound
}

// stubCache keeps one list per generation, like the Redis cache.
type stubCache struct {
	gen         int64
	lists       map[int64][]domain.Course
	getErr      error
	sets        int
	invalidated int
}

func (c *stubCache) Get(_ context.Context) ([]domain.Course, int64, bool, error) {
	if c.getErr != nil {
		return nil, 0, false, c.getErr
	}
	courses, ok := c.lists[c.gen]
	return courses, c.gen, ok, nil
}

func (c *stubCache) Set(_ context.Context, gen int64, courses []domain.Course) error {
	c.sets++
	if c.lists == nil {
		c.lists = make(map[int64][]domain.Course)
	}
	c.lists[gen] = courses
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.invalidated++
	c.gen++
	return nil
}

var errStoreDown = errors.New("store unavailable")
