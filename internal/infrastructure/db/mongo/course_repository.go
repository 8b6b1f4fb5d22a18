package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/db/tags"
)

type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(collectionCourses)}
}

type courseDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Code        int                `bson:"code"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Provider    string             `bson:"provider"`
	Image       string             `bson:"image"`
	Duration    int                `bson:"duration"`
	CourseURL   string             `bson:"courseurl"`
	Tags        string             `bson:"tags"`
}

func toCourseDocument(c *domain.Course) courseDocument {
	return courseDocument{
		Code:        c.Code,
		Title:       c.Title,
		Description: c.Description,
		Provider:    c.Provider,
		Image:       c.Image,
		Duration:    c.Duration,
		CourseURL:   c.CourseURL,
		Tags:        tags.Join(c.Tags),
	}
}

func (d courseDocument) toDomain() domain.Course {
	return domain.Course{
		ID:          d.ID.Hex(),
		Code:        d.Code,
		Title:       d.Title,
		Description: d.Description,
		Provider:    d.Provider,
		Image:       d.Image,
		Duration:    d.Duration,
		CourseURL:   d.CourseURL,
		Tags:        tags.Split(d.Tags),
	}
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	var docs []courseDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}

	courses := make([]domain.Course, 0, len(docs))
	for _, d := range docs {
		courses = append(courses, d.toDomain())
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CourseRepository) FindByCode(ctx context.Context, code int) (*domain.Course, error) {
	return r.findOne(ctx, bson.M{"code": code})
}

func (r *CourseRepository) findOne(ctx context.Context, filter bson.M) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc courseDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toCourseDocument(course)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCourseExists
		}
		return nil, fmt.Errorf("insert course: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	oid, ok := objectID(course.ID)
	if !ok {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": toCourseDocument(course)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCourseExists
		}
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}
