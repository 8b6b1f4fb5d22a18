package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

func TestObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, ok := objectID(oid.Hex())
	assert.True(t, ok)
	assert.Equal(t, oid, got)

	for _, bad := range []string{"", "42", "not-hex", oid.Hex() + "00"} {
		_, ok := objectID(bad)
		assert.False(t, ok, bad)
	}
}

func TestCourseDocument_StoresJoinedTags(t *testing.T) {
	doc := toCourseDocument(&domain.Course{
		Code: 3, Title: "Spring", Description: "Web", CourseURL: "https://example.com",
		Tags: []string{"java", " spring", ""},
	})
	assert.Equal(t, "java,spring", doc.Tags)

	raw, err := bson.Marshal(doc)
	assert.NoError(t, err)
	var m bson.M
	assert.NoError(t, bson.Unmarshal(raw, &m))
	assert.NotContains(t, m, "_id", "a zero id is left for the server to assign")
	assert.Equal(t, "https://example.com", m["courseurl"])

	doc.ID = primitive.NewObjectID()
	c := doc.toDomain()
	assert.Equal(t, doc.ID.Hex(), c.ID)
	assert.Equal(t, []string{"java", "spring"}, c.Tags)
}

func TestUserDocument_ToDomain(t *testing.T) {
	created := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Name:      "Ada",
		Email:     "ada@example.com",
		Password:  "hash",
		Role:      "ADMIN",
		CreatedAt: created,
		UpdatedAt: created,
	}
	u := doc.toDomain()
	assert.Equal(t, doc.ID.Hex(), u.ID)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.Equal(t, created, u.CreatedAt)
}
