package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

type FavouriteRepository struct {
	coll *mongo.Collection
}

func NewFavouriteRepository(db *mongo.Database) *FavouriteRepository {
	return &FavouriteRepository{coll: db.Collection(collectionFavourites)}
}

type favouriteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Code      int                `bson:"code"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d favouriteDocument) toDomain() domain.Favourite {
	return domain.Favourite{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Code:      d.Code,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (r *FavouriteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Favourite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}
	defer cur.Close(ctx)

	var docs []favouriteDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode favourites: %w", err)
	}

	favs := make([]domain.Favourite, 0, len(docs))
	for _, d := range docs {
		favs = append(favs, d.toDomain())
	}
	return favs, nil
}

func (r *FavouriteRepository) Find(ctx context.Context, userID string, code int) (*domain.Favourite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc favouriteDocument
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "code": code}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFavouriteNotFound
		}
		return nil, fmt.Errorf("find favourite: %w", err)
	}
	f := doc.toDomain()
	return &f, nil
}

func (r *FavouriteRepository) Create(ctx context.Context, fav *domain.Favourite) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, favouriteDocument{UserID: fav.UserID, Code: fav.Code, CreatedAt: fav.CreatedAt})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrFavouriteExists
		}
		return fmt.Errorf("insert favourite: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		fav.ID = oid.Hex()
	}
	return nil
}

func (r *FavouriteRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrFavouriteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFavouriteNotFound
	}
	return nil
}
