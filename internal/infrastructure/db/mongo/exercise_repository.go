package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

const collectionExercises = "exercises"

// ExerciseRepository stores exercises in their own collection, referenced by
// owner id (one-to-many). The repository never writes without a valid owner
// id format; existence of the owner is the service's responsibility.
type ExerciseRepository struct {
	col *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{col: db.Collection(collectionExercises)}
}

type exerciseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `bson:"owner_id"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d exerciseDoc) toDomain() *domain.Exercise {
	return &domain.Exercise{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID.Hex(),
		Description: d.Description,
		Duration:    d.Duration,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
	}
}

// Create inserts a new exercise document.
func (r *ExerciseRepository) Create(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	ownerOID, err := primitive.ObjectIDFromHex(e.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := exerciseDoc{
		OwnerID:     ownerOID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.UTC(),
		CreatedAt:   e.CreatedAt.UTC(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// ListByOwner returns all exercises of the owner in insertion order
// (_id ascending; ObjectIDs are generated monotonically).
func (r *ExerciseRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Exercise, error) {
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx,
		bson.M{"owner_id": ownerOID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer cur.Close(ctx)

	var docs []exerciseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}

	exercises := make([]*domain.Exercise, 0, len(docs))
	for _, d := range docs {
		exercises = append(exercises, d.toDomain())
	}
	return exercises, nil
}

// EnsureIndexes creates the owner_id index used by ListByOwner.
func (r *ExerciseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "_id", Value: 1}},
	})
	return err
}
