package mongo

import (
	"context"
	"errors"
	"time"

	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const assessmentCollectionName = "posture_assessments"

// mongoAssessmentRepository implements repository.AssessmentRepository using MongoDB.
type mongoAssessmentRepository struct {
	collection *mongo.Collection
}

// NewMongoAssessmentRepository creates a new instance of mongoAssessmentRepository.
func NewMongoAssessmentRepository(db *mongo.Database) repository.AssessmentRepository {
	return &mongoAssessmentRepository{
		collection: db.Collection(assessmentCollectionName),
	}
}

// Create inserts a new posture assessment.
func (r *mongoAssessmentRepository) Create(ctx context.Context, assessment *domain.PostureAssessment) (primitive.ObjectID, error) {
	assessment.ID = primitive.NewObjectID()
	if assessment.AssessedAt.IsZero() {
		assessment.AssessedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, assessment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByUserID retrieves the user's assessments, newest first, up to limit
// entries. A limit of zero or less means no limit.
func (r *mongoAssessmentRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.PostureAssessment, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "assessedAt", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []domain.PostureAssessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// EnsurePostureAssessmentIndexes creates necessary indexes for the
// posture_assessments collection.
func EnsurePostureAssessmentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Index for listing a user's assessment history by recency
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "assessedAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
