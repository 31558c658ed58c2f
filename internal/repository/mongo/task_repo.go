package mongo

import (
	"context"
	"time"

	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const taskCollectionName = "daily_tasks"

// mongoTaskRepository implements repository.TaskRepository using MongoDB.
type mongoTaskRepository struct {
	collection *mongo.Collection
}

// NewMongoTaskRepository creates a new instance of mongoTaskRepository.
func NewMongoTaskRepository(db *mongo.Database) repository.TaskRepository {
	return &mongoTaskRepository{
		collection: db.Collection(taskCollectionName),
	}
}

// CreateMany inserts a batch of tasks. IDs and creation timestamps are
// assigned here.
func (r *mongoTaskRepository) CreateMany(ctx context.Context, tasks []domain.DailyTask) error {
	if len(tasks) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(tasks))
	for i := range tasks {
		tasks[i].ID = primitive.NewObjectID()
		tasks[i].CreatedAt = now
		docs = append(docs, tasks[i])
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// GetByUserAndDate retrieves all tasks scheduled for the given date,
// oldest first. Date is a "YYYY-MM-DD" string.
func (r *mongoTaskRepository) GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.DailyTask, error) {
	filter := bson.M{"userId": userID, "scheduledFor": date}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []domain.DailyTask
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SetCompleted flips the completion flag on a single task owned by the user.
func (r *mongoTaskRepository) SetCompleted(ctx context.Context, userID, taskID primitive.ObjectID, completed bool) error {
	filter := bson.M{"_id": taskID, "userId": userID}
	update := bson.M{"$set": bson.M{"completed": completed}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByUserAndDate removes every task the user has on the given date.
func (r *mongoTaskRepository) DeleteByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) error {
	filter := bson.M{"userId": userID, "scheduledFor": date}
	_, err := r.collection.DeleteMany(ctx, filter)
	return err
}

// GetCompletedDates returns the scheduled dates of the user's completed
// tasks, newest first, up to limit rows. Dates may repeat when several
// tasks were completed on the same day.
func (r *mongoTaskRepository) GetCompletedDates(ctx context.Context, userID primitive.ObjectID, limit int64) ([]string, error) {
	filter := bson.M{"userId": userID, "completed": true}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "scheduledFor", Value: -1}}).
		SetProjection(bson.M{"scheduledFor": 1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ScheduledFor string `bson:"scheduledFor"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.ScheduledFor)
	}
	return dates, nil
}

// EnsureTaskIndexes creates necessary indexes for the daily_tasks collection.
func EnsureTaskIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Index for fetching a user's tasks for a given day
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "scheduledFor", Value: 1}},
			Options: options.Index(),
		},
		{
			// Index for streak queries over completed tasks
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "completed", Value: 1}, {Key: "scheduledFor", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
