package store

import (
	"context"
	"log"
	"time"

	"streetlens-admin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IssueStore reads and updates issue documents. Issues are created and
// destroyed by the citizen-facing client; the portal only ever writes
// status, assigned_worker and updated_at, or deletes a record outright.
type IssueStore struct {
	col *mongo.Collection
}

func NewIssueStore(col *mongo.Collection) *IssueStore {
	return &IssueStore{col: col}
}

// FetchAll returns every issue, newest first.
func (s *IssueStore) FetchAll(ctx context.Context) ([]models.Issue, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// FetchByID returns one issue or ErrNotFound.
func (s *IssueStore) FetchByID(ctx context.Context, id primitive.ObjectID) (*models.Issue, error) {
	var issue models.Issue
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&issue)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// FetchByReporter returns the issues submitted by one citizen, newest first.
func (s *IssueStore) FetchByReporter(ctx context.Context, userID string) ([]models.Issue, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// UpdateStatus sets the issue's status and, when worker is non-nil, its
// assigned worker. updated_at is refreshed on every call; that timestamp is
// what the resolution statistics read as the resolution time. Last write
// wins, there is no conflict detection.
func (s *IssueStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.IssueStatus, worker *string) error {
	update := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if worker != nil {
		update["assigned_worker"] = *worker
	}

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an issue outright. Privileged operation.
func (s *IssueStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Subscribe delivers the full newest-first issue collection to onSnapshot:
// once immediately, then once per external change, in arrival order. Every
// delivery is a complete snapshot, never a diff. The returned cancel stops
// further delivery; callers must invoke it when the consuming view goes away.
func (s *IssueStore) Subscribe(ctx context.Context, onSnapshot func([]models.Issue)) (func(), error) {
	stream, err := s.col.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithCancel(ctx)

	initial, err := s.FetchAll(subCtx)
	if err != nil {
		cancel()
		stream.Close(context.Background())
		return nil, err
	}
	onSnapshot(initial)

	go func() {
		defer stream.Close(context.Background())
		for stream.Next(subCtx) {
			issues, err := s.FetchAll(subCtx)
			if err != nil {
				log.Printf("issue snapshot refresh failed: %v", err)
				continue
			}
			onSnapshot(issues)
		}
	}()

	return cancel, nil
}
