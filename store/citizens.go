package store

import (
	"context"

	"streetlens-admin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CitizenStore reads reporter profiles from the users collection. Profiles
// are created by the citizen-facing client; this portal never writes them.
type CitizenStore struct {
	col *mongo.Collection
}

func NewCitizenStore(col *mongo.Collection) *CitizenStore {
	return &CitizenStore{col: col}
}

// FetchAll returns every citizen-role profile. Admin accounts share the
// collection but are not part of the directory.
func (s *CitizenStore) FetchAll(ctx context.Context) ([]models.Citizen, error) {
	cursor, err := s.col.Find(ctx, bson.M{"role": models.RoleCitizen})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	citizens := []models.Citizen{}
	if err := cursor.All(ctx, &citizens); err != nil {
		return nil, err
	}
	return citizens, nil
}

// FetchByUID returns the profile for one auth uid or ErrNotFound.
func (s *CitizenStore) FetchByUID(ctx context.Context, userID string) (*models.Citizen, error) {
	var citizen models.Citizen
	err := s.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&citizen)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &citizen, nil
}

// FindByEmail returns a profile by email or ErrNotFound. Used by login.
func (s *CitizenStore) FindByEmail(ctx context.Context, email string) (*models.Citizen, error) {
	var citizen models.Citizen
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&citizen)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &citizen, nil
}
