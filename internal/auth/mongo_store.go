package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCredentialStore keeps credentials in a collection with a
// unique index on email.
type MongoCredentialStore struct {
	coll *mongo.Collection
}

func NewMongoCredentialStore(ctx context.Context, db *mongo.Database, coll string) (*MongoCredentialStore, error) {
	c := db.Collection(coll)

	idxCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	_, err := c.Indexes().CreateOne(idxCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return &MongoCredentialStore{coll: c}, nil
}

func (s *MongoCredentialStore) Create(ctx context.Context, email, passHash string) (string, error) {
	doc := bson.M{
		"email":     normalizeEmail(email),
		"pass_hash": passHash,
	}
	res, err := s.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return "", ErrDuplicateEmail
	}
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (s *MongoCredentialStore) FindByEmail(ctx context.Context, email string) (*Credential, error) {
	var doc struct {
		ID       primitive.ObjectID `bson:"_id"`
		Email    string             `bson:"email"`
		PassHash string             `bson:"pass_hash"`
	}
	err := s.coll.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Credential{
		ID:       doc.ID.Hex(),
		Email:    doc.Email,
		PassHash: doc.PassHash,
	}, nil
}
