package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gcordner/chargeguard/internal/model"
)

const watchlistCollection = "watchlist_entries"

type mongoEntryRepository struct {
	coll *mongo.Collection
}

func NewMongoEntryRepository(client *mongo.Client, database string) EntryRepository {
	return &mongoEntryRepository{coll: client.Database(database).Collection(watchlistCollection)}
}

func (r *mongoEntryRepository) FindAll(ctx context.Context) ([]*model.Entry, error) {
	entries := make([]*model.Entry, 0)

	// createdAt keeps the stored (append) order; _id breaks the rare tie.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoEntryRepository) FindByID(ctx context.Context, id string) (*model.Entry, error) {
	var e model.Entry
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *mongoEntryRepository) Create(ctx context.Context, e *model.Entry) error {
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return err
	}
	return nil
}

func (r *mongoEntryRepository) SetDisabled(ctx context.Context, id string, disabled bool) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"disabled": disabled}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoEntryRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
