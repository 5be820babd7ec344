package repository

import (
	"context"
	"errors"
	"time"

	"sreedamodar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoEnquiryRepo struct {
	DB *mongo.Client
}

func NewMongoEnquiryRepo(db *mongo.Client) *MongoEnquiryRepo {
	return &MongoEnquiryRepo{DB: db}
}

func (r *MongoEnquiryRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("future_booking")
}

func (r *MongoEnquiryRepo) CreateEnquiry(fb *models.FutureBooking) error {
	if fb.ID == 0 {
		fb.ID = nextID()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}
	if fb.Status == "" {
		fb.Status = models.EnquiryPending
	}
	_, err := r.collection().InsertOne(context.Background(), fb)
	return err
}

func (r *MongoEnquiryRepo) GetEnquiries(filters map[string]interface{}, single bool) ([]*models.FutureBooking, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	if single {
		var fb models.FutureBooking
		err := r.collection().FindOne(ctx, bsonFilter).Decode(&fb)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, err
		}
		return []*models.FutureBooking{&fb}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "expected_date", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.collection().Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.FutureBooking
	for cur.Next(ctx) {
		var fb models.FutureBooking
		if err := cur.Decode(&fb); err != nil {
			return nil, err
		}
		out = append(out, &fb)
	}
	return out, cur.Err()
}

func (r *MongoEnquiryRepo) UpdateEnquiryStatus(id int64, status string) error {
	_, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}

func (r *MongoEnquiryRepo) DeleteEnquiry(id int64) error {
	_, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}
