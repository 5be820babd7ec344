package repository

import (
	"context"
	"errors"
	"time"

	"sreedamodar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDriverRepo struct {
	DB *mongo.Client
}

func NewMongoDriverRepo(db *mongo.Client) *MongoDriverRepo {
	return &MongoDriverRepo{DB: db}
}

func (r *MongoDriverRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("driver")
}

func (r *MongoDriverRepo) CreateDriver(d *models.Driver) error {
	if d.ID == 0 {
		d.ID = nextID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection().InsertOne(context.Background(), d)
	return err
}

func (r *MongoDriverRepo) GetDrivers(filters map[string]interface{}, single bool) ([]*models.Driver, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "q" {
			pat := primitive.Regex{Pattern: regexEscape(v), Options: "i"}
			bsonFilter["$or"] = bson.A{
				bson.M{"name": pat},
				bson.M{"phone": pat},
				bson.M{"vehicle_number": pat},
			}
			continue
		}
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	if single {
		var d models.Driver
		err := r.collection().FindOne(ctx, bsonFilter).Decode(&d)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, err
		}
		return []*models.Driver{&d}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.collection().Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Driver
	for cur.Next(ctx) {
		var d models.Driver
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}

func (r *MongoDriverRepo) DeleteDriver(id int64) error {
	_, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}
