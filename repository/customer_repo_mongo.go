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

type MongoCustomerRepo struct {
	DB *mongo.Client
}

func NewMongoCustomerRepo(db *mongo.Client) *MongoCustomerRepo {
	return &MongoCustomerRepo{DB: db}
}

func (r *MongoCustomerRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("customer")
}

func (r *MongoCustomerRepo) CreateCustomer(c *models.Customer) error {
	if c.ID == 0 {
		c.ID = nextID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection().InsertOne(context.Background(), c)
	return err
}

func (r *MongoCustomerRepo) GetCustomers(filters map[string]interface{}, single bool) ([]*models.Customer, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "q" {
			pat := primitive.Regex{Pattern: regexEscape(v), Options: "i"}
			bsonFilter["$or"] = bson.A{
				bson.M{"name": pat},
				bson.M{"phone": pat},
				bson.M{"gst_no": pat},
			}
			continue
		}
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	if single {
		var c models.Customer
		err := r.collection().FindOne(ctx, bsonFilter).Decode(&c)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, err
		}
		return []*models.Customer{&c}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.collection().Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Customer
	for cur.Next(ctx) {
		var c models.Customer
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}

func (r *MongoCustomerRepo) DeleteCustomer(id int64) error {
	_, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}
