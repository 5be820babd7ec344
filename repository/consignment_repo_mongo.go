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

const mongoDatabase = "sreedamodar"

type MongoConsignmentRepo struct {
	DB *mongo.Client
}

func NewMongoConsignmentRepo(db *mongo.Client) *MongoConsignmentRepo {
	return &MongoConsignmentRepo{DB: db}
}

// nextID mints an int64 _id so both backends share the relational id scheme.
func nextID() int64 {
	return time.Now().UnixNano()
}

func (r *MongoConsignmentRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("consignment")
}

func (r *MongoConsignmentRepo) CreateConsignment(c *models.Consignment) error {
	ctx := context.Background()
	if c.ID == 0 {
		c.ID = nextID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.Recompute()

	_, err := r.collection().InsertOne(ctx, c)
	return err
}

func (r *MongoConsignmentRepo) GetConsignments(filters map[string]interface{}, single bool) ([]*models.Consignment, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "q" {
			pat := primitive.Regex{Pattern: regexEscape(v), Options: "i"}
			bsonFilter["$or"] = bson.A{
				bson.M{"consignment_no": pat},
				bson.M{"customer_name": pat},
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
		var c models.Consignment
		err := r.collection().FindOne(ctx, bsonFilter).Decode(&c)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, err
		}
		return []*models.Consignment{&c}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.collection().Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Consignment
	for cur.Next(ctx) {
		var c models.Consignment
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}

func (r *MongoConsignmentRepo) UpdateConsignment(c *models.Consignment) error {
	ctx := context.Background()
	now := time.Now().UTC()
	c.UpdatedAt = &now
	c.Recompute()

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	return err
}

func (r *MongoConsignmentRepo) DeleteConsignment(id int64) error {
	_, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}

func (r *MongoConsignmentRepo) UpdatePDFInfo(id int64, path string, createdAt time.Time) error {
	_, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"pdf_path": path, "pdf_created_at": createdAt}},
	)
	return err
}
