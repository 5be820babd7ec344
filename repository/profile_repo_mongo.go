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

type MongoProfileRepo struct {
	DB *mongo.Client
}

func NewMongoProfileRepo(db *mongo.Client) *MongoProfileRepo {
	return &MongoProfileRepo{DB: db}
}

func (r *MongoProfileRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("company_profile")
}

func (r *MongoProfileRepo) SaveProfile(p *models.CompanyProfile) error {
	ctx := context.Background()
	if p.ID == 0 {
		p.ID = nextID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection().ReplaceOne(ctx,
		bson.M{"code": p.Code}, p,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoProfileRepo) GetProfiles() ([]*models.CompanyProfile, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cur, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.CompanyProfile
	for cur.Next(ctx) {
		var p models.CompanyProfile
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoProfileRepo) GetProfileByCode(code string) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := r.collection().FindOne(context.Background(), bson.M{"code": code}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
