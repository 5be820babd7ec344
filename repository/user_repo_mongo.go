package repository

import (
	"context"
	"errors"
	"time"

	"sreedamodar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"golang.org/x/crypto/bcrypt"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("app_user")
}

func (r *MongoUserRepo) CreateUser(user *models.AppUser) error {
	ctx := context.Background()

	existing, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("email already exists")
	}

	if user.Password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if user.ID == 0 {
		user.ID = nextID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err = r.collection().InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.collection().FindOne(context.Background(), bson.M{"email": email}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
