package db

import (
	"context"
	"errors"
	"fmt"

	"bloglist/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBlogRepository implements the BlogRepository interface for MongoDB
type MongoBlogRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoBlogRepository creates a new MongoBlogRepository
func NewMongoBlogRepository(client *mongo.Client, database, collection string) *MongoBlogRepository {
	return &MongoBlogRepository{
		client:     client,
		database:   database,
		collection: collection,
	}
}

func (r *MongoBlogRepository) coll() *mongo.Collection {
	return r.client.Database(r.database).Collection(r.collection)
}

// FindAll finds all blogs
func (r *MongoBlogRepository) FindAll(ctx context.Context) ([]*models.Blog, error) {
	cursor, err := r.coll().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []*models.Blog
	if err = cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("error decoding blogs: %w", err)
	}

	return blogs, nil
}

// FindByID finds a blog by ID
func (r *MongoBlogRepository) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding blog: %w", err)
	}

	return &blog, nil
}

// Create inserts a new blog
func (r *MongoBlogRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if blog.ID == "" {
		blog.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.coll().InsertOne(ctx, blog)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error creating blog: %w", err)
	}

	return blog, nil
}

// UpdateByID applies the non-nil patch fields and returns the post-update
// document, so the write is durably visible before any response is produced.
func (r *MongoBlogRepository) UpdateByID(ctx context.Context, id string, patch *BlogPatch) (*models.Blog, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}
	if patch.Likes != nil {
		set["likes"] = *patch.Likes
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var blog models.Blog
	err := r.coll().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating blog: %w", err)
	}

	return &blog, nil
}

// DeleteByID deletes a blog by ID
func (r *MongoBlogRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting blog: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteAll drops every blog document. Used by the test harness.
func (r *MongoBlogRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("error deleting blogs: %w", err)
	}
	return nil
}

// MongoUserRepository implements the UserRepository interface for MongoDB
type MongoUserRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(client *mongo.Client, database, collection string) *MongoUserRepository {
	return &MongoUserRepository{
		client:     client,
		database:   database,
		collection: collection,
	}
}

func (r *MongoUserRepository) coll() *mongo.Collection {
	return r.client.Database(r.database).Collection(r.collection)
}

// FindAll finds all users
func (r *MongoUserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	cursor, err := r.coll().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	return users, nil
}

// FindByUsername finds a user by username
func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.coll().FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return &user, nil
}

// Create inserts a new user. The unique index on username turns a racing
// duplicate insert into ErrDuplicate.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.coll().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// DeleteAll drops every user document. Used by the test harness.
func (r *MongoUserRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("error deleting users: %w", err)
	}
	return nil
}

// MongoContactRepository implements the ContactRepository interface for MongoDB
type MongoContactRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoContactRepository creates a new MongoContactRepository
func NewMongoContactRepository(client *mongo.Client, database, collection string) *MongoContactRepository {
	return &MongoContactRepository{
		client:     client,
		database:   database,
		collection: collection,
	}
}

func (r *MongoContactRepository) coll() *mongo.Collection {
	return r.client.Database(r.database).Collection(r.collection)
}

// FindAll finds all contacts
func (r *MongoContactRepository) FindAll(ctx context.Context) ([]*models.Contact, error) {
	cursor, err := r.coll().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []*models.Contact
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("error decoding contacts: %w", err)
	}

	return contacts, nil
}

// FindByID finds a contact by ID
func (r *MongoContactRepository) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding contact: %w", err)
	}

	return &contact, nil
}

// Create inserts a new contact
func (r *MongoContactRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if contact.ID == "" {
		contact.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.coll().InsertOne(ctx, contact)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error creating contact: %w", err)
	}

	return contact, nil
}

// UpdateByID replaces the contact's name and number and returns the
// post-update document.
func (r *MongoContactRepository) UpdateByID(ctx context.Context, id string, contact *models.Contact) (*models.Contact, error) {
	update := bson.M{"$set": bson.M{
		"name":   contact.Name,
		"number": contact.Number,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Contact
	err := r.coll().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error updating contact: %w", err)
	}

	return &updated, nil
}

// DeleteByID deletes a contact by ID
func (r *MongoContactRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting contact: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteAll drops every contact document. Used by the test harness.
func (r *MongoContactRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("error deleting contacts: %w", err)
	}
	return nil
}
