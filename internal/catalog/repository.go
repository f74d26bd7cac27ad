package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	ListServices(ctx context.Context) ([]Service, error)
	ListSpecializedServices(ctx context.Context) ([]SpecializedService, error)
	ListProjects(ctx context.Context) ([]Project, error)
	ReplaceAll(ctx context.Context, c *Catalog) error
}

type MongoRepository struct {
	services    *mongo.Collection
	specialized *mongo.Collection
	projects    *mongo.Collection
}

func NewRepository(services, specialized, projects *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		services:    services,
		specialized: specialized,
		projects:    projects,
	}
}

func sortedFind() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "title", Value: 1},
	})
}

func (r *MongoRepository) ListServices(ctx context.Context) ([]Service, error) {
	cursor, err := r.services.Find(ctx, bson.M{}, sortedFind())
	if err != nil {
		return nil, err
	}
	items := make([]Service, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) ListSpecializedServices(ctx context.Context) ([]SpecializedService, error) {
	cursor, err := r.specialized.Find(ctx, bson.M{}, sortedFind())
	if err != nil {
		return nil, err
	}
	items := make([]SpecializedService, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) ListProjects(ctx context.Context) ([]Project, error) {
	cursor, err := r.projects.Find(ctx, bson.M{}, sortedFind())
	if err != nil {
		return nil, err
	}
	items := make([]Project, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceAll swaps the stored collections for the contents of c.
func (r *MongoRepository) ReplaceAll(ctx context.Context, c *Catalog) error {
	services := make([]interface{}, 0, len(c.services))
	for i, item := range c.services {
		item.SortOrder = i
		services = append(services, item)
	}
	specialized := make([]interface{}, 0, len(c.specialized))
	for i, item := range c.specialized {
		item.SortOrder = i
		specialized = append(specialized, item)
	}
	projects := make([]interface{}, 0, len(c.projects))
	for i, item := range c.projects {
		item.SortOrder = i
		projects = append(projects, item)
	}

	if err := replaceCollection(ctx, r.services, services); err != nil {
		return err
	}
	if err := replaceCollection(ctx, r.specialized, specialized); err != nil {
		return err
	}
	return replaceCollection(ctx, r.projects, projects)
}

func replaceCollection(ctx context.Context, col *mongo.Collection, docs []interface{}) error {
	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}
