package mongostore

import (
	"context"
	"errors"

	"clinic-admin/internal/domain/apperror"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection wraps the CRUD calls shared by every document type. uniqueField
// names the field reported when a unique index rejects a write.
type collection[D any] struct {
	coll        *mongo.Collection
	uniqueField string
}

func (c collection[D]) list(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]D, error) {
	if filter == nil {
		filter = bson.M{}
	}
	if len(opts) == 0 {
		opts = append(opts, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	}

	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	defer cursor.Close(ctx)

	docs := make([]D, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperror.Storage(err)
	}
	return docs, nil
}

// findOne returns nil without error when no document matches.
func (c collection[D]) findOne(ctx context.Context, filter bson.M) (*D, error) {
	var doc D
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}
	return &doc, nil
}

func (c collection[D]) insert(ctx context.Context, doc D) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return c.translate(err)
}

func (c collection[D]) replace(ctx context.Context, id interface{}, doc D) error {
	_, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	return c.translate(err)
}

func (c collection[D]) updateFields(ctx context.Context, id interface{}, fields bson.M) error {
	_, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return c.translate(err)
}

func (c collection[D]) delete(ctx context.Context, id interface{}) (int64, error) {
	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return result.DeletedCount, nil
}

func (c collection[D]) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return n, nil
}

func (c collection[D]) translate(err error) error {
	if err == nil {
		return nil
	}
	if c.uniqueField != "" && mongo.IsDuplicateKeyError(err) {
		return apperror.DuplicateKey(c.uniqueField, c.uniqueField+" already exists")
	}
	return apperror.Storage(err)
}

// convertAll maps documents to entities, failing on the first bad document.
func convertAll[D any, E any](docs []D, convert func(D) (E, error)) ([]E, error) {
	out := make([]E, 0, len(docs))
	for _, doc := range docs {
		e, err := convert(doc)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		out = append(out, e)
	}
	return out, nil
}
