package mongostore

import (
	"context"
	"time"

	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const auditLogSequence = "audit_logs"

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// auditLogRepository numbers logs from a counters document so that ids stay
// int64 like the relational backend.
type auditLogRepository struct {
	c        collection[auditLogDoc]
	counters *mongo.Collection
	users    *userRepository
}

var _ domainRepo.AuditLogRepository = (*auditLogRepository)(nil)

func (r *auditLogRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter counterDoc
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": auditLogSequence},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return counter.Seq, nil
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	log.ID = id
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	return r.c.insert(ctx, newAuditLogDoc(log))
}

func (r *auditLogRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	total, err := r.c.count(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	docs, err := r.c.list(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}

	logs, err := convertAll(docs, auditLogDoc.toEntity)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachUsers(ctx, logs); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	doc, err := r.c.findOne(ctx, bson.M{"_id": id})
	if err != nil || doc == nil {
		return nil, err
	}
	log, err := doc.toEntity()
	if err != nil {
		return nil, apperror.Storage(err)
	}
	logs := []entity.AuditLog{log}
	if err := r.attachUsers(ctx, logs); err != nil {
		return nil, err
	}
	return &logs[0], nil
}

// attachUsers fills AuditLog.User the way the relational preload does.
func (r *auditLogRepository) attachUsers(ctx context.Context, logs []entity.AuditLog) error {
	ids := make([]string, 0, len(logs))
	for _, l := range logs {
		if l.UserID != nil {
			ids = append(ids, l.UserID.String())
		}
	}
	if len(ids) == 0 {
		return nil
	}

	docs, err := r.users.c.list(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	users, err := convertAll(docs, userDoc.toEntity)
	if err != nil {
		return err
	}

	byID := make(map[string]*entity.User, len(users))
	for i := range users {
		byID[users[i].ID.String()] = &users[i]
	}
	for i := range logs {
		if logs[i].UserID != nil {
			logs[i].User = byID[logs[i].UserID.String()]
		}
	}
	return nil
}
