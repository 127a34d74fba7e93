// Package mongostore is the MongoDB record store. It mirrors the relational
// repositories document for document, keeping uuid string ids.
package mongostore

import (
	"context"
	"fmt"

	domainRepo "clinic-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	employeesCollection     = "employees"
	doctorsCollection       = "doctors"
	consultationsCollection = "consultations"
	usersCollection         = "users"
	credentialsCollection   = "credentials"
	auditLogsCollection     = "audit_logs"
	countersCollection      = "counters"
)

func NewStore(db *mongo.Database) *domainRepo.Store {
	users := &userRepository{c: collection[userDoc]{coll: db.Collection(usersCollection), uniqueField: "email"}}

	return &domainRepo.Store{
		Employees: &employeeRepository{c: collection[employeeDoc]{
			coll: db.Collection(employeesCollection), uniqueField: "matricule",
		}},
		Doctors: &doctorRepository{c: collection[doctorDoc]{
			coll: db.Collection(doctorsCollection), uniqueField: "telephone",
		}},
		Consultations: &consultationRepository{c: collection[consultationDoc]{
			coll: db.Collection(consultationsCollection),
		}},
		Users: users,
		Credentials: &credentialRepository{c: collection[credentialDoc]{
			coll: db.Collection(credentialsCollection), uniqueField: "email",
		}},
		AuditLogs: &auditLogRepository{
			c:        collection[auditLogDoc]{coll: db.Collection(auditLogsCollection)},
			counters: db.Collection(countersCollection),
			users:    users,
		},
	}
}

type indexSpec struct {
	collection string
	keys       bson.D
	name       string
	unique     bool
}

var indexes = []indexSpec{
	{employeesCollection, bson.D{{Key: "matricule", Value: 1}}, "idx_employees_matricule", true},
	{doctorsCollection, bson.D{{Key: "telephone", Value: 1}}, "idx_doctors_telephone", true},
	{usersCollection, bson.D{{Key: "email", Value: 1}}, "idx_users_email", true},
	{credentialsCollection, bson.D{{Key: "email", Value: 1}}, "idx_credentials_email", true},
	{consultationsCollection, bson.D{{Key: "employeId", Value: 1}}, "idx_consultations_employe_id", false},
	{consultationsCollection, bson.D{{Key: "medecinId", Value: 1}}, "idx_consultations_medecin_id", false},
	{consultationsCollection, bson.D{{Key: "date", Value: 1}}, "idx_consultations_date", false},
	{auditLogsCollection, bson.D{{Key: "createdAt", Value: -1}}, "idx_audit_logs_created_at", false},
}

// EnsureIndexes creates the unique indexes that back the uniqueness rules.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, spec := range indexes {
		model := mongo.IndexModel{
			Keys:    spec.keys,
			Options: options.Index().SetName(spec.name).SetUnique(spec.unique),
		}
		if _, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index %s: %w", spec.name, err)
		}
	}
	logrus.WithField("count", len(indexes)).Info("MongoDB indexes ensured")
	return nil
}
