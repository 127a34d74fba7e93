package mongostore

import (
	"errors"
	"testing"
	"time"

	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConsultationDocumentKeepsWireNames(t *testing.T) {
	duree := 2
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	c := &entity.Consultation{
		ID:         uuid.New(),
		EmployeID:  uuid.New(),
		MedecinID:  uuid.New(),
		MedecinNom: "Randria Paul",
		Date:       time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		Lieu:       entity.LieuCabinet,
		Cout:       decimal.NewNullDecimal(decimal.RequireFromString("125.50")),
		Repos:      entity.RestGrant{Accorde: true, Duree: &duree, DateDebut: &start, DateFin: &end, Motif: "grippe"},
	}

	doc, err := newConsultationDoc(c)
	require.NoError(t, err)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, c.ID.String(), fields["_id"])
	assert.Equal(t, "Randria Paul", fields["medicinNom"])
	assert.Contains(t, fields, "repos")

	var decoded consultationDoc
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	back, err := decoded.toEntity()
	require.NoError(t, err)

	assert.Equal(t, c.ID, back.ID)
	assert.Equal(t, c.EmployeID, back.EmployeID)
	assert.True(t, back.Cout.Valid)
	assert.True(t, decimal.RequireFromString("125.50").Equal(back.Cout.Decimal))
	require.NotNil(t, back.Repos.Duree)
	assert.Equal(t, 2, *back.Repos.Duree)
	assert.Equal(t, start, back.Repos.DateDebut.UTC())
}

func TestConsultationDocumentWithoutCost(t *testing.T) {
	doc, err := newConsultationDoc(&entity.Consultation{ID: uuid.New(), EmployeID: uuid.New(), MedecinID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, doc.Cout)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "cout")

	back, err := doc.toEntity()
	require.NoError(t, err)
	assert.False(t, back.Cout.Valid)
}

func TestDocumentRejectsMalformedID(t *testing.T) {
	_, err := employeeDoc{ID: "not-a-uuid"}.toEntity()
	assert.Error(t, err)

	_, err = convertAll([]doctorDoc{{ID: "broken"}}, doctorDoc.toEntity)
	assert.ErrorIs(t, err, apperror.ErrStorageFailure)
}

func TestAuditLogDocumentUserID(t *testing.T) {
	userID := uuid.New()
	doc := newAuditLogDoc(&entity.AuditLog{ID: 7, UserID: &userID, Action: entity.AuditActionUserLogin})

	assert.Equal(t, userID.String(), doc.UserID)

	back, err := doc.toEntity()
	require.NoError(t, err)
	require.NotNil(t, back.UserID)
	assert.Equal(t, userID, *back.UserID)

	anonymous, err := newAuditLogDoc(&entity.AuditLog{ID: 8, Action: entity.AuditActionReportGenerate}).toEntity()
	require.NoError(t, err)
	assert.Nil(t, anonymous.UserID)
}

func TestCollectionTranslatesDuplicateKey(t *testing.T) {
	c := collection[employeeDoc]{uniqueField: "matricule"}
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}

	err := c.translate(dup)
	assert.ErrorIs(t, err, &apperror.Error{Kind: apperror.KindDuplicateKey, Field: "matricule"})

	err = c.translate(errors.New("socket closed"))
	assert.ErrorIs(t, err, apperror.ErrStorageFailure)

	assert.NoError(t, c.translate(nil))
}

func TestStampKeepsCreationTime(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created

	stamp(&created, &updated)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), created)
	assert.True(t, updated.After(created))
}
