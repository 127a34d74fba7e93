package converter

import (
	"testing"
	"time"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestConsultationRequestToEntity(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Nouakchott")
	require.NoError(t, err)

	employeID := uuid.New()
	cout := decimal.RequireFromString("150.50")
	req := &dto.ConsultationRequest{
		EmployeID: employeID.String(),
		Date:      "2024-03-01",
		Lieu:      "Port",
		Motif:     "Contrôle",
		Cout:      &cout,
		Repos: dto.RestGrantRequest{
			Accorde:   true,
			Duree:     intPtr(2),
			DateDebut: strPtr("2024-03-01"),
			DateFin:   strPtr("2024-03-03"),
			Motif:     "Fièvre",
		},
	}

	var c entity.Consultation
	require.NoError(t, ConsultationRequestToEntity(req, &c, loc))

	assert.Equal(t, employeID, c.EmployeID)
	assert.Equal(t, uuid.Nil, c.MedecinID)
	assert.Equal(t, entity.LieuPort, c.Lieu)
	assert.True(t, c.Cout.Valid)
	assert.True(t, cout.Equal(c.Cout.Decimal))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), c.Date)
	require.NotNil(t, c.Repos.DateFin)
	assert.Equal(t, "2024-03-03", FormatDate(*c.Repos.DateFin, loc))

	resp := ConsultationToResponse(&c, loc)
	assert.Equal(t, "2024-03-01", resp.Date)
	assert.Equal(t, "2024-03-01", *resp.Repos.DateDebut)
	assert.True(t, cout.Equal(*resp.Cout))
}

func TestConsultationRequestWithoutCost(t *testing.T) {
	var c entity.Consultation
	c.Cout = decimal.NewNullDecimal(decimal.NewFromInt(10))

	require.NoError(t, ConsultationRequestToEntity(&dto.ConsultationRequest{Date: "2024-01-02"}, &c, nil))

	assert.False(t, c.Cout.Valid)
	assert.Nil(t, ConsultationToResponse(&c, nil).Cout)
}

func TestConsultationRequestBadDate(t *testing.T) {
	var c entity.Consultation
	assert.Error(t, ConsultationRequestToEntity(&dto.ConsultationRequest{Date: "01/02/2024"}, &c, nil))
}

func TestSessionToResponse(t *testing.T) {
	s := query.NewSession("doctors", 20, query.KeepPage)
	s.SetSearchTerm("ka")
	s.SetFacet("specialite", "Cardiologie")

	resp := SessionToResponse(s)

	assert.Equal(t, "ka", resp.SearchTerm)
	assert.Equal(t, map[string]string{"specialite": "Cardiologie"}, resp.Facets)
	assert.Equal(t, 1, resp.ActiveFilters)
	assert.Equal(t, "keep_page", resp.Policy)
}

func TestRolesToResponse(t *testing.T) {
	assert.Equal(t, []string{"user", "admin"}, RolesToResponse(entity.OfferableRoles(entity.RoleAdmin)).Roles)
	assert.Equal(t, []string{"user"}, RolesToResponse(entity.OfferableRoles(entity.RoleUser)).Roles)
}

func TestAuditLogWithoutUser(t *testing.T) {
	resp := AuditLogToResponse(&entity.AuditLog{ID: 7, Action: entity.AuditActionUserLogin})

	assert.Nil(t, resp.User)
	assert.Equal(t, int64(7), resp.ID)
}
