package listing

import (
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/query"
)

// Field paths exposed to search and facets. Consultation paths keep the
// stored wire names, "medicinNom" included.
const (
	FieldID                  query.FieldPath = "id"
	FieldMatricule           query.FieldPath = "matricule"
	FieldNom                 query.FieldPath = "nom"
	FieldPrenom              query.FieldPath = "prenom"
	FieldCivilite            query.FieldPath = "civilite"
	FieldIntituleUnite       query.FieldPath = "intituleUnite"
	FieldEmploiOccupe        query.FieldPath = "emploiOccupe"
	FieldIntituleDepartement query.FieldPath = "intituleDepartement"
	FieldSpecialite          query.FieldPath = "specialite"
	FieldTelephone           query.FieldPath = "telephone"
	FieldRole                query.FieldPath = "role"
	FieldEmail               query.FieldPath = "email"
	FieldEmployeID           query.FieldPath = "employeId"
	FieldEmployeNom          query.FieldPath = "employeNom"
	FieldEmployeMatricule    query.FieldPath = "employeMatricule"
	FieldMedecinID           query.FieldPath = "medecinId"
	FieldMedicinNom          query.FieldPath = "medicinNom"
	FieldDate                query.FieldPath = "date"
	FieldLieu                query.FieldPath = "lieu"
	FieldMotif               query.FieldPath = "motif"
	FieldDiagnostic          query.FieldPath = "diagnostic"
	FieldReposAccorde        query.FieldPath = "repos.accorde"
	FieldReposDuree          query.FieldPath = "repos.duree"
	FieldReposDateDebut      query.FieldPath = "repos.dateDebut"
	FieldReposDateFin        query.FieldPath = "repos.dateFin"
	FieldReposMotif          query.FieldPath = "repos.motif"
)

var EmployeeSchema = query.NewSchema("employees", map[query.FieldPath]query.Accessor[entity.Employee]{
	FieldID:                  func(e *entity.Employee) (string, bool) { return query.ID(e.ID) },
	FieldMatricule:           func(e *entity.Employee) (string, bool) { return query.Text(e.Matricule) },
	FieldNom:                 func(e *entity.Employee) (string, bool) { return query.Text(e.Nom) },
	FieldPrenom:              func(e *entity.Employee) (string, bool) { return query.Text(e.Prenom) },
	FieldCivilite:            func(e *entity.Employee) (string, bool) { return query.Text(string(e.Civilite)) },
	FieldIntituleUnite:       func(e *entity.Employee) (string, bool) { return query.Text(e.IntituleUnite) },
	FieldEmploiOccupe:        func(e *entity.Employee) (string, bool) { return query.Text(e.EmploiOccupe) },
	FieldIntituleDepartement: func(e *entity.Employee) (string, bool) { return query.Text(e.IntituleDepartement) },
})

var DoctorSchema = query.NewSchema("doctors", map[query.FieldPath]query.Accessor[entity.Doctor]{
	FieldID:         func(d *entity.Doctor) (string, bool) { return query.ID(d.ID) },
	FieldNom:        func(d *entity.Doctor) (string, bool) { return query.Text(d.Nom) },
	FieldPrenom:     func(d *entity.Doctor) (string, bool) { return query.Text(d.Prenom) },
	FieldSpecialite: func(d *entity.Doctor) (string, bool) { return query.Text(d.Specialite) },
	FieldTelephone:  func(d *entity.Doctor) (string, bool) { return query.Text(d.Telephone) },
	FieldRole:       func(d *entity.Doctor) (string, bool) { return query.Text(string(d.Role)) },
})

var ConsultationSchema = query.NewSchema("consultations", map[query.FieldPath]query.Accessor[entity.Consultation]{
	FieldID:               func(c *entity.Consultation) (string, bool) { return query.ID(c.ID) },
	FieldEmployeID:        func(c *entity.Consultation) (string, bool) { return query.ID(c.EmployeID) },
	FieldEmployeNom:       func(c *entity.Consultation) (string, bool) { return query.Text(c.EmployeNom) },
	FieldEmployeMatricule: func(c *entity.Consultation) (string, bool) { return query.Text(c.EmployeMatricule) },
	FieldMedecinID:        func(c *entity.Consultation) (string, bool) { return query.ID(c.MedecinID) },
	FieldMedicinNom:       func(c *entity.Consultation) (string, bool) { return query.Text(c.MedecinNom) },
	FieldDate:             func(c *entity.Consultation) (string, bool) { return query.Date(c.Date) },
	FieldLieu:             func(c *entity.Consultation) (string, bool) { return query.Text(string(c.Lieu)) },
	FieldMotif:            func(c *entity.Consultation) (string, bool) { return query.Text(c.Motif) },
	FieldDiagnostic:       func(c *entity.Consultation) (string, bool) { return query.Text(c.Diagnostic) },
	FieldReposAccorde:     func(c *entity.Consultation) (string, bool) { return query.Bool(c.Repos.Accorde) },
	FieldReposDuree:       func(c *entity.Consultation) (string, bool) { return query.OptionalInt(c.Repos.Duree) },
	FieldReposDateDebut:   func(c *entity.Consultation) (string, bool) { return query.OptionalDate(c.Repos.DateDebut) },
	FieldReposDateFin:     func(c *entity.Consultation) (string, bool) { return query.OptionalDate(c.Repos.DateFin) },
	FieldReposMotif:       func(c *entity.Consultation) (string, bool) { return query.Text(c.Repos.Motif) },
})

var UserSchema = query.NewSchema("users", map[query.FieldPath]query.Accessor[entity.User]{
	FieldID:     func(u *entity.User) (string, bool) { return query.ID(u.ID) },
	FieldEmail:  func(u *entity.User) (string, bool) { return query.Text(u.Email) },
	FieldNom:    func(u *entity.User) (string, bool) { return query.Text(u.Nom) },
	FieldPrenom: func(u *entity.User) (string, bool) { return query.Text(u.Prenom) },
	FieldRole:   func(u *entity.User) (string, bool) { return query.Text(string(u.Role)) },
})
