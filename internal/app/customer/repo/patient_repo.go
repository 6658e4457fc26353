package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/models/m_patient"
)

// PatientRepo implements PatientRepository for MongoDB.
type PatientRepo struct {
	coll *mongo.Collection
}

// NewPatientRepo creates a new PatientRepo.
func NewPatientRepo(db *mongo.Database) contracts.PatientRepository {
	return &PatientRepo{coll: db.Collection(m_patient.CollectionName)}
}

func (r *PatientRepo) Insert(ctx context.Context, p *domain.Patient) (string, error) {
	res, err := r.coll.InsertOne(ctx, patientToData(p))
	if err != nil {
		return "", fmt.Errorf("failed to insert patient: %w", err)
	}
	return insertedHex(res), nil
}

func (r *PatientRepo) List(ctx context.Context) ([]*contracts.PatientDTO, error) {
	opts := options.Find().SetSort(bson.D{{Key: m_patient.CreatedAt, Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	var rows []m_patient.Data
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}

	out := make([]*contracts.PatientDTO, 0, len(rows))
	for i := range rows {
		out = append(out, patientToDTO(&rows[i]))
	}
	return out, nil
}

func (r *PatientRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*contracts.PatientDTO, error) {
	var data m_patient.Data
	if err := r.coll.FindOne(ctx, bson.D{{Key: m_patient.ID, Value: id}}).Decode(&data); err != nil {
		if errIsNoDocuments(err) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to read patient: %w", err)
	}
	return patientToDTO(&data), nil
}

func (r *PatientRepo) Update(ctx context.Context, id primitive.ObjectID, p *domain.Patient) error {
	data := patientToData(p)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: m_patient.Name, Value: data.Name},
		{Key: m_patient.Email, Value: data.Email},
		{Key: m_patient.Phone, Value: data.Phone},
		{Key: m_patient.Age, Value: data.Age},
		{Key: m_patient.Gender, Value: data.Gender},
		{Key: m_patient.Prescription, Value: data.Prescription},
		{Key: m_patient.Notes, Value: data.Notes},
	}}}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: m_patient.ID, Value: id}}, update)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: m_patient.ID, Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func patientToData(p *domain.Patient) *m_patient.Data {
	eye := func(e domain.Eye) m_patient.EyeData {
		return m_patient.EyeData{Sphere: e.Sphere, Cylinder: e.Cylinder, Axis: e.Axis, Add: e.Add}
	}
	return &m_patient.Data{
		Name:   p.Name,
		Email:  p.Email,
		Phone:  p.Phone,
		Age:    p.Age,
		Gender: p.Gender,
		Prescription: m_patient.PrescriptionData{
			RightEye: eye(p.Prescription.RightEye),
			LeftEye:  eye(p.Prescription.LeftEye),
		},
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

func patientToDTO(d *m_patient.Data) *contracts.PatientDTO {
	eye := func(e m_patient.EyeData) contracts.EyeDTO {
		return contracts.EyeDTO{Sphere: e.Sphere, Cylinder: e.Cylinder, Axis: e.Axis, Add: e.Add}
	}
	return &contracts.PatientDTO{
		ID:     d.ID.Hex(),
		Name:   d.Name,
		Email:  d.Email,
		Phone:  d.Phone,
		Age:    d.Age,
		Gender: d.Gender,
		Prescription: contracts.PrescriptionDTO{
			RightEye: eye(d.Prescription.RightEye),
			LeftEye:  eye(d.Prescription.LeftEye),
		},
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}
}
