package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/models/m_user"
	"github.com/light-bringer/optics-service/internal/pkg/query"
)

// UserRepo implements UserRepository for MongoDB.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *mongo.Database) contracts.UserRepository {
	return &UserRepo{coll: db.Collection(m_user.CollectionName)}
}

// Register inserts the user keyed by email with a single upsert.
// The candidate _id is chosen here so the returned document tells
// whether this call created it or found an existing one.
func (r *UserRepo) Register(ctx context.Context, u *domain.User) (string, error) {
	candidate := primitive.NewObjectID()
	filter := bson.D{{Key: m_user.Email, Value: u.Email}}

	got, err := upsertOnce(ctx, r.coll, filter, registerDoc(candidate, u))
	if err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}
	if got != candidate {
		return "", domain.NewUserConflict(got.Hex(), u.Email)
	}
	return candidate.Hex(), nil
}

func (r *UserRepo) Search(ctx context.Context, text string) ([]*contracts.UserDTO, error) {
	filter := bson.D{}
	if text != "" {
		filter = query.ContainsFold(m_user.Name, text).Filter()
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	var rows []m_user.Data
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	out := make([]*contracts.UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, userToDTO(&rows[i]))
	}
	return out, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*contracts.UserDTO, error) {
	var data m_user.Data
	if err := r.coll.FindOne(ctx, bson.D{{Key: m_user.Email, Value: email}}).Decode(&data); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	return userToDTO(&data), nil
}

func (r *UserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error {
	return r.set(ctx, id, bson.D{{Key: m_user.Role, Value: string(role)}})
}

func (r *UserRepo) SetVoucher(ctx context.Context, id primitive.ObjectID, voucher int) error {
	return r.set(ctx, id, bson.D{{Key: m_user.DiscountVoucher, Value: voucher}})
}

func (r *UserRepo) UpsertProfile(ctx context.Context, id primitive.ObjectID, p *domain.Profile) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: m_user.Name, Value: p.Name},
		{Key: m_user.Mobile, Value: p.Mobile},
		{Key: m_user.Image, Value: p.Image},
	}}}
	_, err := r.coll.UpdateOne(ctx, bson.D{{Key: m_user.ID, Value: id}}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (r *UserRepo) set(ctx context.Context, id primitive.ObjectID, fields bson.D) error {
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: m_user.ID, Value: id}}, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// registerDoc builds the $setOnInsert update for a registration.
// The email comes from the upsert filter.
func registerDoc(id primitive.ObjectID, u *domain.User) bson.D {
	fields := bson.D{
		{Key: m_user.ID, Value: id},
		{Key: m_user.Role, Value: string(u.Role)},
	}
	for _, f := range []struct{ key, value string }{
		{m_user.Name, u.Name},
		{m_user.Image, u.Image},
		{m_user.Mobile, u.Mobile},
	} {
		if f.value != "" {
			fields = append(fields, bson.E{Key: f.key, Value: f.value})
		}
	}
	return bson.D{{Key: "$setOnInsert", Value: fields}}
}

func userToDTO(d *m_user.Data) *contracts.UserDTO {
	return &contracts.UserDTO{
		ID:              d.ID.Hex(),
		Email:           d.Email,
		Name:            d.Name,
		Role:            d.Role,
		Image:           d.Image,
		Mobile:          d.Mobile,
		DiscountVoucher: d.DiscountVoucher,
	}
}
