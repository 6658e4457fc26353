package register_user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
)

// fakeRepo mimics the single-upsert registration keyed by email.
type fakeRepo struct {
	byEmail map[string]string
}

func (f *fakeRepo) Register(_ context.Context, u *domain.User) (string, error) {
	if id, ok := f.byEmail[u.Email]; ok {
		return "", domain.NewUserConflict(id, u.Email)
	}
	id := primitive.NewObjectID().Hex()
	f.byEmail[u.Email] = id
	return id, nil
}

func (f *fakeRepo) Search(context.Context, string) ([]*contracts.UserDTO, error) { return nil, nil }

func (f *fakeRepo) FindByEmail(context.Context, string) (*contracts.UserDTO, error) { return nil, nil }

func (f *fakeRepo) SetRole(context.Context, primitive.ObjectID, domain.Role) error { return nil }

func (f *fakeRepo) SetVoucher(context.Context, primitive.ObjectID, int) error { return nil }

func (f *fakeRepo) UpsertProfile(context.Context, primitive.ObjectID, *domain.Profile) error {
	return nil
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{byEmail: map[string]string{}}
	uc := NewInteractor(repo)

	id, err := uc.Execute(ctx, &Request{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = uc.Execute(ctx, &Request{Email: " ana@example.com", Name: "Ana again"})
	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, id, conflict.ID)
	assert.Equal(t, "ana@example.com", conflict.Value)
	assert.Len(t, repo.byEmail, 1)
}

func TestRegisterUser_Validation(t *testing.T) {
	repo := &fakeRepo{byEmail: map[string]string{}}
	uc := NewInteractor(repo)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, domain.ErrEmptyEmail)

	_, err = uc.Execute(context.Background(), &Request{Email: "a@b.c", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Empty(t, repo.byEmail)
}
