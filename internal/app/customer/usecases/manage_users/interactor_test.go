package manage_users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/light-bringer/optics-service/internal/app/customer/contracts"
	"github.com/light-bringer/optics-service/internal/app/customer/domain"
	"github.com/light-bringer/optics-service/internal/pkg/ids"
)

type fakeRepo struct {
	roles    map[primitive.ObjectID]domain.Role
	vouchers map[primitive.ObjectID]int
	profiles map[primitive.ObjectID]*domain.Profile
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		roles:    map[primitive.ObjectID]domain.Role{},
		vouchers: map[primitive.ObjectID]int{},
		profiles: map[primitive.ObjectID]*domain.Profile{},
	}
}

func (f *fakeRepo) Register(context.Context, *domain.User) (string, error) { return "", nil }

func (f *fakeRepo) Search(context.Context, string) ([]*contracts.UserDTO, error) { return nil, nil }

func (f *fakeRepo) FindByEmail(context.Context, string) (*contracts.UserDTO, error) { return nil, nil }

func (f *fakeRepo) SetRole(_ context.Context, id primitive.ObjectID, r domain.Role) error {
	f.roles[id] = r
	return nil
}

func (f *fakeRepo) SetVoucher(_ context.Context, id primitive.ObjectID, v int) error {
	f.vouchers[id] = v
	return nil
}

func (f *fakeRepo) UpsertProfile(_ context.Context, id primitive.ObjectID, p *domain.Profile) error {
	f.profiles[id] = p
	return nil
}

func TestSetRole(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInteractor(repo)
	id := primitive.NewObjectID()

	require.NoError(t, uc.SetRole(context.Background(), id.Hex(), "Admin"))
	assert.Equal(t, domain.RoleAdmin, repo.roles[id])

	assert.ErrorIs(t, uc.SetRole(context.Background(), id.Hex(), "superuser"), domain.ErrInvalidRole)
	assert.ErrorIs(t, uc.SetRole(context.Background(), "nope", "User"), ids.ErrInvalidID)
	assert.Len(t, repo.roles, 1)
}

func TestSetVoucher(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInteractor(repo)
	id := primitive.NewObjectID()

	require.NoError(t, uc.SetVoucher(context.Background(), id.Hex(), 15))
	assert.Equal(t, 15, repo.vouchers[id])

	assert.ErrorIs(t, uc.SetVoucher(context.Background(), id.Hex(), 150), domain.ErrInvalidVoucher)
	assert.Equal(t, 15, repo.vouchers[id])
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInteractor(repo)
	id := primitive.NewObjectID()

	p := &domain.Profile{Name: "Ana", Mobile: "01700000000"}
	require.NoError(t, uc.UpdateProfile(context.Background(), id.Hex(), p))
	assert.Same(t, p, repo.profiles[id])

	assert.ErrorIs(t, uc.UpdateProfile(context.Background(), "", p), ids.ErrInvalidID)
}
