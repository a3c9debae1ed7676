package service

import (
	"context"
	"time"

	"anoa.com/nftmarketplace/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Count(context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeAssigner struct {
	wallet *entity.PlatformWallet
	err    error
}

func (f *fakeAssigner) AssignWallet(context.Context, uuid.UUID) (*entity.PlatformWallet, error) {
	return f.wallet, f.err
}

type fakeParticipations struct {
	rows []entity.ExhibitionParticipation
}

func (f *fakeParticipations) FindParticipationsByUser(context.Context, uuid.UUID) ([]entity.ExhibitionParticipation, error) {
	return f.rows, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
