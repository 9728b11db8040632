package user

import (
	"errors"
	"testing"

	"opdflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users   map[string]*models.User
	patches map[string]bson.M
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}, patches: map[string]bson.M{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

// GetByID mirrors the Mongo repo contract: nil, nil when no record matches.
func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	if _, ok := r.users[id]; !ok {
		return errors.New("no document matched")
	}
	r.patches[id] = updateDoc
	return nil
}

func TestGetUserByID(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(
		&models.User{ID: "user-1", Name: "Asha Verma", Email: "asha@example.com"},
	)}

	u, err := svc.GetUserByID("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "asha@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestGetUserByIDUnknown(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.GetUserByID("ghost")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateFCMToken(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "user-1"})
	svc := &DefaultUserService{Repo: repo}

	if err := svc.UpdateFCMToken("user-1", "fcm-abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.patches["user-1"]["fcmToken"] != "fcm-abc" {
		t.Fatalf("expected fcmToken patch, got %+v", repo.patches["user-1"])
	}

	err := svc.UpdateFCMToken("user-1", "")
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for empty token, got %v", err)
	}
}
