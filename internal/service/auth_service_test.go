package service_test

import (
	"errors"
	"testing"

	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/repository"
	"github.com/meetapp/meetapp-backend/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB, notifier service.Notifier) *service.AuthService {
	return service.NewAuthService(repository.NewUserRepository(db), notifier, zap.NewNop())
}

type failingNotifier struct{}

func (failingNotifier) SendWelcomeEmail(string, string) error {
	return errors.New("smtp down")
}

func (failingNotifier) NotifyNewAttendee(models.User, models.User, models.Meetup) error {
	return errors.New("smtp down")
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	svc := newAuthService(db, service.NoopNotifier{})

	resp, err := svc.Register(models.RegisterRequest{
		Name:     "B",
		Email:    "b@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" || resp.User.ID == 0 {
		t.Errorf("unexpected auth response %+v", resp)
	}

	login, err := svc.Login(models.LoginRequest{Email: "b@example.com", Password: "secret123"})
	if err != nil {
		t.Fatal(err)
	}
	if login.User.ID != resp.User.ID {
		t.Errorf("expected same user, got %d and %d", login.User.ID, resp.User.ID)
	}
}

func TestRegisterSurvivesNotifierFailure(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	svc := newAuthService(db, failingNotifier{})

	resp, err := svc.Register(models.RegisterRequest{
		Name:     "B",
		Email:    "b@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("expected registration to succeed despite the notifier, got %v", err)
	}
	if resp.User.ID == 0 {
		t.Errorf("unexpected auth response %+v", resp)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	svc := newAuthService(db, service.NoopNotifier{})

	req := models.RegisterRequest{Name: "B", Email: "b@example.com", Password: "secret123"}
	if _, err := svc.Register(req); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Register(req)
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	svc := newAuthService(db, service.NoopNotifier{})

	if _, err := svc.Register(models.RegisterRequest{Name: "B", Email: "b@example.com", Password: "secret123"}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Login(models.LoginRequest{Email: "b@example.com", Password: "wrong"})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginStorageErrorPropagates(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	svc := newAuthService(db, service.NoopNotifier{})

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatal(err)
	}

	_, err = svc.Login(models.LoginRequest{Email: "b@example.com", Password: "secret123"})
	if err == nil {
		t.Fatal("expected an error from the closed database")
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("storage failure reported as ErrInvalidCredentials: %v", err)
	}
}
