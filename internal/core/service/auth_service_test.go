package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

func portsRegisterInput(email string, role domain.Role) ports.RegisterInput {
	return ports.RegisterInput{
		Username:        "tester",
		Email:           email,
		Password:        "pass123",
		ConfirmPassword: "pass123",
		Role:            role,
	}
}

// stubUserRepo is an in-memory ports.UserRepository shared by the service
// tests in this package.
type stubUserRepo struct {
	users   map[string]*domain.User
	nextID  int
	failAll error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	r.nextID++
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *cloneUser(u))
	}
	return users, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.failAll != nil {
		return r.failAll
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if r.failAll != nil {
		return r.failAll
	}
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func registerUser(t *testing.T, svc *AuthService, email string, role domain.Role) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), portsRegisterInput(email, role))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	user := registerUser(t, svc, "alice@example.com", domain.RoleAdmin)

	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_DefaultsRoleToEmployee(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	user := registerUser(t, svc, "bob@example.com", "")
	if user.Role != domain.RoleEmployee {
		t.Fatalf("expected employee role, got %s", user.Role)
	}
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	in := portsRegisterInput("carol@example.com", domain.RoleEmployee)
	in.ConfirmPassword = "different"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no user created")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	in := portsRegisterInput("dave@example.com", "superuser")
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmailDoesNotMutate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	registerUser(t, svc, "e@x.com", domain.RoleEmployee)
	if len(repo.users) != 1 {
		t.Fatalf("expected one user, got %d", len(repo.users))
	}

	if _, err := svc.Register(context.Background(), portsRegisterInput("e@x.com", domain.RoleEmployee)); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate registration mutated the store: %d users", len(repo.users))
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	created := registerUser(t, svc, "frank@example.com", domain.RoleEmployee)

	user, err := svc.Authenticate(context.Background(), "frank@example.com", "pass123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, user.ID)
	}
}

func TestAuthService_Authenticate_BadPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	registerUser(t, svc, "grace@example.com", domain.RoleEmployee)

	if _, err := svc.Authenticate(context.Background(), "grace@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Authenticate_RepositoryError(t *testing.T) {
	repo := newStubUserRepo()
	repo.failAll = errors.New("connection reset")
	svc := NewAuthService(repo)

	_, err := svc.Authenticate(context.Background(), "x@example.com", "pass")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected underlying system error, got %v", err)
	}
}
