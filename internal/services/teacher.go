package services

import (
	"context"
	"time"

	"github.com/edunotice/edunotice-backend/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// TeacherService manages teacher accounts and answers the role check that
// gates every announcement mutation.
type TeacherService struct {
	store TeacherStore
}

func NewTeacherService(store TeacherStore) *TeacherService {
	return &TeacherService{store: store}
}

// RequireAuth resolves a caller-supplied username to an account and checks
// its role. The username is taken on trust; no credential is verified.
// Returns ErrUnauthorized when no account matches and ErrForbidden when the
// account's role is neither admin nor teacher.
func (s *TeacherService) RequireAuth(ctx context.Context, username string) (*models.Teacher, error) {
	teacher, err := s.store.FindOne(ctx, username)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if teacher.Role != "admin" && teacher.Role != "teacher" {
		return nil, ErrForbidden
	}

	return teacher, nil
}

// CreateTeacher stores a new account keyed by username, hashing the
// password with bcrypt. An empty role defaults to "teacher".
func (s *TeacherService) CreateTeacher(ctx context.Context, teacher *models.Teacher, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if teacher.Role == "" {
		teacher.Role = "teacher"
	}
	teacher.HPassword = string(hash)
	teacher.CreatedAt = time.Now()

	return s.store.InsertOne(ctx, teacher)
}

// Login verifies a username/password pair against the stored bcrypt hash.
// A missing account and a wrong password both come back as ErrUnauthorized
// so callers cannot probe which usernames exist.
func (s *TeacherService) Login(ctx context.Context, username, password string) (*models.Teacher, error) {
	teacher, err := s.store.FindOne(ctx, username)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.HPassword), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}

	return teacher, nil
}

// TeacherList returns every account. Password hashes are excluded at the
// store level and never reach the wire.
func (s *TeacherService) TeacherList(ctx context.Context) ([]models.Teacher, error) {
	return s.store.Find(ctx)
}
