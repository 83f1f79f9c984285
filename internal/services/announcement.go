package services

import (
	"context"
	"time"

	"github.com/edunotice/edunotice-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// AnnouncementService implements the announcement lifecycle: listing the
// currently-active ones and creating, updating, and deleting them. Every
// mutation first passes the teacher-role check; the list is public.
type AnnouncementService struct {
	store    AnnouncementStore
	teachers *TeacherService
	now      func() time.Time
}

func NewAnnouncementService(store AnnouncementStore, teachers *TeacherService) *AnnouncementService {
	return &AnnouncementService{
		store:    store,
		teachers: teachers,
		now:      time.Now,
	}
}

// ListActive returns every announcement whose expiration_date is on or
// after today's UTC date. The comparison is done by the store on the raw
// YYYY-MM-DD strings. Announcements with a start_date in the future are
// still included; only expiration is filtered.
func (s *AnnouncementService) ListActive(ctx context.Context) ([]models.Announcement, error) {
	today := s.now().UTC().Format(models.DateLayout)

	announcements, err := s.store.Find(ctx, bson.M{"expiration_date": bson.M{"$gte": today}})
	if err != nil {
		return nil, err
	}

	if announcements == nil {
		announcements = []models.Announcement{}
	}
	return announcements, nil
}

// Add creates an announcement and returns the id the store assigned.
// Dates are stored as given; nothing checks their format or that the
// start precedes the expiration.
func (s *AnnouncementService) Add(ctx context.Context, identity, message, expirationDate string, startDate *string) (string, error) {
	if _, err := s.teachers.RequireAuth(ctx, identity); err != nil {
		return "", err
	}

	now := s.now().UTC().Format(models.TimestampLayout)
	announcement := &models.Announcement{
		Message:        message,
		StartDate:      startDate,
		ExpirationDate: expirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return s.store.InsertOne(ctx, announcement)
}

// Update merges the non-nil patch fields into the stored announcement.
// updated_at is refreshed even when the patch is otherwise empty;
// created_at is never touched. Returns ErrNotFound when no announcement
// has the given id.
func (s *AnnouncementService) Update(ctx context.Context, id, identity string, patch models.AnnouncementPatch) error {
	if _, err := s.teachers.RequireAuth(ctx, identity); err != nil {
		return err
	}

	fields := bson.M{"updated_at": s.now().UTC().Format(models.TimestampLayout)}
	if patch.Message != nil {
		fields["message"] = *patch.Message
	}
	if patch.ExpirationDate != nil {
		fields["expiration_date"] = *patch.ExpirationDate
	}
	if patch.StartDate != nil {
		fields["start_date"] = *patch.StartDate
	}

	matched, err := s.store.UpdateOne(ctx, id, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the announcement permanently. Deleting an id that no
// longer exists returns ErrNotFound, so a repeated delete of the same id
// succeeds once and then fails.
func (s *AnnouncementService) Delete(ctx context.Context, id, identity string) error {
	if _, err := s.teachers.RequireAuth(ctx, identity); err != nil {
		return err
	}

	deleted, err := s.store.DeleteOne(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
