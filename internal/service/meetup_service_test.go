package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/repository"
	"github.com/meetapp/meetapp-backend/internal/service"
	"gorm.io/gorm"
)

func newMeetupService(db *gorm.DB) *service.MeetupService {
	return service.NewMeetupService(
		repository.NewMeetupRepository(db),
		repository.NewFileRepository(db),
	)
}

func TestCreateMeetup(t *testing.T) {
	db := newTestDB(t)
	svc := newMeetupService(db)

	owner := seedUser(t, db, "A", "a@example.com")

	meetup, err := svc.CreateMeetup(owner.ID, models.MeetupRequest{
		Title:    "Go Meetup",
		Location: "Berlin",
		Date:     time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
	if meetup.ID == 0 || meetup.UserID != owner.ID {
		t.Errorf("unexpected meetup %+v", meetup)
	}
}

func TestCreateMeetupPastDate(t *testing.T) {
	db := newTestDB(t)
	svc := newMeetupService(db)

	owner := seedUser(t, db, "A", "a@example.com")

	_, err := svc.CreateMeetup(owner.ID, models.MeetupRequest{
		Title: "Too late",
		Date:  time.Now().Add(-time.Hour),
	})
	if !errors.Is(err, service.ErrMeetupDateInPast) {
		t.Errorf("expected ErrMeetupDateInPast, got %v", err)
	}
}

func TestCreateMeetupMissingBanner(t *testing.T) {
	db := newTestDB(t)
	svc := newMeetupService(db)

	owner := seedUser(t, db, "A", "a@example.com")
	missing := uint(42)

	_, err := svc.CreateMeetup(owner.ID, models.MeetupRequest{
		Title:  "No banner",
		Date:   time.Now().Add(24 * time.Hour),
		FileID: &missing,
	})
	if !errors.Is(err, service.ErrBannerNotFound) {
		t.Errorf("expected ErrBannerNotFound, got %v", err)
	}
}

func TestUpdateMeetupOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newMeetupService(db)

	owner := seedUser(t, db, "A", "a@example.com")
	other := seedUser(t, db, "B", "b@example.com")
	meetup := seedMeetup(t, db, owner.ID, "Go Meetup", time.Now().Add(24*time.Hour))

	title := "Hijacked"
	_, err := svc.UpdateMeetup(meetup.ID, other.ID, models.UpdateMeetupRequest{Title: &title})
	if !errors.Is(err, service.ErrNotMeetupOwner) {
		t.Errorf("expected ErrNotMeetupOwner, got %v", err)
	}
}

func TestUpdateMeetupSyncsAttendanceDates(t *testing.T) {
	db := newTestDB(t)
	meetupSvc := newMeetupService(db)
	attendanceSvc := newAttendanceService(db)

	owner := seedUser(t, db, "A", "a@example.com")
	attendee := seedUser(t, db, "B", "b@example.com")
	meetup := seedMeetup(t, db, owner.ID, "Go Meetup", time.Now().Add(24*time.Hour))

	attendance, err := attendanceSvc.Register(attendee.ID, meetup.ID)
	if err != nil {
		t.Fatal(err)
	}

	newDate := time.Now().Add(72 * time.Hour).Truncate(time.Second)
	if _, err := meetupSvc.UpdateMeetup(meetup.ID, owner.ID, models.UpdateMeetupRequest{Date: &newDate}); err != nil {
		t.Fatal(err)
	}

	var updated models.Attendance
	if err := db.First(&updated, attendance.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !updated.MeetupDate.Equal(newDate) {
		t.Errorf("expected denormalized date %v, got %v", newDate, updated.MeetupDate)
	}
}

func TestUpdateMeetupDateCollisionRollsBack(t *testing.T) {
	db := newTestDB(t)
	meetupSvc := newMeetupService(db)
	attendanceSvc := newAttendanceService(db)

	owner := seedUser(t, db, "A", "a@example.com")
	attendee := seedUser(t, db, "B", "b@example.com")
	firstDate := time.Date(2099, 1, 1, 18, 0, 0, 0, time.UTC)
	secondDate := time.Date(2099, 1, 2, 18, 0, 0, 0, time.UTC)
	first := seedMeetup(t, db, owner.ID, "First", firstDate)
	second := seedMeetup(t, db, owner.ID, "Second", secondDate)

	if _, err := attendanceSvc.Register(attendee.ID, first.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := attendanceSvc.Register(attendee.ID, second.ID); err != nil {
		t.Fatal(err)
	}

	// Moving Second onto First's instant collides with the attendee's
	// (user_id, meetup_date) index while the copies are rewritten.
	_, err := meetupSvc.UpdateMeetup(second.ID, owner.ID, models.UpdateMeetupRequest{Date: &firstDate})
	if err == nil {
		t.Fatal("expected the date change to fail")
	}
	if apperr.KindOf(err) != apperr.Conflict {
		t.Errorf("expected a Conflict error, got %v", err)
	}

	// The whole update rolled back: meetup date and denormalized copy agree.
	var reloaded models.Meetup
	if err := db.First(&reloaded, second.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !reloaded.Date.Equal(secondDate) {
		t.Errorf("expected meetup date unchanged at %v, got %v", secondDate, reloaded.Date)
	}
	var copies []models.Attendance
	if err := db.Where("meetup_id = ?", second.ID).Find(&copies).Error; err != nil {
		t.Fatal(err)
	}
	for _, row := range copies {
		if !row.MeetupDate.Equal(secondDate) {
			t.Errorf("expected denormalized date %v, got %v", secondDate, row.MeetupDate)
		}
	}
}

func TestGetMeetupStorageErrorPropagates(t *testing.T) {
	db := newTestDB(t)
	svc := newMeetupService(db)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatal(err)
	}

	_, err = svc.GetMeetup(1, 1)
	if err == nil {
		t.Fatal("expected an error from the closed database")
	}
	if errors.Is(err, service.ErrMeetupNotFound) {
		t.Errorf("storage failure reported as ErrMeetupNotFound: %v", err)
	}
}

func TestDeletePastMeetup(t *testing.T) {
	db := newTestDB(t)
	svc := newMeetupService(db)

	owner := seedUser(t, db, "A", "a@example.com")
	meetup := seedMeetup(t, db, owner.ID, "Gone", time.Now().Add(-time.Hour))

	err := svc.DeleteMeetup(meetup.ID, owner.ID)
	if !errors.Is(err, service.ErrMeetupOver) {
		t.Errorf("expected ErrMeetupOver, got %v", err)
	}
}
