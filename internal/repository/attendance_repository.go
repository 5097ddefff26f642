package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/models"
	"gorm.io/gorm"
)

// Postgres unique_violation.
const uniqueViolationCode = "23505"

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create inserts the attendance. The unique indexes on (user_id, meetup_id)
// and (user_id, meetup_date) are the authoritative guard against concurrent
// double registration; a constraint violation surfaces as a Conflict error,
// same as the service's optimistic pre-checks.
func (r *AttendanceRepository) Create(attendance *models.Attendance) error {
	if err := r.db.Create(attendance).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		if strings.Contains(pgErr.ConstraintName, "user_date") {
			return apperr.Wrap(apperr.Conflict, "You are already attending a meetup for that date", err)
		}
		return apperr.Wrap(apperr.Conflict, "You are already attending the requested meetup", err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Wrap(apperr.Conflict, "You are already attending the requested meetup", err)
	}
	return err
}

// translateDateCollision maps a unique violation raised while rewriting
// denormalized attendance dates to a Conflict the meetup owner can act on.
func translateDateCollision(err error) error {
	var pgErr *pgconn.PgError
	if (errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode) ||
		errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Wrap(apperr.Conflict, "An attendee already has a meetup at that date", err)
	}
	return err
}

func (r *AttendanceRepository) GetByID(id uint) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.db.First(&attendance, id).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *AttendanceRepository) GetByIDWithRelations(id uint) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.db.
		Preload("User").
		Preload("Meetup").
		First(&attendance, id).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *AttendanceRepository) Exists(userID, meetupID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("user_id = ? AND meetup_id = ?", userID, meetupID).
		Count(&count).Error
	return count > 0, err
}

// ExistsForDate reports whether the user already attends a different meetup
// at the exact same instant. Exact-instant equality, not calendar-day.
func (r *AttendanceRepository) ExistsForDate(userID uint, date time.Time, excludeMeetupID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("user_id = ? AND meetup_date = ? AND meetup_id <> ?", userID, date, excludeMeetupID).
		Count(&count).Error
	return count > 0, err
}

// ListByUser returns the user's attendances with meetup, banner and owner
// loaded, ordered by meetup date ascending.
func (r *AttendanceRepository) ListByUser(userID uint) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := r.db.
		Joins("JOIN meetups ON meetups.id = attendances.meetup_id").
		Where("attendances.user_id = ?", userID).
		Order("meetups.date ASC").
		Preload("Meetup").
		Preload("Meetup.User").
		Preload("Meetup.File").
		Find(&attendances).Error
	return attendances, err
}

func (r *AttendanceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Attendance{}, id).Error
}

// SyncMeetupDate rewrites the denormalized date copies after a meetup's date
// changed.
func (r *AttendanceRepository) SyncMeetupDate(meetupID uint, date time.Time) error {
	return r.db.Model(&models.Attendance{}).
		Where("meetup_id = ?", meetupID).
		Update("meetup_date", date).Error
}
