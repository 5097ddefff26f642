package service

import (
	"errors"
	"time"

	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/metric"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMeetupNotFound     = apperr.New(apperr.NotFound, "Meetup not found")
	ErrOwnMeetup          = apperr.New(apperr.Authorization, "You are already attending your own meetup")
	ErrPastMeetup         = apperr.New(apperr.Temporal, "Past meetups are not permitted")
	ErrAlreadyAttending   = apperr.New(apperr.Conflict, "You are already attending the requested meetup")
	ErrDateTaken          = apperr.New(apperr.Conflict, "You are already attending a meetup for that date")
	ErrAttendanceNotFound = apperr.New(apperr.NotFound, "Attendance not found")
	ErrNotAttendanceOwner = apperr.New(apperr.Authorization, "Only authors can cancel attendances")
	ErrPastAttendance     = apperr.New(apperr.Temporal, "Past attendances cannot be canceled")
)

type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	meetupRepo     *repository.MeetupRepository
	notifier       Notifier
	logger         *zap.Logger
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	meetupRepo *repository.MeetupRepository,
	notifier Notifier,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		meetupRepo:     meetupRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Register creates an attendance for the user on the meetup. Checks run in a
// fixed order and the first failure wins. The pre-checks against existing
// attendances are optimistic only; the database's unique indexes are the
// real guard under concurrent requests and also surface as Conflict.
func (s *AttendanceService) Register(userID, meetupID uint) (*models.Attendance, error) {
	meetup, err := s.meetupRepo.GetByIDWithOwner(meetupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetupNotFound
		}
		return nil, err
	}

	if meetup.UserID == userID {
		return nil, ErrOwnMeetup
	}

	if meetup.Date.Before(time.Now()) {
		return nil, ErrPastMeetup
	}

	attending, err := s.attendanceRepo.Exists(userID, meetup.ID)
	if err != nil {
		return nil, err
	}
	if attending {
		return nil, ErrAlreadyAttending
	}

	dateTaken, err := s.attendanceRepo.ExistsForDate(userID, meetup.Date, meetup.ID)
	if err != nil {
		return nil, err
	}
	if dateTaken {
		return nil, ErrDateTaken
	}

	attendance := &models.Attendance{
		UserID:     userID,
		MeetupID:   meetup.ID,
		MeetupDate: meetup.Date,
	}
	if err := s.attendanceRepo.Create(attendance); err != nil {
		return nil, err
	}

	created, err := s.attendanceRepo.GetByIDWithRelations(attendance.ID)
	if err != nil {
		return nil, err
	}

	metric.AttendancesRegistered.Inc()

	// Best effort; registration already committed.
	go func() {
		if err := s.notifier.NotifyNewAttendee(meetup.User, created.User, *meetup); err != nil {
			metric.NotificationFailures.Inc()
			s.logger.Warn("owner notification failed",
				zap.Uint("meetup_id", meetup.ID),
				zap.Error(err))
		}
	}()

	return created, nil
}

// Cancel deletes the user's attendance. The past-meetup check reads the
// denormalized meetup date on the attendance row, which is kept equal to the
// related meetup's date.
func (s *AttendanceService) Cancel(userID, attendanceID uint) error {
	attendance, err := s.attendanceRepo.GetByID(attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendanceNotFound
		}
		return err
	}

	if attendance.UserID != userID {
		return ErrNotAttendanceOwner
	}

	if attendance.MeetupDate.Before(time.Now()) {
		return ErrPastAttendance
	}

	if err := s.attendanceRepo.Delete(attendance.ID); err != nil {
		return err
	}

	metric.AttendancesCanceled.Inc()
	return nil
}

// ListAttendedMeetups returns every meetup the user attends, date ascending,
// shaped for the listing endpoint.
func (s *AttendanceService) ListAttendedMeetups(userID uint) ([]models.AttendedMeetupResponse, error) {
	attendances, err := s.attendanceRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	meetups := make([]models.AttendedMeetupResponse, 0, len(attendances))
	for _, attendance := range attendances {
		meetup := attendance.Meetup

		resp := models.AttendedMeetupResponse{
			ID:          meetup.ID,
			Title:       meetup.Title,
			Description: meetup.Description,
			Location:    meetup.Location,
			Date:        meetup.Date,
			User: models.MeetupOwner{
				ID:   meetup.User.ID,
				Name: meetup.User.Name,
			},
			Attendance: models.AttendanceMarker{
				ID: attendance.ID,
			},
		}
		if meetup.File != nil {
			resp.Avatar = &models.AvatarResponse{
				ID:   meetup.File.ID,
				Path: meetup.File.Path,
				URL:  meetup.File.URL,
			}
		}
		meetups = append(meetups, resp)
	}

	return meetups, nil
}
