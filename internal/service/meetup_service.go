package service

import (
	"errors"
	"time"

	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/metric"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMeetupDateInPast = apperr.New(apperr.Temporal, "Meetup date must be in the future")
	ErrNotMeetupOwner   = apperr.New(apperr.Authorization, "Only the organizer can manage this meetup")
	ErrMeetupOver       = apperr.New(apperr.Temporal, "Past meetups cannot be changed")
	ErrBannerNotFound   = apperr.New(apperr.NotFound, "Banner file not found")
)

type MeetupService struct {
	meetupRepo *repository.MeetupRepository
	fileRepo   *repository.FileRepository
}

func NewMeetupService(
	meetupRepo *repository.MeetupRepository,
	fileRepo *repository.FileRepository,
) *MeetupService {
	return &MeetupService{
		meetupRepo: meetupRepo,
		fileRepo:   fileRepo,
	}
}

func (s *MeetupService) CreateMeetup(userID uint, req models.MeetupRequest) (*models.Meetup, error) {
	if req.Date.Before(time.Now()) {
		return nil, ErrMeetupDateInPast
	}

	if req.FileID != nil {
		if _, err := s.fileRepo.GetByID(*req.FileID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBannerNotFound
			}
			return nil, err
		}
	}

	meetup := &models.Meetup{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		FileID:      req.FileID,
	}

	created, err := s.meetupRepo.Create(meetup)
	if err != nil {
		return nil, err
	}

	metric.MeetupsCreated.Inc()
	return created, nil
}

func (s *MeetupService) GetMeetup(meetupID, userID uint) (*models.Meetup, error) {
	meetup, err := s.meetupRepo.GetByID(meetupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetupNotFound
		}
		return nil, err
	}

	if meetup.UserID != userID {
		return nil, ErrNotMeetupOwner
	}

	return meetup, nil
}

func (s *MeetupService) GetUserMeetups(userID uint) ([]models.Meetup, error) {
	return s.meetupRepo.GetUserMeetups(userID)
}

// UpdateMeetup edits an upcoming meetup. A date change is saved together with
// the denormalized date copies on the attendance rows in one transaction, so
// an attendee's (user_id, meetup_date) collision rolls the whole edit back.
func (s *MeetupService) UpdateMeetup(meetupID, userID uint, req models.UpdateMeetupRequest) (*models.Meetup, error) {
	meetup, err := s.meetupRepo.GetByID(meetupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetupNotFound
		}
		return nil, err
	}

	if meetup.UserID != userID {
		return nil, ErrNotMeetupOwner
	}

	if meetup.Date.Before(time.Now()) {
		return nil, ErrMeetupOver
	}

	dateChanged := false
	if req.Date != nil {
		if req.Date.Before(time.Now()) {
			return nil, ErrMeetupDateInPast
		}
		dateChanged = !req.Date.Equal(meetup.Date)
		meetup.Date = *req.Date
	}
	if req.Title != nil {
		meetup.Title = *req.Title
	}
	if req.Description != nil {
		meetup.Description = *req.Description
	}
	if req.Location != nil {
		meetup.Location = *req.Location
	}
	if req.FileID != nil {
		if _, err := s.fileRepo.GetByID(*req.FileID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBannerNotFound
			}
			return nil, err
		}
		meetup.FileID = req.FileID
	}

	if dateChanged {
		err = s.meetupRepo.UpdateWithDateSync(meetup)
	} else {
		err = s.meetupRepo.Update(meetup)
	}
	if err != nil {
		return nil, err
	}

	return meetup, nil
}

func (s *MeetupService) DeleteMeetup(meetupID, userID uint) error {
	meetup, err := s.meetupRepo.GetByID(meetupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMeetupNotFound
		}
		return err
	}

	if meetup.UserID != userID {
		return ErrNotMeetupOwner
	}

	if meetup.Date.Before(time.Now()) {
		return ErrMeetupOver
	}

	return s.meetupRepo.Delete(meetupID)
}
