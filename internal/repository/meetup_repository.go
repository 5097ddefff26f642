package repository

import (
	"github.com/meetapp/meetapp-backend/internal/models"
	"gorm.io/gorm"
)

type MeetupRepository struct {
	db *gorm.DB
}

func NewMeetupRepository(db *gorm.DB) *MeetupRepository {
	return &MeetupRepository{db: db}
}

func (r *MeetupRepository) Create(meetup *models.Meetup) (*models.Meetup, error) {
	result := r.db.Create(meetup)
	if result.Error != nil {
		return nil, result.Error
	}
	return meetup, nil
}

func (r *MeetupRepository) GetByID(id uint) (*models.Meetup, error) {
	var meetup models.Meetup
	err := r.db.First(&meetup, id).Error
	if err != nil {
		return nil, err
	}
	return &meetup, nil
}

// GetByIDWithOwner eager-loads the owning user, needed by the attendance
// workflow for the owner-notification email.
func (r *MeetupRepository) GetByIDWithOwner(id uint) (*models.Meetup, error) {
	var meetup models.Meetup
	err := r.db.Preload("User").First(&meetup, id).Error
	if err != nil {
		return nil, err
	}
	return &meetup, nil
}

func (r *MeetupRepository) GetUserMeetups(userID uint) ([]models.Meetup, error) {
	var meetups []models.Meetup
	err := r.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Preload("File").
		Find(&meetups).Error
	return meetups, err
}

func (r *MeetupRepository) Update(meetup *models.Meetup) error {
	return r.db.Save(meetup).Error
}

// UpdateWithDateSync saves the meetup and rewrites the denormalized date
// copies on its attendance rows in one transaction, so the copies can never
// diverge from the meetup's date. A unique violation on an attendee's
// (user_id, meetup_date) index rolls back the whole update.
func (r *MeetupRepository) UpdateWithDateSync(meetup *models.Meetup) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(meetup).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Attendance{}).
			Where("meetup_id = ?", meetup.ID).
			Update("meetup_date", meetup.Date).Error; err != nil {
			return translateDateCollision(err)
		}
		return nil
	})
}

func (r *MeetupRepository) Delete(id uint) error {
	return r.db.Delete(&models.Meetup{}, id).Error
}
