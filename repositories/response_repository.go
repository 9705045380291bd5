package repositories

import (
	"devconnect/models"

	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *models.Response) error
	ListByPostIDs(postIDs []uint) ([]models.Response, error)

	CreateNotification(notification *models.Notification) error
	ListNotifications(userID uint) ([]models.Notification, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *models.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) ListByPostIDs(postIDs []uint) ([]models.Response, error) {
	responses := []models.Response{}
	if len(postIDs) == 0 {
		return responses, nil
	}
	err := r.db.Where("post_id IN ?", postIDs).
		Preload("Author").
		Order("created_at desc").
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *responseRepository) ListNotifications(userID uint) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}
