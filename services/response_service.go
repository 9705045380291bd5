package services

import (
	"errors"
	"fmt"

	"devconnect/models"
	"devconnect/repositories"

	"gorm.io/gorm"
)

type ResponseService interface {
	CreateResponse(req models.CreateResponseRequest) (*models.Response, error)
	ListResponsesForUser(userID uint) ([]models.Response, error)
	ListNotifications(userID uint) ([]models.Notification, error)
}

type responseService struct {
	responseRepo repositories.ResponseRepository
	postRepo     repositories.PostRepository
}

func NewResponseService(responseRepo repositories.ResponseRepository, postRepo repositories.PostRepository) ResponseService {
	return &responseService{responseRepo: responseRepo, postRepo: postRepo}
}

// CreateResponse records the response and, when someone else's post was
// answered, stores a notification for its author. Delivery is the
// client's business; this only writes the shape it polls for.
func (s *responseService) CreateResponse(req models.CreateResponseRequest) (*models.Response, error) {
	if req.PostID == 0 || req.AuthorID == 0 {
		return nil, models.ErrorValidation{Message: "postId and authorId are required"}
	}

	post, err := s.postRepo.GetByID(req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Post not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load post"}
	}

	response := &models.Response{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
	}
	if err := s.responseRepo.Create(response); err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to create response"}
	}

	if post.AuthorID != req.AuthorID {
		notification := &models.Notification{
			UserID:  post.AuthorID,
			Type:    models.NotificationTypeResponse,
			Message: fmt.Sprintf("Новый отклик на вашу вакансию %q", post.Title),
			Data: models.NotificationData{
				PostID:     post.ID,
				ResponseID: response.ID,
				FromUserID: req.AuthorID,
			},
		}
		if err := s.responseRepo.CreateNotification(notification); err != nil {
			return nil, models.ErrorInternalServer{Message: "Failed to create notification"}
		}
	}

	return response, nil
}

func (s *responseService) ListResponsesForUser(userID uint) ([]models.Response, error) {
	posts, err := s.postRepo.ListByAuthor(userID)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to load posts"}
	}

	postIDs := make([]uint, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	responses, err := s.responseRepo.ListByPostIDs(postIDs)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to load responses"}
	}

	return responses, nil
}

func (s *responseService) ListNotifications(userID uint) ([]models.Notification, error) {
	notifications, err := s.responseRepo.ListNotifications(userID)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to load notifications"}
	}
	return notifications, nil
}
