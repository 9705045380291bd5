package services

import (
	"errors"

	"devconnect/models"
	"devconnect/repositories"

	"gorm.io/gorm"
)

const (
	maxPostTitleLength   = 100
	maxPostContentLength = 20000
)

type PostService interface {
	GetPosts(params models.PostListParams) ([]models.Post, error)
	GetPost(id uint) (*models.Post, error)
	CreatePost(authorID uint, req models.PostRequest) (*models.Post, error)
	UpdatePost(userID, postID uint, req models.PostRequest) (*models.Post, error)
	DeletePost(userID, postID uint) error
	LikePost(userID, postID uint) (int64, error)
	UnlikePost(userID, postID uint) (int64, error)
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) GetPosts(params models.PostListParams) ([]models.Post, error) {
	posts, err := s.postRepo.GetList(params)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to list posts"}
	}

	for i := range posts {
		if err := s.attachLikes(&posts[i]); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Post not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load post"}
	}

	if err := s.attachLikes(post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) CreatePost(authorID uint, req models.PostRequest) (*models.Post, error) {
	if err := validatePost(req); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:        req.Title,
		Content:      req.Content,
		Type:         req.Type,
		Direction:    req.Direction,
		PreviewImage: req.PreviewImage,
		AuthorID:     authorID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to create post"}
	}

	return s.GetPost(post.ID)
}

func (s *postService) UpdatePost(userID, postID uint, req models.PostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Post not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load post"}
	}

	if post.AuthorID != userID {
		return nil, models.ErrorForbidden{Message: "Not allowed to edit this post"}
	}

	if err := validatePost(req); err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Type = req.Type
	post.Direction = req.Direction
	post.PreviewImage = req.PreviewImage

	if err := s.postRepo.Update(post); err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to update post"}
	}

	if err := s.attachLikes(post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) DeletePost(userID, postID uint) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Post not found"}
		}
		return models.ErrorInternalServer{Message: "Failed to load post"}
	}

	if post.AuthorID != userID {
		return models.ErrorForbidden{Message: "Not allowed to delete this post"}
	}

	if err := s.postRepo.Delete(postID); err != nil {
		return models.ErrorInternalServer{Message: "Failed to delete post"}
	}

	return nil
}

// LikePost inserts the membership row; the unique index turns a repeat
// like into a conflict even when two requests race.
func (s *postService) LikePost(userID, postID uint) (int64, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrorNotFound{Message: "Post not found"}
		}
		return 0, models.ErrorInternalServer{Message: "Failed to load post"}
	}

	if err := s.postRepo.AddLike(postID, userID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, models.ErrorConflict{Message: "Already liked"}
		}
		return 0, models.ErrorInternalServer{Message: "Failed to like post"}
	}

	likes, err := s.postRepo.CountLikes(postID)
	if err != nil {
		return 0, models.ErrorInternalServer{Message: "Failed to count likes"}
	}

	return likes, nil
}

// UnlikePost removes the membership row if present; removing an absent
// like is not an error.
func (s *postService) UnlikePost(userID, postID uint) (int64, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrorNotFound{Message: "Post not found"}
		}
		return 0, models.ErrorInternalServer{Message: "Failed to load post"}
	}

	if err := s.postRepo.RemoveLike(postID, userID); err != nil {
		return 0, models.ErrorInternalServer{Message: "Failed to unlike post"}
	}

	likes, err := s.postRepo.CountLikes(postID)
	if err != nil {
		return 0, models.ErrorInternalServer{Message: "Failed to count likes"}
	}

	return likes, nil
}

func (s *postService) attachLikes(post *models.Post) error {
	likerIDs, err := s.postRepo.ListLikerIDs(post.ID)
	if err != nil {
		return models.ErrorInternalServer{Message: "Failed to load likes"}
	}
	post.LikedBy = likerIDs
	post.Likes = int64(len(likerIDs))
	return nil
}

func validatePost(req models.PostRequest) error {
	if req.Title == "" || req.Content == "" || req.Type == "" || req.Direction == "" {
		return models.ErrorValidation{Message: "Title, content, type and direction are required"}
	}
	if len([]rune(req.Title)) > maxPostTitleLength {
		return models.ErrorValidation{Message: "Title must be at most 100 characters"}
	}
	if len([]rune(req.Content)) > maxPostContentLength {
		return models.ErrorValidation{Message: "Content must be at most 20000 characters"}
	}
	if !req.Type.IsValid() {
		return models.ErrorValidation{Message: "Invalid post type"}
	}
	return nil
}
