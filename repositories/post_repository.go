package repositories

import (
	"devconnect/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetList(params models.PostListParams) ([]models.Post, error)
	ListByAuthor(authorID uint) ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error

	AddLike(postID, userID uint) error
	RemoveLike(postID, userID uint) error
	CountLikes(postID uint) (int64, error)
	ListLikerIDs(postID uint) ([]uint, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").First(&post, id).Error
	return &post, err
}

func (r *postRepository) GetList(params models.PostListParams) ([]models.Post, error) {
	var posts []models.Post

	query := r.db.Preload("Author")
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.Direction != "" {
		query = query.Where("direction = ?", params.Direction)
	}

	err := query.Order("created_at desc").Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("author_id = ?", authorID).Find(&posts).Error
	return posts, err
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// AddLike relies on the composite unique index: a second like from the
// same user comes back as gorm.ErrDuplicatedKey, so the membership
// check and the insert are a single atomic statement.
func (r *postRepository) AddLike(postID, userID uint) error {
	return r.db.Create(&models.PostLike{PostID: postID, UserID: userID}).Error
}

func (r *postRepository) RemoveLike(postID, userID uint) error {
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{}).Error
}

func (r *postRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *postRepository) ListLikerIDs(postID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Order("id asc").
		Pluck("user_id", &ids).Error
	return ids, err
}
