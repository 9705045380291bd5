package repositories

import (
	"devconnect/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByNickname(nickname string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByNicknameExcluding(nickname string, excludeID uint) (*models.User, error)
	Update(user *models.User) error
	List() ([]models.UserSummary, error)

	AddProject(project *models.Project) error
	GetProject(userID uint, publicID string) (*models.Project, error)
	UpdateProject(project *models.Project) error
	DeleteProject(project *models.Project) error
	GetFirstLegacyProjectByTitle(userID uint, title string) (*models.Project, error)
	DeleteProjectsByTitle(userID uint, title string) (int64, error)
	CountProjects(userID uint) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Portfolio", func(db *gorm.DB) *gorm.DB {
		return db.Order("projects.position asc, projects.id asc")
	}).First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByNickname(nickname string) (*models.User, error) {
	var user models.User
	err := r.db.Where("nickname = ?", nickname).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByNicknameExcluding(nickname string, excludeID uint) (*models.User, error) {
	var user models.User
	err := r.db.Where("nickname = ? AND id <> ?", nickname, excludeID).First(&user).Error
	return &user, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Omit("Portfolio").Save(user).Error
}

func (r *userRepository) List() ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := r.db.Model(&models.User{}).
		Select("id, first_name, last_name, nickname, role, avatar").
		Find(&users).Error
	return users, err
}

func (r *userRepository) AddProject(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *userRepository) GetProject(userID uint, publicID string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("user_id = ? AND public_id = ?", userID, publicID).
		First(&project).Error
	return &project, err
}

func (r *userRepository) UpdateProject(project *models.Project) error {
	return r.db.Save(project).Error
}

func (r *userRepository) DeleteProject(project *models.Project) error {
	return r.db.Delete(project).Error
}

// GetFirstLegacyProjectByTitle finds the first project that has no
// public id and exactly matches the title. When two legacy projects
// share a title they are indistinguishable; first wins.
func (r *userRepository) GetFirstLegacyProjectByTitle(userID uint, title string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("user_id = ? AND public_id = '' AND title = ?", userID, title).
		Order("position asc, id asc").
		First(&project).Error
	return &project, err
}

func (r *userRepository) DeleteProjectsByTitle(userID uint, title string) (int64, error) {
	result := r.db.Where("user_id = ? AND title = ?", userID, title).
		Delete(&models.Project{})
	return result.RowsAffected, result.Error
}

func (r *userRepository) CountProjects(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
