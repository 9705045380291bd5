package services

import (
	"errors"
	"regexp"

	"devconnect/models"
	"devconnect/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxProjectTitleLength = 100
	maxProjectLinks       = 3
)

var absoluteURLPattern = regexp.MustCompile(`^https?://`)

type UserService interface {
	GetUser(id uint) (*models.User, error)
	ListUsers() ([]models.UserSummary, error)
	UpdateProfile(id uint, req models.UpdateProfileRequest) (*models.User, error)
	UpdateAvatar(id uint, avatar string) (*models.User, error)

	AddProject(userID uint, req models.ProjectRequest) (*models.Project, error)
	UpdateProject(userID uint, projectID string, req models.ProjectRequest) (*models.Project, error)
	DeleteProject(userID uint, projectID, title string) error
	DeleteProjectsByTitle(userID uint, title string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load user"}
	}
	return user, nil
}

func (s *userService) ListUsers() ([]models.UserSummary, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to list users"}
	}
	return users, nil
}

// UpdateProfile replaces the profile fields wholesale; optional fields
// sent empty are cleared, not kept.
func (s *userService) UpdateProfile(id uint, req models.UpdateProfileRequest) (*models.User, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, models.ErrorValidation{Message: "First name and last name are required"}
	}
	if req.Nickname == "" {
		return nil, models.ErrorValidation{Message: "Nickname is required"}
	}
	if !req.Role.IsValid() {
		return nil, models.ErrorValidation{Message: "Invalid role"}
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load user"}
	}

	if req.Nickname != user.Nickname {
		if _, err := s.userRepo.GetByNicknameExcluding(req.Nickname, id); err == nil {
			return nil, models.ErrorConflict{Message: "Nickname already taken"}
		}
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Nickname = req.Nickname
	user.Role = req.Role
	user.Description = req.Description
	user.Workplace = req.Workplace
	user.Avatar = req.Avatar

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "Nickname already taken"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to update user"}
	}

	return user, nil
}

func (s *userService) UpdateAvatar(id uint, avatar string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load user"}
	}

	user.Avatar = avatar
	if err := s.userRepo.Update(user); err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to update user"}
	}

	return user, nil
}

func (s *userService) AddProject(userID uint, req models.ProjectRequest) (*models.Project, error) {
	if err := validateProject(req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load user"}
	}

	position, err := s.userRepo.CountProjects(userID)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to add project"}
	}

	project := &models.Project{
		UserID:       userID,
		PublicID:     uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		Links:        req.Links,
		PreviewImage: req.PreviewImage,
		Position:     int(position),
	}

	if err := s.userRepo.AddProject(project); err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to add project"}
	}

	return project, nil
}

func (s *userService) UpdateProject(userID uint, projectID string, req models.ProjectRequest) (*models.Project, error) {
	if err := validateProject(req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load user"}
	}

	project, err := s.userRepo.GetProject(userID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Project not found"}
		}
		return nil, models.ErrorInternalServer{Message: "Failed to load project"}
	}

	// Full replace, never a merge.
	project.Title = req.Title
	project.Description = req.Description
	project.Links = req.Links
	project.PreviewImage = req.PreviewImage

	if err := s.userRepo.UpdateProject(project); err != nil {
		return nil, models.ErrorInternalServer{Message: "Failed to update project"}
	}

	return project, nil
}

// DeleteProject removes by public id when it matches; when it does not
// and a title was supplied, it falls back to the first legacy project
// (one without a public id) whose title matches exactly. The fallback
// removes at most one row.
func (s *userService) DeleteProject(userID uint, projectID, title string) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "User not found"}
		}
		return models.ErrorInternalServer{Message: "Failed to load user"}
	}

	if projectID != "" {
		project, err := s.userRepo.GetProject(userID, projectID)
		if err == nil {
			if err := s.userRepo.DeleteProject(project); err != nil {
				return models.ErrorInternalServer{Message: "Failed to delete project"}
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorInternalServer{Message: "Failed to load project"}
		}
	}

	if title != "" {
		project, err := s.userRepo.GetFirstLegacyProjectByTitle(userID, title)
		if err == nil {
			if err := s.userRepo.DeleteProject(project); err != nil {
				return models.ErrorInternalServer{Message: "Failed to delete project"}
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorInternalServer{Message: "Failed to load project"}
		}
	}

	return models.ErrorNotFound{Message: "Project not found"}
}

// DeleteProjectsByTitle is the legacy bulk path: every project with the
// exact title goes, id or not.
func (s *userService) DeleteProjectsByTitle(userID uint, title string) error {
	if title == "" {
		return models.ErrorValidation{Message: "Title is required"}
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "User not found"}
		}
		return models.ErrorInternalServer{Message: "Failed to load user"}
	}

	deleted, err := s.userRepo.DeleteProjectsByTitle(userID, title)
	if err != nil {
		return models.ErrorInternalServer{Message: "Failed to delete projects"}
	}
	if deleted == 0 {
		return models.ErrorNotFound{Message: "Project not found by title"}
	}

	return nil
}

func validateProject(req models.ProjectRequest) error {
	if req.Title == "" || len([]rune(req.Title)) > maxProjectTitleLength {
		return models.ErrorValidation{Message: "Title is required and must be at most 100 characters"}
	}
	if len(req.Links) > maxProjectLinks {
		return models.ErrorValidation{Message: "No more than 3 links allowed"}
	}
	for _, link := range req.Links {
		if !absoluteURLPattern.MatchString(link) {
			return models.ErrorValidation{Message: "Invalid link format"}
		}
	}
	return nil
}
