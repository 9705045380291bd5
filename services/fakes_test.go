package services

import (
	"sort"
	"time"

	"devconnect/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They return the same gorm sentinel errors
// the real repositories surface (ErrRecordNotFound, ErrDuplicatedKey)
// so the services are exercised over the exact error contract.

type fakeUserRepo struct {
	users         map[uint]*models.User
	projects      []*models.Project
	nextUserID    uint
	nextProjectID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range r.users {
		if existing.Nickname == user.Nickname || existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextUserID++
	user.ID = r.nextUserID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	copied.Portfolio = nil
	for _, project := range r.sortedProjects() {
		if project.UserID == id {
			copied.Portfolio = append(copied.Portfolio, *project)
		}
	}
	return &copied, nil
}

func (r *fakeUserRepo) GetByNickname(nickname string) (*models.User, error) {
	for _, user := range r.users {
		if user.Nickname == nickname {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByNicknameExcluding(nickname string, excludeID uint) (*models.User, error) {
	for _, user := range r.users {
		if user.Nickname == nickname && user.ID != excludeID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, existing := range r.users {
		if existing.ID != user.ID && existing.Nickname == user.Nickname {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *user
	copied.Portfolio = nil
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) List() ([]models.UserSummary, error) {
	summaries := []models.UserSummary{}
	for _, user := range r.users {
		summaries = append(summaries, models.UserSummary{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Nickname:  user.Nickname,
			Role:      user.Role,
			Avatar:    user.Avatar,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries, nil
}

func (r *fakeUserRepo) AddProject(project *models.Project) error {
	r.nextProjectID++
	project.ID = r.nextProjectID
	copied := *project
	r.projects = append(r.projects, &copied)
	return nil
}

func (r *fakeUserRepo) GetProject(userID uint, publicID string) (*models.Project, error) {
	for _, project := range r.projects {
		if project.UserID == userID && project.PublicID == publicID {
			copied := *project
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateProject(project *models.Project) error {
	for i, existing := range r.projects {
		if existing.ID == project.ID {
			copied := *project
			r.projects[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) DeleteProject(project *models.Project) error {
	for i, existing := range r.projects {
		if existing.ID == project.ID {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) GetFirstLegacyProjectByTitle(userID uint, title string) (*models.Project, error) {
	for _, project := range r.sortedProjects() {
		if project.UserID == userID && project.PublicID == "" && project.Title == title {
			copied := *project
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) DeleteProjectsByTitle(userID uint, title string) (int64, error) {
	kept := r.projects[:0]
	var deleted int64
	for _, project := range r.projects {
		if project.UserID == userID && project.Title == title {
			deleted++
			continue
		}
		kept = append(kept, project)
	}
	r.projects = kept
	return deleted, nil
}

func (r *fakeUserRepo) CountProjects(userID uint) (int64, error) {
	var count int64
	for _, project := range r.projects {
		if project.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) sortedProjects() []*models.Project {
	sorted := make([]*models.Project, len(r.projects))
	copy(sorted, r.projects)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// seedUser inserts a user directly, bypassing validation.
func (r *fakeUserRepo) seedUser(nickname, email string) *models.User {
	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		Nickname:  nickname,
		Email:     email,
		Password:  "hash",
		Role:      models.RoleFrontendDeveloper,
	}
	_ = r.Create(user)
	return user
}

// seedLegacyProject inserts a portfolio row without a public id, the
// shape migrated data arrives in.
func (r *fakeUserRepo) seedLegacyProject(userID uint, title string) *models.Project {
	r.nextProjectID++
	project := &models.Project{
		ID:       r.nextProjectID,
		UserID:   userID,
		Title:    title,
		Position: len(r.projects),
	}
	r.projects = append(r.projects, project)
	return project
}

type fakePostRepo struct {
	posts      map[uint]*models.Post
	likeOrder  map[uint][]uint
	nextPostID uint
	now        time.Time
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:     map[uint]*models.Post{},
		likeOrder: map[uint][]uint{},
		now:       time.Now(),
	}
}

func (r *fakePostRepo) Create(post *models.Post) error {
	r.nextPostID++
	post.ID = r.nextPostID
	r.now = r.now.Add(time.Second)
	post.CreatedAt = r.now
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakePostRepo) GetByID(id uint) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) GetList(params models.PostListParams) ([]models.Post, error) {
	posts := []models.Post{}
	for _, post := range r.posts {
		if params.Type != "" && string(post.Type) != params.Type {
			continue
		}
		if params.Direction != "" && post.Direction != params.Direction {
			continue
		}
		posts = append(posts, *post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *fakePostRepo) ListByAuthor(authorID uint) ([]models.Post, error) {
	posts := []models.Post{}
	for _, post := range r.posts {
		if post.AuthorID == authorID {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (r *fakePostRepo) Update(post *models.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakePostRepo) Delete(id uint) error {
	delete(r.posts, id)
	delete(r.likeOrder, id)
	return nil
}

func (r *fakePostRepo) AddLike(postID, userID uint) error {
	for _, liker := range r.likeOrder[postID] {
		if liker == userID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.likeOrder[postID] = append(r.likeOrder[postID], userID)
	return nil
}

func (r *fakePostRepo) RemoveLike(postID, userID uint) error {
	likers := r.likeOrder[postID]
	for i, liker := range likers {
		if liker == userID {
			r.likeOrder[postID] = append(likers[:i], likers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePostRepo) CountLikes(postID uint) (int64, error) {
	return int64(len(r.likeOrder[postID])), nil
}

func (r *fakePostRepo) ListLikerIDs(postID uint) ([]uint, error) {
	likers := make([]uint, len(r.likeOrder[postID]))
	copy(likers, r.likeOrder[postID])
	return likers, nil
}

type fakeResponseRepo struct {
	responses      []*models.Response
	notifications  []*models.Notification
	nextResponseID uint
	nextNotifID    uint
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{}
}

func (r *fakeResponseRepo) Create(response *models.Response) error {
	r.nextResponseID++
	response.ID = r.nextResponseID
	copied := *response
	r.responses = append(r.responses, &copied)
	return nil
}

func (r *fakeResponseRepo) ListByPostIDs(postIDs []uint) ([]models.Response, error) {
	wanted := map[uint]bool{}
	for _, id := range postIDs {
		wanted[id] = true
	}
	responses := []models.Response{}
	for _, response := range r.responses {
		if wanted[response.PostID] {
			responses = append(responses, *response)
		}
	}
	return responses, nil
}

func (r *fakeResponseRepo) CreateNotification(notification *models.Notification) error {
	r.nextNotifID++
	notification.ID = r.nextNotifID
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeResponseRepo) ListNotifications(userID uint) ([]models.Notification, error) {
	notifications := []models.Notification{}
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserID == userID {
			notifications = append(notifications, *r.notifications[i])
		}
	}
	return notifications, nil
}
