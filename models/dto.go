package models

type RegisterRequest struct {
	FirstName       string   `json:"firstName" validate:"required"`
	LastName        string   `json:"lastName" validate:"required"`
	Nickname        string   `json:"nickname" validate:"required,max=50"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required"`
	ConfirmPassword string   `json:"confirmPassword" validate:"required"`
	Role            UserRole `json:"role" validate:"required"`
}

type LoginRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Nickname    string   `json:"nickname" validate:"required,max=50"`
	Role        UserRole `json:"role" validate:"required"`
	Description string   `json:"description"`
	Workplace   string   `json:"workplace"`
	Avatar      string   `json:"avatar"`
}

type ProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Links        []string `json:"links"`
	PreviewImage string   `json:"previewImage"`
}

// DeleteProjectRequest is the optional body of a portfolio delete; the
// title feeds the legacy fallback for projects without an id.
type DeleteProjectRequest struct {
	Title string `json:"title"`
}

type DeleteByTitleRequest struct {
	Title string `json:"title" validate:"required"`
}

type PostRequest struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Type         PostType `json:"type"`
	Direction    string   `json:"direction"`
	PreviewImage string   `json:"previewImage"`
}

type PostListParams struct {
	Type      string `form:"type"`
	Direction string `form:"direction"`
}

type LikesResponse struct {
	Likes int64 `json:"likes"`
}

type CreateResponseRequest struct {
	PostID   uint `json:"postId" validate:"required"`
	AuthorID uint `json:"authorId" validate:"required"`
}

type AvatarResponse struct {
	Avatar string `json:"avatar"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
