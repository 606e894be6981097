package dto

import "github.com/finance-tracker/rbac-backend/internal/domain/entity"

// UpdateRoleRequest represents the request body for a role change.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UserListResponse represents the response for listing users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// UserMessageResponse pairs a message with the affected user.
type UserMessageResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ToUserListResponse converts users to their DTO form.
func ToUserListResponse(users []*entity.User) UserListResponse {
	response := UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		response.Users = append(response.Users, ToUserResponse(u))
	}
	return response
}
