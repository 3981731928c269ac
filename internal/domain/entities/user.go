package entities

import (
	"time"
)

// Role is the account role assigned at registration
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleDoctor   Role = "DOCTOR"
	RoleStaff    Role = "STAFF"
	RoleCustomer Role = "CUSTOMER"
)

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId,omitempty"`
	Role     Role   `json:"role,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// RegisterRequest is the body of POST /api/register
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Gender   Gender `json:"gender"`
}

// RegisterResponse is the account created by a registration
type RegisterResponse struct {
	UserID   int64  `json:"userId,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role,omitempty"`
	Message  string `json:"message,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// UserInfo is the cached identity of the signed-in user
type UserInfo struct {
	UserID   int64     `json:"userId"`
	FullName string    `json:"fullName,omitempty"`
	Email    string    `json:"email,omitempty"`
	Role     Role      `json:"role,omitempty"`
	StaffID  int64     `json:"staffId,omitempty"`
	LoginAt  time.Time `json:"loginAt,omitempty"`
}

// UserInfoFromLogin builds the cached identity from a login response
func UserInfoFromLogin(res *LoginResponse, at time.Time) *UserInfo {
	info := &UserInfo{
		UserID:   res.UserID,
		FullName: res.FullName,
		Email:    res.Email,
		Role:     res.Role,
		LoginAt:  at,
	}
	if res.Role == RoleStaff || res.Role == RoleManager {
		info.StaffID = res.UserID
	}
	return info
}
