package entities

// Blog is a staff-authored news post
type Blog struct {
	BlogID     int64  `json:"blogId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	StaffID    int64  `json:"staffId"`
	StaffName  string `json:"staffName,omitempty"`
	CreateDate string `json:"createDate,omitempty"`
	Image      string `json:"image,omitempty"`
}

// BlogRequest is the body of blog create and update calls
type BlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	StaffID int64  `json:"staffId"`
	Image   string `json:"image,omitempty"`
}

// EducationContent is a patient education article
type EducationContent struct {
	PostID    int64  `json:"postId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	StaffID   int64  `json:"staffId"`
	StaffName string `json:"staffName,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	Image     string `json:"image,omitempty"`
}

// EducationContentRequest is the body of education content create and update calls
type EducationContentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	StaffID int64  `json:"staffId"`
	Image   string `json:"image,omitempty"`
}
