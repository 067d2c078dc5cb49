package handler

import "time"

// UpsertProfileRequest is the body for creating or replacing the caller's
// profile scalar fields
type UpsertProfileRequest struct {
	Status         string   `json:"status" binding:"required,max=200"`
	Company        string   `json:"company" binding:"omitempty,max=200"`
	Website        string   `json:"website" binding:"omitempty,url,max=500"`
	Location       string   `json:"location" binding:"omitempty,max=200"`
	Bio            string   `json:"bio" binding:"omitempty,max=2000"`
	GithubUsername string   `json:"github_username" binding:"omitempty,max=100"`
	Skills         []string `json:"skills" binding:"required,min=1"`
	Youtube        string   `json:"youtube" binding:"omitempty,url,max=500"`
	Twitter        string   `json:"twitter" binding:"omitempty,url,max=500"`
	Facebook       string   `json:"facebook" binding:"omitempty,url,max=500"`
	Linkedin       string   `json:"linkedin" binding:"omitempty,url,max=500"`
	Instagram      string   `json:"instagram" binding:"omitempty,url,max=500"`
}

// ExperienceRequest is the body for adding or replacing an experience entry
type ExperienceRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Company     string     `json:"company" binding:"required,max=200"`
	Location    string     `json:"location" binding:"omitempty,max=200"`
	From        time.Time  `json:"from" binding:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
}

// EducationRequest is the body for adding or replacing an education entry
type EducationRequest struct {
	School       string     `json:"school" binding:"required,max=200"`
	Degree       string     `json:"degree" binding:"required,max=200"`
	FieldOfStudy string     `json:"field_of_study" binding:"required,max=200"`
	From         time.Time  `json:"from" binding:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description" binding:"omitempty,max=2000"`
}
