package dto

import (
	"time"

	"job-khojo/internal/repository"
)

// Application is the admin-listing row as exposed over HTTP. Timestamps are
// rendered in RFC 3339 so the dashboard never has to guess a format.
type Application struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Status    string `json:"status"`
	JobTitle  string `json:"job_title,omitempty"`
	Location  string `json:"location,omitempty"`
	Skills    string `json:"skills,omitempty"`
	ResumeURL string `json:"resume_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

func NewApplication(row repository.ApplicationRow) Application {
	return Application{
		UserID:    row.UserID.String(),
		FullName:  row.FullName,
		Email:     row.Email,
		Phone:     row.Phone,
		City:      row.City,
		Country:   row.Country,
		Status:    row.Status,
		JobTitle:  row.JobTitle,
		Location:  row.Location,
		Skills:    row.Skills,
		ResumeURL: row.ResumeURL,
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewApplicationList(rows []repository.ApplicationRow) []Application {
	out := make([]Application, 0, len(rows))
	for _, row := range rows {
		out = append(out, NewApplication(row))
	}
	return out
}
