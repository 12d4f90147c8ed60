package feedback

import "time"

type CreateFeedbackRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=128"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3,max=256"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type FeedbackResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Total    int                `json:"total"`
}
