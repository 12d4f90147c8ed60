package chatbot

type TurnRequest struct {
	Message string `json:"message" validate:"max=2000"`
	UserID  string `json:"user_id" validate:"omitempty,max=128"`
}

type TurnResponse struct {
	Response string `json:"response"`
	Category string `json:"category"`
}

type SessionResponse struct {
	UserID    string   `json:"user_id"`
	UserName  string   `json:"user_name,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Turns     int      `json:"turns"`
}
