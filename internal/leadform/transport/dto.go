package transport

// SubmitRequest is the JSON body posted by the landing page form.
type SubmitRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message"`
	Privacy bool   `json:"privacy"`
}

// Submission echoes what was recorded, with the phone as normalized.
type Submission struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Privacy bool   `json:"privacy"`
}

// SubmitResponse is returned on success.
type SubmitResponse struct {
	Message string     `json:"message"`
	Data    Submission `json:"data"`
}
