package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type addExerciseRequest struct {
	Description string `json:"description" validate:"required"`
	Duration    int    `json:"duration"    validate:"required,gt=0"`
	// Date is optional; "2006-01-02" or RFC 3339. Empty means "now".
	Date string `json:"date,omitempty"`
}

// exerciseResponse echoes the owner's id and username alongside the created
// entry; date is a plain calendar-date string, never a timestamp.
type exerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []logEntryResponse `json:"log"`
}
