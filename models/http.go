package models

// Request and response bodies of the REST API.
//
// CreateNoteRequest intentionally has no owner field: the owner of a created
// note is always the authenticated actor, regardless of anything the client
// sends. Unknown JSON fields (including a spoofed owner id) are ignored by
// the decoder.

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// CreateNoteRequest is the body of POST /api/notes.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
