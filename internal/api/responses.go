package api

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UserEnvelope struct {
	User User `json:"user"`
}

type ProfilePictureResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type BoardsEnvelope struct {
	Boards []Board `json:"boards"`
}

type BoardEnvelope struct {
	Board Board `json:"board"`
}

type ListsEnvelope struct {
	Lists []List `json:"lists"`
}

type ListEnvelope struct {
	List List `json:"list"`
}

type CardsEnvelope struct {
	Cards []Card `json:"cards"`
}

type CardEnvelope struct {
	Card Card `json:"card"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}
