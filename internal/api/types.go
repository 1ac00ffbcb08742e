// Package api holds the JSON shapes exchanged between the taskboard server and its clients.
package api

import "time"

type User struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Board struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	Owner           string    `json:"owner"`
	CreatedAt       time.Time `json:"createdAt"`
}

// List is a board column. Cards is only filled by clients that merge the
// per-list card fetch into the list, the server never sends it.
type List struct {
	ID          string `json:"_id"`
	BoardID     string `json:"boardId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
	Cards       []Card `json:"cards,omitempty"`
}

type Card struct {
	ID          string     `json:"_id"`
	ListID      string     `json:"listId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Labels      []string   `json:"labels"`
	Position    int        `json:"position"`
	Comments    []Comment  `json:"comments"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Comment struct {
	ID         string    `json:"_id"`
	CardID     string    `json:"cardId"`
	Author     string    `json:"author"`
	AuthorName string    `json:"authorName,omitempty"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}
