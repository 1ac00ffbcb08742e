package handler

import (
	"taskboard/internal/api"
	"taskboard/internal/model"
)

func toUser(u *model.User) api.User {
	return api.User{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

func toBoard(b *model.Board) api.Board {
	return api.Board{
		ID:              b.ID.String(),
		Title:           b.Title,
		Description:     b.Description,
		BackgroundColor: b.BackgroundColor,
		Owner:           b.OwnerID.String(),
		CreatedAt:       b.CreatedAt,
	}
}

func toBoards(boards []model.Board) []api.Board {
	out := make([]api.Board, len(boards))
	for i := range boards {
		out[i] = toBoard(&boards[i])
	}
	return out
}

func toList(l *model.List) api.List {
	return api.List{
		ID:          l.ID.String(),
		BoardID:     l.BoardID.String(),
		Title:       l.Title,
		Description: l.Description,
		Position:    l.Position,
	}
}

func toLists(lists []model.List) []api.List {
	out := make([]api.List, len(lists))
	for i := range lists {
		out[i] = toList(&lists[i])
	}
	return out
}

func toCard(c *model.Card) api.Card {
	labels := []string(c.Labels)
	if labels == nil {
		labels = []string{}
	}
	comments := make([]api.Comment, len(c.Comments))
	for i := range c.Comments {
		comments[i] = toComment(&c.Comments[i])
	}
	return api.Card{
		ID:          c.ID.String(),
		ListID:      c.ListID.String(),
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.DueDate,
		Labels:      labels,
		Position:    c.Position,
		Comments:    comments,
		CreatedAt:   c.CreatedAt,
	}
}

func toCards(cards []model.Card) []api.Card {
	out := make([]api.Card, len(cards))
	for i := range cards {
		out[i] = toCard(&cards[i])
	}
	return out
}

func toComment(c *model.Comment) api.Comment {
	return api.Comment{
		ID:         c.ID.String(),
		CardID:     c.CardID.String(),
		Author:     c.AuthorID.String(),
		AuthorName: c.Author.Name,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
	}
}
