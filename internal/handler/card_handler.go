package handler

import (
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/apierror"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CardHandler struct {
	cards  service.CardServiceInterface
	logger *zap.Logger
}

func NewCardHandler(cards service.CardServiceInterface, logger *zap.Logger) *CardHandler {
	return &CardHandler{cards: cards, logger: logger}
}

// GetByList godoc
// @Summary      Cards of a list in position order, with comments
// @Tags         Cards
// @Produce      json
// @Security     BearerAuth
// @Param        listId  path      string  true  "List ID"
// @Success      200     {object}  api.CardsEnvelope
// @Router       /cards/list/{listId} [get]
func (h *CardHandler) GetByList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	listID, ok := paramUUID(c, "listId", "list")
	if !ok {
		return
	}

	cards, err := h.cards.ByList(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.CardsEnvelope{Cards: toCards(cards)})
}

// Create godoc
// @Summary      Append a card to a list
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      api.CreateCardRequest  true  "Card"
// @Success      201   {object}  api.CardEnvelope
// @Router       /cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req api.CreateCardRequest
	if !bindJSON(c, &req) {
		return
	}

	in := service.NewCard{
		ListID:      uuid.MustParse(req.ListID),
		Title:       req.Title,
		Description: req.Description,
		Labels:      req.Labels,
	}
	if req.DueDate != nil {
		due := req.DueDate.Time
		in.DueDate = &due
	}

	card, err := h.cards.Create(c.Request.Context(), userID, in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, api.CardEnvelope{Card: toCard(card)})
}

// Update godoc
// @Summary      Partially update a card
// @Description  A null dueDate removes the due date, an absent one keeps it.
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Card ID"
// @Param        body  body      api.UpdateCardRequest  true  "Fields to change"
// @Success      200   {object}  api.CardEnvelope
// @Router       /cards/{id} [patch]
func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := paramUUID(c, "id", "card")
	if !ok {
		return
	}

	var req api.UpdateCardRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := service.CardPatch{
		Title:       req.Title,
		Description: req.Description,
		Labels:      req.Labels,
	}
	if req.DueDate.Set {
		if req.DueDate.Value == nil {
			patch.ClearDueDate = true
		} else {
			patch.DueDate = req.DueDate.Value
		}
	}

	card, err := h.cards.Update(c.Request.Context(), userID, cardID, patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.CardEnvelope{Card: toCard(card)})
}

// Delete godoc
// @Summary      Delete a card
// @Tags         Cards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Card ID"
// @Success      200  {object}  api.MessageResponse
// @Router       /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := paramUUID(c, "id", "card")
	if !ok {
		return
	}

	if err := h.cards.Delete(c.Request.Context(), userID, cardID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Card deleted successfully"})
}

// Reorder godoc
// @Summary      Set the cards of a list in order
// @Description  Cards named from other lists of the same board are moved into the list.
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      api.ReorderCardsRequest  true  "Target list and its cards"
// @Success      200   {object}  api.MessageResponse
// @Failure      400   {object}  api.ErrorResponse
// @Router       /cards/reorder [patch]
func (h *CardHandler) Reorder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req api.ReorderCardsRequest
	if !bindJSON(c, &req) {
		return
	}

	ids, err := parseUUIDs(req.CardIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("Invalid card ID format").Response())
		return
	}

	if err := h.cards.Reorder(c.Request.Context(), userID, uuid.MustParse(req.ListID), ids); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Cards reordered successfully"})
}

// AddComment godoc
// @Summary      Comment on a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Card ID"
// @Param        body  body      api.AddCommentRequest  true  "Comment"
// @Success      201   {object}  api.CardEnvelope
// @Router       /cards/{id}/comments [post]
func (h *CardHandler) AddComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := paramUUID(c, "id", "card")
	if !ok {
		return
	}

	var req api.AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.cards.AddComment(c.Request.Context(), userID, cardID, req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, api.CardEnvelope{Card: toCard(card)})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         Cards
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true  "Card ID"
// @Param        commentId  path      string  true  "Comment ID"
// @Success      200        {object}  api.CardEnvelope
// @Router       /cards/{id}/comments/{commentId} [delete]
func (h *CardHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := paramUUID(c, "id", "card")
	if !ok {
		return
	}
	commentID, ok := paramUUID(c, "commentId", "comment")
	if !ok {
		return
	}

	card, err := h.cards.DeleteComment(c.Request.Context(), userID, cardID, commentID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.CardEnvelope{Card: toCard(card)})
}

// MyTasks godoc
// @Summary      Every card on the current user's boards, soonest due first
// @Tags         Cards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.CardsEnvelope
// @Router       /cards/my-tasks [get]
func (h *CardHandler) MyTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	cards, err := h.cards.MyTasks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.CardsEnvelope{Cards: toCards(cards)})
}
