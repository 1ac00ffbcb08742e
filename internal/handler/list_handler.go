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

type ListHandler struct {
	lists  service.ListServiceInterface
	logger *zap.Logger
}

func NewListHandler(lists service.ListServiceInterface, logger *zap.Logger) *ListHandler {
	return &ListHandler{lists: lists, logger: logger}
}

// GetByBoard godoc
// @Summary      Lists of a board in position order
// @Tags         Lists
// @Produce      json
// @Security     BearerAuth
// @Param        boardId  path      string  true  "Board ID"
// @Success      200      {object}  api.ListsEnvelope
// @Router       /lists/board/{boardId} [get]
func (h *ListHandler) GetByBoard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	boardID, ok := paramUUID(c, "boardId", "board")
	if !ok {
		return
	}

	lists, err := h.lists.ByBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.ListsEnvelope{Lists: toLists(lists)})
}

// Create godoc
// @Summary      Append a list to a board
// @Tags         Lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      api.CreateListRequest  true  "List"
// @Success      201   {object}  api.ListEnvelope
// @Router       /lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req api.CreateListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.lists.Create(c.Request.Context(), userID, uuid.MustParse(req.BoardID), req.Title, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, api.ListEnvelope{List: toList(list)})
}

// Update godoc
// @Summary      Rename or describe a list
// @Tags         Lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "List ID"
// @Param        body  body      api.UpdateListRequest  true  "Fields to change"
// @Success      200   {object}  api.ListEnvelope
// @Router       /lists/{id} [patch]
func (h *ListHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	listID, ok := paramUUID(c, "id", "list")
	if !ok {
		return
	}

	var req api.UpdateListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.lists.Update(c.Request.Context(), userID, listID, req.Title, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.ListEnvelope{List: toList(list)})
}

// Delete godoc
// @Summary      Delete a list and its cards
// @Tags         Lists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "List ID"
// @Success      200  {object}  api.MessageResponse
// @Router       /lists/{id} [delete]
func (h *ListHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	listID, ok := paramUUID(c, "id", "list")
	if !ok {
		return
	}

	if err := h.lists.Delete(c.Request.Context(), userID, listID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "List deleted successfully"})
}

// Reorder godoc
// @Summary      Reorder the lists of a board
// @Tags         Lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      api.ReorderListsRequest  true  "Every list of the board in its new order"
// @Success      200   {object}  api.MessageResponse
// @Failure      400   {object}  api.ErrorResponse
// @Router       /lists/reorder [patch]
func (h *ListHandler) Reorder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req api.ReorderListsRequest
	if !bindJSON(c, &req) {
		return
	}

	ids, err := parseUUIDs(req.OrderedListIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("Invalid list ID format").Response())
		return
	}

	if err := h.lists.Reorder(c.Request.Context(), userID, uuid.MustParse(req.BoardID), ids); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Lists reordered successfully"})
}
