package handler

import (
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BoardHandler struct {
	boards service.BoardServiceInterface
	logger *zap.Logger
}

func NewBoardHandler(boards service.BoardServiceInterface, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{boards: boards, logger: logger}
}

// GetAll godoc
// @Summary      Boards owned by the current user
// @Tags         Boards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.BoardsEnvelope
// @Router       /boards [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	boards, err := h.boards.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.BoardsEnvelope{Boards: toBoards(boards)})
}

// Create godoc
// @Summary      Create a board
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      api.CreateBoardRequest  true  "Board"
// @Success      201   {object}  api.BoardEnvelope
// @Failure      400   {object}  api.ErrorResponse
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req api.CreateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boards.Create(c.Request.Context(), userID, req.Title, req.Description, req.BackgroundColor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, api.BoardEnvelope{Board: toBoard(board)})
}

// Delete godoc
// @Summary      Delete a board with its lists and cards
// @Tags         Boards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Board ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	boardID, ok := paramUUID(c, "id", "board")
	if !ok {
		return
	}

	if err := h.boards.Delete(c.Request.Context(), userID, boardID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Board deleted successfully"})
}
