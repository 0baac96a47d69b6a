package handler

import (
	"net/http"
	"strings"
	"time"

	"todoboard/internal/auth"
	"todoboard/internal/events"
	"todoboard/internal/model"
	"todoboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userRepo  repository.UserRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
	issuer    *auth.TokenIssuer
	events    events.Publisher
}

func NewUserHandler(userRepo repository.UserRepositoryInterface, boardRepo repository.BoardRepositoryInterface, issuer *auth.TokenIssuer, publisher events.Publisher) *UserHandler {
	return &UserHandler{
		userRepo:  userRepo,
		boardRepo: boardRepo,
		issuer:    issuer,
		events:    publisher,
	}
}

type CreateUserRequest struct {
	BoardID string `json:"board_id" binding:"required,uuid"`
	Name    string `json:"name" binding:"required"`
}

type AddMemberRequest struct {
	Name string `json:"name" binding:"required"`
}

type UserResponse struct {
	ID        string `json:"id"`
	BoardID   string `json:"board_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type SwitchUserResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func newUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		BoardID:   user.BoardID.String(),
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// Create godoc
// @Summary  Add a member to a board
// @Tags     Users
// @Accept   json
// @Produce  json
// @Param    request body CreateUserRequest true "Member"
// @Success  201 {object} UserResponse
// @Router   /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	h.create(c, boardID, req.Name)
}

// AddMember godoc
// @Summary  Add a member to a board
// @Tags     Users
// @Accept   json
// @Produce  json
// @Param    id      path string           true "Board ID"
// @Param    request body AddMemberRequest true "Member"
// @Success  201 {object} UserResponse
// @Router   /boards/{id}/users [post]
func (h *UserHandler) AddMember(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}
	var req AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	h.create(c, boardID, req.Name)
}

func (h *UserHandler) create(c *gin.Context, boardID uuid.UUID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User name is required"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}

	user := &model.User{BoardID: boardID, Name: name}
	if err := h.userRepo.Create(ctx, user); err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	publish(ctx, h.events, events.UsersChanged, boardID)
	c.JSON(http.StatusCreated, newUserResponse(*user))
}

// List godoc
// @Summary  List the members of a board
// @Tags     Users
// @Produce  json
// @Param    id path string true "Board ID"
// @Success  200 {array} UserResponse
// @Router   /boards/{id}/users [get]
func (h *UserHandler) List(c *gin.Context) {
	boardID, ok := paramID(c, "id", "board")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.boardRepo.GetByID(ctx, boardID); err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	users, err := h.userRepo.ListByBoard(ctx, boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve users")
		return
	}

	response := make([]UserResponse, len(users))
	for i, user := range users {
		response[i] = newUserResponse(user)
	}
	c.JSON(http.StatusOK, response)
}

// Delete godoc
// @Summary  Remove a member
// @Tags     Users
// @Param    id path string true "User ID"
// @Success  200 {object} map[string]string
// @Router   /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := paramID(c, "id", "user")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	if err := h.userRepo.Delete(ctx, userID); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}

	publish(ctx, h.events, events.UsersChanged, user.BoardID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// Switch godoc
// @Summary  Act as a board member
// @Tags     Users
// @Produce  json
// @Param    id path string true "User ID"
// @Success  200 {object} SwitchUserResponse
// @Router   /users/{id}/switch [post]
func (h *UserHandler) Switch(c *gin.Context) {
	userID, ok := paramID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}

	token, expiresAt, err := h.issuer.Issue(auth.Actor{BoardID: user.BoardID, UserID: user.ID, UserName: user.Name})
	if err != nil {
		respondError(c, err, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, SwitchUserResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      newUserResponse(*user),
	})
}
