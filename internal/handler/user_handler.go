package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/service"
	"github.com/bookshelfhq/librarysystem/pkg/response"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Save(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	user, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated,
		fmt.Sprintf("User with ID %d was created", user.ID), user)
}

func (h *UserHandler) FindAll(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err))
		return
	}
	query = query.Normalized()

	users, err := h.service.FindAll(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("All Users: page_number: %d; page_size: %d", query.Page, query.Size), users)
}

func (h *UserHandler) FindByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("User with ID %d was found", user.ID), user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	user, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("Changes were applied to the User with ID %d", id), user)
}

func (h *UserHandler) UpdatePartially(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UserPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	user, err := h.service.UpdatePartially(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("Partial changes were applied to the User with ID %d", id), user)
}

func (h *UserHandler) DeleteByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusNoContent,
		fmt.Sprintf("User with ID %d was deleted", id), nil)
}
