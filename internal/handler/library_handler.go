package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/service"
	"github.com/bookshelfhq/librarysystem/pkg/response"
)

type LibraryHandler struct {
	service service.LibraryService
}

func NewLibraryHandler(service service.LibraryService) *LibraryHandler {
	return &LibraryHandler{service: service}
}

func (h *LibraryHandler) Save(c *gin.Context) {
	var req dto.LibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	library, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated,
		fmt.Sprintf("Library with ID %d was created", library.ID), library)
}

func (h *LibraryHandler) FindAll(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err))
		return
	}
	query = query.Normalized()

	libraries, err := h.service.FindAll(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("All Libraries: page_number: %d; page_size: %d", query.Page, query.Size), libraries)
}

func (h *LibraryHandler) FindByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	library, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("Library with ID %d was found", library.ID), library)
}

func (h *LibraryHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.LibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	library, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("Changes were applied to the Library with ID %d", id), library)
}

func (h *LibraryHandler) UpdatePartially(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.LibraryPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	library, err := h.service.UpdatePartially(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("Partial changes were applied to the Library with ID %d", id), library)
}

func (h *LibraryHandler) AddUserByUserID(c *gin.Context) {
	libraryID, err := pathID(c, "libraryId")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	library, err := h.service.AddUserByUserID(c.Request.Context(), libraryID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("User with ID %d was added to the Library with ID %d", userID, libraryID), library)
}

func (h *LibraryHandler) DeleteUserByUserID(c *gin.Context) {
	libraryID, err := pathID(c, "libraryId")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	library, err := h.service.DeleteUserByUserID(c.Request.Context(), libraryID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("User with ID %d was removed from the Library with ID %d", userID, libraryID), library)
}

func (h *LibraryHandler) DeleteByID(c *gin.Context) {
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
		fmt.Sprintf("Library with ID %d was deleted", id), nil)
}
