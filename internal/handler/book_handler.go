package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/service"
	"github.com/bookshelfhq/librarysystem/pkg/response"
)

type BookHandler struct {
	service service.BookService
}

func NewBookHandler(service service.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// SaveByLibraryID creates a book under the library named in the path.
func (h *BookHandler) SaveByLibraryID(c *gin.Context) {
	libraryID, err := pathID(c, "libraryId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	book, err := h.service.SaveByLibraryID(c.Request.Context(), libraryID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated,
		fmt.Sprintf("Book with ID %d was created", book.ID), book)
}

func (h *BookHandler) FindAll(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err))
		return
	}
	query = query.Normalized()

	books, err := h.service.FindAll(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("All Books: page_number: %d; page_size: %d", query.Page, query.Size), books)
}

func (h *BookHandler) FindByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	book, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("Book with ID %d was found", book.ID), book)
}

func (h *BookHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("Changes were applied to the Book with ID %d", id), book)
}

func (h *BookHandler) UpdatePartially(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BookPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	book, err := h.service.UpdatePartially(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK,
		fmt.Sprintf("Partial changes were applied to the Book with ID %d", id), book)
}

func (h *BookHandler) DeleteByID(c *gin.Context) {
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
		fmt.Sprintf("Book with ID %d was deleted", id), nil)
}
