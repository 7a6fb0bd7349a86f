package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/booklist/internal/auth"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/database/marks"
)

// MarksController handles per-user book marks. Marks always apply to the
// calling user; there is no way to mark a book on someone else's behalf.
type MarksController struct {
	books *books.Repository
	marks *marks.Repository
}

// NewMarksController creates a new marks controller.
func NewMarksController(bookRepo *books.Repository, markRepo *marks.Repository) *MarksController {
	return &MarksController{
		books: bookRepo,
		marks: markRepo,
	}
}

// markRequest uses pointers so an omitted flag is distinguishable from an
// explicit false: omitted flags keep their stored value on update.
type markRequest struct {
	Bought      *bool `json:"bought"`
	Read        *bool `json:"read"`
	OnBookshelf *bool `json:"onBookshelf"`
}

func (r markRequest) patch() marks.Patch {
	return marks.Patch{
		Bought:      r.Bought,
		Read:        r.Read,
		OnBookshelf: r.OnBookshelf,
	}
}

// Set creates the caller's mark on a book, or merges the supplied flags
// into an existing one. 201 on first mark, 200 thereafter.
// POST /api/books/:id/mark
func (mc *MarksController) Set(c *gin.Context) {
	user := auth.CurrentUser(c)

	bookID, ok := mc.existingBookID(c)
	if !ok {
		return
	}

	var req markRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	mark, created, err := mc.marks.Upsert(user.ID, bookID, req.patch())
	if err != nil {
		respondInternalError(c, err, "set mark")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, newMarkResponse(mark))
}

// Update merges the supplied flags into an existing mark and fails with 404
// when the caller has never marked the book. It deliberately does not
// auto-create the row the way POST does.
// PATCH /api/books/:id/mark
func (mc *MarksController) Update(c *gin.Context) {
	user := auth.CurrentUser(c)

	bookID, ok := mc.existingBookID(c)
	if !ok {
		return
	}

	var req markRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	mark, err := mc.marks.Update(user.ID, bookID, req.patch())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "mark")
			return
		}
		respondInternalError(c, err, "update mark")
		return
	}

	c.JSON(http.StatusOK, newMarkResponse(mark))
}

// Delete removes the caller's mark on a book.
// DELETE /api/books/:id/mark
func (mc *MarksController) Delete(c *gin.Context) {
	user := auth.CurrentUser(c)

	bookID, ok := mc.existingBookID(c)
	if !ok {
		return
	}

	if err := mc.marks.Delete(user.ID, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "mark")
			return
		}
		respondInternalError(c, err, "delete mark")
		return
	}

	c.Status(http.StatusNoContent)
}

// existingBookID parses the id parameter and confirms the book exists.
func (mc *MarksController) existingBookID(c *gin.Context) (uint, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return 0, false
	}
	if _, err := mc.books.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return 0, false
		}
		respondInternalError(c, err, "get book")
		return 0, false
	}
	return id, true
}
