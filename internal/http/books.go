package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/booklist/internal/auth"
	"github.com/mrlokans/booklist/internal/covers"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/database/marks"
	"github.com/mrlokans/booklist/internal/entities"
)

// BooksController handles the public catalog and owner-only mutations.
type BooksController struct {
	books  *books.Repository
	marks  *marks.Repository
	covers *covers.Store
}

// NewBooksController creates a new books controller.
func NewBooksController(bookRepo *books.Repository, markRepo *marks.Repository, coverStore *covers.Store) *BooksController {
	return &BooksController{
		books:  bookRepo,
		marks:  markRepo,
		covers: coverStore,
	}
}

type createBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	ISBN        string `json:"isbn"`
	Genre       string `json:"genre"`
	CoverURL    string `json:"coverUrl"`
}

func (r createBookRequest) validate() map[string]string {
	fieldErrs := map[string]string{}
	if r.Title == "" {
		fieldErrs["title"] = "this field is required"
	}
	if r.Author == "" {
		fieldErrs["author"] = "this field is required"
	}
	if r.Description == "" {
		fieldErrs["description"] = "this field is required"
	}
	return fieldErrs
}

type updateBookRequest struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	ISBN        *string `json:"isbn"`
	Genre       *string `json:"genre"`
	CoverURL    *string `json:"coverUrl"`
}

// fields returns only the columns present in the payload.
func (r updateBookRequest) fields() map[string]any {
	fields := map[string]any{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Author != nil {
		fields["author"] = *r.Author
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.ISBN != nil {
		fields["isbn"] = *r.ISBN
	}
	if r.Genre != nil {
		fields["genre"] = *r.Genre
	}
	if r.CoverURL != nil {
		fields["cover_url"] = *r.CoverURL
	}
	return fields
}

// List returns the whole catalog ordered by author. Anonymous callers get
// user_mark: null on every entry; authenticated callers see their own marks.
// GET /api/books
func (bc *BooksController) List(c *gin.Context) {
	var (
		all []entities.Book
		err error
	)
	if query := c.Query("search"); query != "" {
		all, err = bc.books.Search(query)
	} else {
		all, err = bc.books.GetAll()
	}
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	userMarks := map[uint]entities.UserBook{}
	if user := auth.CurrentUser(c); user != nil {
		userMarks, err = bc.marks.GetAllForUser(user.ID)
		if err != nil {
			respondInternalError(c, err, "load marks")
			return
		}
	}

	responses := make([]BookResponse, 0, len(all))
	for i := range all {
		var mark *entities.UserBook
		if m, ok := userMarks[all[i].ID]; ok {
			mark = &m
		}
		responses = append(responses, newBookResponse(&all[i], mark))
	}

	c.JSON(http.StatusOK, responses)
}

// Create adds a book owned by the calling user. The owner is always the
// authenticated caller, never client input.
// POST /api/books
func (bc *BooksController) Create(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if fieldErrs := req.validate(); len(fieldErrs) > 0 {
		respondValidationErrors(c, fieldErrs)
		return
	}

	book := &entities.Book{
		UserID:      user.ID,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		ISBN:        req.ISBN,
		Genre:       req.Genre,
		CoverURL:    req.CoverURL,
	}
	if err := bc.books.Create(book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, newBookResponse(book, nil))
}

// Get returns a single book; public like the listing.
// GET /api/books/:id
func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.books.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}

	var mark *entities.UserBook
	if user := auth.CurrentUser(c); user != nil {
		if m, err := bc.marks.Get(user.ID, book.ID); err == nil {
			mark = m
		}
	}

	c.JSON(http.StatusOK, newBookResponse(book, mark))
}

// Update applies a partial update to a book the caller owns.
// PATCH /api/books/:id
func (bc *BooksController) Update(c *gin.Context) {
	book, ok := bc.ownedBook(c)
	if !ok {
		return
	}

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	fields := req.fields()
	if len(fields) == 0 {
		c.JSON(http.StatusOK, newBookResponse(book, nil))
		return
	}

	updated, err := bc.books.Update(book.ID, fields)
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	c.JSON(http.StatusOK, newBookResponse(updated, nil))
}

// Delete removes a book the caller owns. Mark rows cascade; the stored
// cover file is pruned as well.
// DELETE /api/books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	book, ok := bc.ownedBook(c)
	if !ok {
		return
	}

	if err := bc.books.Delete(book.ID); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	if err := bc.covers.Remove(book.Cover); err != nil {
		log.Printf("Failed to remove cover for book %d: %v", book.ID, err)
	}

	c.Status(http.StatusNoContent)
}

// UploadCover stores a cover image for a book the caller owns. The file is
// saved under a generated name; the original filename is discarded.
// POST /api/books/:id/cover
func (bc *BooksController) UploadCover(c *gin.Context) {
	book, ok := bc.ownedBook(c)
	if !ok {
		return
	}

	file, err := c.FormFile("cover")
	if err != nil {
		respondBadRequest(c, "cover file is required")
		return
	}

	filename, err := bc.covers.Save(file)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	previous := book.Cover
	updated, err := bc.books.Update(book.ID, map[string]any{"cover": filename})
	if err != nil {
		respondInternalError(c, err, "save cover")
		return
	}
	if previous != "" {
		if err := bc.covers.Remove(previous); err != nil {
			log.Printf("Failed to remove previous cover for book %d: %v", book.ID, err)
		}
	}

	c.JSON(http.StatusOK, newBookResponse(updated, nil))
}

// GetCover serves a stored cover, falling back to the external cover link.
// GET /api/books/:id/cover
func (bc *BooksController) GetCover(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.books.GetByID(id)
	if err != nil {
		respondNotFound(c, "book")
		return
	}

	if book.Cover != "" {
		if path, err := bc.covers.Path(book.Cover); err == nil {
			c.File(path)
			return
		}
	}
	if book.CoverURL != "" {
		c.Redirect(http.StatusTemporaryRedirect, book.CoverURL)
		return
	}

	respondNotFound(c, "cover")
}

// ownedBook loads the book from the id parameter and enforces ownership.
// 404 for an unknown id, 403 when the caller is not the owner.
func (bc *BooksController) ownedBook(c *gin.Context) (*entities.Book, bool) {
	user := auth.CurrentUser(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	book, err := bc.books.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return nil, false
		}
		respondInternalError(c, err, "get book")
		return nil, false
	}

	if book.UserID != user.ID {
		respondForbidden(c, "you do not own this book")
		return nil, false
	}

	return book, true
}
