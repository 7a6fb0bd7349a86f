package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booklist/internal/database/marks"
	"github.com/mrlokans/booklist/internal/entities"
)

func markTrue(v bool) *bool { return &v }

func TestBooksController_List_Anonymous(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	app.createBook(t, owner, "Dune", "Frank Herbert")

	w := app.doJSON(t, "GET", "/api/books", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Dune", list[0]["title"])
	assert.Nil(t, list[0]["user_mark"])

	bookOwner := list[0]["user"].(map[string]any)
	assert.Equal(t, "owner", bookOwner["username"])
	assert.NotContains(t, bookOwner, "password_hash")
}

func TestBooksController_List_AuthenticatedSeesOwnMarks(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")
	other := app.createBook(t, owner, "Foundation", "Isaac Asimov")

	reader, token := app.registerUser(t, "reader")
	_, _, err := app.marks.Upsert(reader.ID, book.ID, marks.Patch{Read: markTrue(true)})
	require.NoError(t, err)

	w := app.doJSON(t, "GET", "/api/books", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 2)

	marksByTitle := map[string]any{}
	for _, entry := range list {
		marksByTitle[entry["title"].(string)] = entry["user_mark"]
	}
	require.NotNil(t, marksByTitle["Dune"])
	assert.Equal(t, true, marksByTitle["Dune"].(map[string]any)["read"])
	assert.Nil(t, marksByTitle["Foundation"], "unmarked book %d has no user_mark", other.ID)
}

func TestBooksController_List_Search(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	app.createBook(t, owner, "Dune", "Frank Herbert")
	app.createBook(t, owner, "Foundation", "Isaac Asimov")

	w := app.doJSON(t, "GET", "/api/books?search=asimov", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Foundation", list[0]["title"])
}

func TestBooksController_Create(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	user, token := app.registerUser(t, "reader")

	w := app.doJSON(t, "POST", "/api/books", token, map[string]any{
		"title":       "Dune",
		"author":      "Frank Herbert",
		"description": "Desert planet",
		"genre":       "Sci-Fi",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Dune", body["title"])
	assert.Equal(t, float64(user.ID), body["user"].(map[string]any)["id"])
}

func TestBooksController_Create_OwnerIsAlwaysCaller(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	victim, _ := app.registerUser(t, "victim")
	user, token := app.registerUser(t, "reader")

	// A user field in the payload is ignored on the non-admin endpoint
	w := app.doJSON(t, "POST", "/api/books", token, map[string]any{
		"title":       "Dune",
		"author":      "Frank Herbert",
		"description": "Desert planet",
		"user":        victim.ID,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(user.ID), body["user"].(map[string]any)["id"])
}

func TestBooksController_Create_RequiresAuth(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	w := app.doJSON(t, "POST", "/api/books", "", map[string]any{
		"title":       "Dune",
		"author":      "Frank Herbert",
		"description": "Desert planet",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBooksController_Create_ValidationErrors(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	_, token := app.registerUser(t, "reader")

	w := app.doJSON(t, "POST", "/api/books", token, map[string]any{"genre": "Sci-Fi"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	details := decodeBody(t, w)["details"].(map[string]any)
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "author")
	assert.Contains(t, details, "description")
}

func TestBooksController_Get(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")

	w := app.doJSON(t, "GET", "/api/books/"+itoa(book.ID), "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dune", decodeBody(t, w)["title"])
}

func TestBooksController_Get_NotFound(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	w := app.doJSON(t, "GET", "/api/books/999", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooksController_Update_OwnerOnly(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, ownerToken := app.registerUser(t, "owner")
	_, otherToken := app.registerUser(t, "other")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")

	forbidden := app.doJSON(t, "PATCH", "/api/books/"+itoa(book.ID), otherToken, map[string]any{
		"genre": "Sci-Fi",
	})
	require.Equal(t, http.StatusForbidden, forbidden.Code)

	w := app.doJSON(t, "PATCH", "/api/books/"+itoa(book.ID), ownerToken, map[string]any{
		"genre": "Sci-Fi",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Sci-Fi", body["genre"])
	// Untouched fields survive a partial update
	assert.Equal(t, "Dune", body["title"])
}

func TestBooksController_Update_UnknownBook(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	_, token := app.registerUser(t, "reader")

	w := app.doJSON(t, "PATCH", "/api/books/999", token, map[string]any{"genre": "Sci-Fi"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooksController_Delete(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, ownerToken := app.registerUser(t, "owner")
	_, otherToken := app.registerUser(t, "other")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")

	forbidden := app.doJSON(t, "DELETE", "/api/books/"+itoa(book.ID), otherToken, nil)
	require.Equal(t, http.StatusForbidden, forbidden.Code)

	w := app.doJSON(t, "DELETE", "/api/books/"+itoa(book.ID), ownerToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	gone := app.doJSON(t, "GET", "/api/books/"+itoa(book.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestBooksController_Delete_CascadesMarks(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, ownerToken := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")

	reader, _ := app.registerUser(t, "reader")
	_, _, err := app.marks.Upsert(reader.ID, book.ID, marks.Patch{Read: markTrue(true)})
	require.NoError(t, err)

	w := app.doJSON(t, "DELETE", "/api/books/"+itoa(book.ID), ownerToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	app.db.DB.Model(&entities.UserBook{}).Count(&count)
	assert.Zero(t, count)
}

func TestBooksController_UploadAndServeCover(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, token := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("cover", "cover.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", "/api/books/"+itoa(book.ID)+"/cover", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	stored := decodeBody(t, w)["cover"].(string)
	assert.NotEmpty(t, stored)
	assert.NotEqual(t, "cover.jpg", stored)

	served := app.doJSON(t, "GET", "/api/books/"+itoa(book.ID)+"/cover", "", nil)
	require.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, "fake image bytes", served.Body.String())
}

func TestBooksController_GetCover_RedirectsToExternalURL(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := &entities.Book{
		UserID:      owner.ID,
		Title:       "Dune",
		Author:      "Frank Herbert",
		Description: "Desert planet",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780441013593-L.jpg",
	}
	require.NoError(t, app.books.Create(book))

	w := app.doJSON(t, "GET", "/api/books/"+itoa(book.ID)+"/cover", "", nil)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, book.CoverURL, w.Header().Get("Location"))
}

func TestBooksController_GetCover_NotFound(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")

	w := app.doJSON(t, "GET", "/api/books/"+itoa(book.ID)+"/cover", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
