package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booklist/internal/database/marks"
)

func TestMarksController_Set_CreatesMark(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")
	_, token := app.registerUser(t, "reader")

	w := app.doJSON(t, "POST", "/api/books/"+itoa(book.ID)+"/mark", token, map[string]any{
		"read": true,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["read"])
	assert.Equal(t, false, body["bought"])
	assert.Equal(t, false, body["onBookshelf"])
	assert.Equal(t, float64(book.ID), body["book_id"])
}

func TestMarksController_Set_MergesExisting(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")
	_, token := app.registerUser(t, "reader")

	first := app.doJSON(t, "POST", "/api/books/"+itoa(book.ID)+"/mark", token, map[string]any{
		"read": true,
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// Second POST merges and answers 200, not 201
	second := app.doJSON(t, "POST", "/api/books/"+itoa(book.ID)+"/mark", token, map[string]any{
		"bought": true,
	})
	require.Equal(t, http.StatusOK, second.Code)
	body := decodeBody(t, second)
	assert.Equal(t, true, body["bought"])
	assert.Equal(t, true, body["read"], "omitted flag keeps its stored value")
}

func TestMarksController_Set_ExplicitFalseClearsFlag(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")
	_, token := app.registerUser(t, "reader")

	app.doJSON(t, "POST", "/api/books/"+itoa(book.ID)+"/mark", token, map[string]any{"read": true})
	w := app.doJSON(t, "POST", "/api/books/"+itoa(book.ID)+"/mark", token, map[string]any{"read": false})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["read"])
}

func TestMarksController_Set_UnknownBook(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	_, token := app.registerUser(t, "reader")

	w := app.doJSON(t, "POST", "/api/books/999/mark", token, map[string]any{"read": true})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarksController_Set_RequiresAuth(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")

	w := app.doJSON(t, "POST", "/api/books/"+itoa(book.ID)+"/mark", "", map[string]any{"read": true})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMarksController_Update_RequiresExistingMark(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")
	_, token := app.registerUser(t, "reader")

	// PATCH never auto-creates the way POST does
	w := app.doJSON(t, "PATCH", "/api/books/"+itoa(book.ID)+"/mark", token, map[string]any{
		"read": true,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarksController_Update_MergesFlags(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")
	_, token := app.registerUser(t, "reader")

	app.doJSON(t, "POST", "/api/books/"+itoa(book.ID)+"/mark", token, map[string]any{"bought": true})

	w := app.doJSON(t, "PATCH", "/api/books/"+itoa(book.ID)+"/mark", token, map[string]any{
		"onBookshelf": true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["onBookshelf"])
	assert.Equal(t, true, body["bought"])
	assert.Equal(t, false, body["read"])
}

func TestMarksController_MarksAreScopedToCaller(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")

	alice, aliceToken := app.registerUser(t, "alice")
	_, bobToken := app.registerUser(t, "bob")

	w := app.doJSON(t, "POST", "/api/books/"+itoa(book.ID)+"/mark", aliceToken, map[string]any{
		"read": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Bob never marked the book, so his PATCH finds nothing
	bobPatch := app.doJSON(t, "PATCH", "/api/books/"+itoa(book.ID)+"/mark", bobToken, map[string]any{
		"read": false,
	})
	assert.Equal(t, http.StatusNotFound, bobPatch.Code)

	mark, err := app.marks.Get(alice.ID, book.ID)
	require.NoError(t, err)
	assert.True(t, mark.Read)
}

func TestMarksController_Delete(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	owner, _ := app.registerUser(t, "owner")
	book := app.createBook(t, owner, "Dune", "Frank Herbert")
	reader, token := app.registerUser(t, "reader")

	_, _, err := app.marks.Upsert(reader.ID, book.ID, marks.Patch{Read: markTrue(true)})
	require.NoError(t, err)

	w := app.doJSON(t, "DELETE", "/api/books/"+itoa(book.ID)+"/mark", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	again := app.doJSON(t, "DELETE", "/api/books/"+itoa(book.ID)+"/mark", token, nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}
