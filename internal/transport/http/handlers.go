package http

import (
	"errors"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bookcatalog/internal/bookstore"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/shared/response"
	"bookcatalog/internal/stockmanager"
)

// BookstoreHandler adapts a bookstore.BookStore to gin handlers (spec §4.5
// customer surface).
type BookstoreHandler struct {
	store *bookstore.BookStore
}

// NewBookstoreHandler wraps store.
func NewBookstoreHandler(store *bookstore.BookStore) *BookstoreHandler {
	return &BookstoreHandler{store: store}
}

// StockManagerHandler adapts a stockmanager.StockManager to gin handlers
// (spec §4.5 operator surface).
type StockManagerHandler struct {
	manager *stockmanager.StockManager
}

// NewStockManagerHandler wraps manager.
func NewStockManagerHandler(manager *stockmanager.StockManager) *StockManagerHandler {
	return &StockManagerHandler{manager: manager}
}

func parseISBNList(raw string) ([]int32, error) {
	if raw == "" {
		return nil, errors.New("isbns is required")
	}
	parts := strings.Split(raw, ",")
	out := make([]int32, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, int32(n))
	}
	return out, nil
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, catalog.ErrInvalidArgument), errors.Is(err, catalog.ErrNullInput):
		return nethttp.StatusBadRequest
	case errors.Is(err, catalog.ErrNotInStock):
		return nethttp.StatusNotFound
	case errors.Is(err, catalog.ErrDuplicate):
		return nethttp.StatusConflict
	case errors.Is(err, catalog.ErrOutOfStock):
		return nethttp.StatusConflict
	case errors.Is(err, catalog.ErrUnsupported):
		return nethttp.StatusNotImplemented
	default:
		return nethttp.StatusInternalServerError
	}
}

// writeCatalogError maps a catalog-package sentinel error to the matching
// HTTP status and error envelope, following the teacher's bookErrorMap
// pattern (one table from domain error to transport response) adapted to
// this domain's sentinel set.
func writeCatalogError(c *gin.Context, err error) {
	status := statusForError(err)
	code := "CATALOG_ERROR"
	switch {
	case errors.Is(err, catalog.ErrInvalidArgument):
		code = "INVALID_ARGUMENT"
	case errors.Is(err, catalog.ErrNullInput):
		code = "NULL_INPUT"
	case errors.Is(err, catalog.ErrNotInStock):
		code = "NOT_IN_STOCK"
	case errors.Is(err, catalog.ErrDuplicate):
		code = "DUPLICATE"
	case errors.Is(err, catalog.ErrOutOfStock):
		code = "OUT_OF_STOCK"
	case errors.Is(err, catalog.ErrUnsupported):
		code = "UNSUPPORTED"
	}
	response.ErrorResponse(c, status, code, err.Error())
}

// --- Customer-facing routes ---

// GetBooks handles GET /books?isbns=1,2,3
func (h *BookstoreHandler) GetBooks(c *gin.Context) {
	isbns, err := parseISBNList(c.Query("isbns"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	books, err := h.store.GetBooks(isbns)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusOK, books)
}

// GetEditorPicks handles GET /books/editor-picks?k=10
func (h *BookstoreHandler) GetEditorPicks(c *gin.Context) {
	k, err := strconv.Atoi(c.DefaultQuery("k", "10"))
	if err != nil {
		response.BadRequest(c, "k must be an integer")
		return
	}
	books, err := h.store.GetEditorPicks(k)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusOK, books)
}

// GetTopRatedBooks handles GET /books/top-rated?k=10
func (h *BookstoreHandler) GetTopRatedBooks(c *gin.Context) {
	k, err := strconv.Atoi(c.DefaultQuery("k", "10"))
	if err != nil {
		response.BadRequest(c, "k must be an integer")
		return
	}
	books, err := h.store.GetTopRatedBooks(k)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusOK, books)
}

// purchaseRequest is the wire shape of POST /purchases: ISBN -> copy count.
type purchaseRequest struct {
	Lines map[string]int `json:"lines" binding:"required"`
}

// BuyBooks handles POST /purchases.
func (h *BookstoreHandler) BuyBooks(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	lines, err := toISBNIntMap(req.Lines)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.store.BuyBooks(lines); err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusOK, gin.H{"purchased": true})
}

// ratingRequest is the wire shape of POST /ratings: ISBN -> rating [0,5].
type ratingRequest struct {
	Ratings map[string]int `json:"ratings" binding:"required"`
}

// RateBooks handles POST /ratings.
func (h *BookstoreHandler) RateBooks(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ratings, err := toISBNIntMap(req.Ratings)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.store.RateBooks(ratings); err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusOK, gin.H{"rated": true})
}

func toISBNIntMap(raw map[string]int) (map[int32]int, error) {
	out := make(map[int32]int, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(k, 10, 32)
		if err != nil {
			return nil, err
		}
		out[int32(n)] = v
	}
	return out, nil
}

// --- Operator-facing routes ---

// newBookRequest is the wire shape of one entry in POST /admin/books.
type newBookRequest struct {
	ISBN   int32           `json:"isbn" binding:"required"`
	Title  string          `json:"title" binding:"required"`
	Author string          `json:"author" binding:"required"`
	Price  decimal.Decimal `json:"price" binding:"required"`
	Copies int             `json:"copies"`
}

// AddBooks handles POST /admin/books.
func (h *StockManagerHandler) AddBooks(c *gin.Context) {
	var req []newBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	books := make([]catalog.NewBook, 0, len(req))
	for _, r := range req {
		books = append(books, catalog.NewBook{
			ISBN:   r.ISBN,
			Title:  r.Title,
			Author: r.Author,
			Price:  r.Price,
			Copies: r.Copies,
		})
	}
	if err := h.manager.AddBooks(books); err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusCreated, gin.H{"added": len(books)})
}

// addCopiesRequest is the wire shape of POST /admin/books/copies: ISBN ->
// copy count to add.
type addCopiesRequest struct {
	Deltas map[string]int `json:"deltas" binding:"required"`
}

// AddCopies handles POST /admin/books/copies.
func (h *StockManagerHandler) AddCopies(c *gin.Context) {
	var req addCopiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	deltas, err := toISBNIntMap(req.Deltas)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.manager.AddCopies(deltas); err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusOK, gin.H{"updated": true})
}

// GetAllBooks handles GET /admin/books.
func (h *StockManagerHandler) GetAllBooks(c *gin.Context) {
	response.Success(c, nethttp.StatusOK, h.manager.GetBooks())
}

// GetBooksByISBN handles GET /admin/books/lookup?isbns=1,2,3.
func (h *StockManagerHandler) GetBooksByISBN(c *gin.Context) {
	isbns, err := parseISBNList(c.Query("isbns"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	books, err := h.manager.GetBooksByISBN(isbns)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusOK, books)
}

// editorPicksRequest is the wire shape of PUT /admin/books/editor-picks:
// ISBN -> desired flag value.
type editorPicksRequest struct {
	Picks map[string]bool `json:"picks" binding:"required"`
}

// UpdateEditorPicks handles PUT /admin/books/editor-picks.
func (h *StockManagerHandler) UpdateEditorPicks(c *gin.Context) {
	var req editorPicksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	picks := make(map[int32]bool, len(req.Picks))
	for k, v := range req.Picks {
		n, err := strconv.ParseInt(k, 10, 32)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		picks[int32(n)] = v
	}
	if err := h.manager.UpdateEditorPicks(picks); err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusOK, gin.H{"updated": true})
}

// RemoveBooks handles DELETE /admin/books?isbns=1,2,3.
func (h *StockManagerHandler) RemoveBooks(c *gin.Context) {
	isbns, err := parseISBNList(c.Query("isbns"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.manager.RemoveBooks(isbns); err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, nethttp.StatusOK, gin.H{"removed": len(isbns)})
}

// RemoveAllBooks handles DELETE /admin/books/all.
func (h *StockManagerHandler) RemoveAllBooks(c *gin.Context) {
	h.manager.RemoveAllBooks()
	response.Success(c, nethttp.StatusOK, gin.H{"removed": true})
}

// GetBooksInDemand handles GET /admin/books/in-demand.
func (h *StockManagerHandler) GetBooksInDemand(c *gin.Context) {
	response.Success(c, nethttp.StatusOK, h.manager.GetBooksInDemand())
}
