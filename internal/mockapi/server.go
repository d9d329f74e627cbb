package mockapi

// server.go wires the gin engine for the development backend. It mirrors the
// production API's surface under /api closely enough that the client cannot
// tell the difference, while keeping everything in memory.

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mindfulreader/internal/api"
)

// Options configures the mock server.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Seed      bool
}

// Server is the in-memory Mindful Reader backend.
type Server struct {
	store     *Store
	jwtSecret string
	tokenTTL  time.Duration
	engine    *gin.Engine
}

// New builds the server and registers all routes.
func New(opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	s := &Server{
		store:     NewStore(),
		jwtSecret: opts.JWTSecret,
		tokenTTL:  opts.TokenTTL,
	}
	if opts.Seed {
		s.seed()
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	s.registerRoutes(engine.Group("/api"))
	s.engine = engine
	return s
}

// Handler exposes the server as an http.Handler for httptest and cmd/mock-api.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts serving on addr.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) registerRoutes(r *gin.RouterGroup) {
	// Public catalogue reads
	r.GET("/books", s.listBooks)
	r.GET("/books/:id", s.getBook)
	r.GET("/books/author/:authorId", s.listBooksByAuthor)
	r.GET("/authors", s.listAuthors)
	r.GET("/authors/:id", s.getAuthor)
	r.GET("/ratings/book/:bookId", s.listRatingsByBook)
	r.GET("/ratings/book/:bookId/average", s.averageRating)
	r.GET("/ratings/user/:userId", s.listRatingsByUser)

	// Account
	r.POST("/auth/register", s.register)
	r.POST("/auth/login", s.login)

	// Credentialed
	auth := r.Group("", s.authMiddleware())
	auth.POST("/ratings", s.upsertRating)
	auth.GET("/users/:id", s.getUser)
	auth.PUT("/users/:id", s.updateUser)

	admin := auth.Group("", requireAdmin())
	admin.POST("/books", s.createBook)
	admin.PUT("/books/:id", s.updateBook)
	admin.DELETE("/books/:id", s.deleteBook)
	admin.POST("/authors", s.createAuthor)
	admin.PUT("/authors/:id", s.updateAuthor)
	admin.DELETE("/authors/:id", s.deleteAuthor)
}

func listQuery(c *gin.Context) (offset, limit int, orderBy string) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	return offset, limit, c.Query("orderBy")
}

/* ---------- books ---------- */

// GET /api/books?offset&limit&orderBy&title
func (s *Server) listBooks(c *gin.Context) {
	offset, limit, orderBy := listQuery(c)
	items, hasMore := s.store.listBooks(offset, limit, orderBy, c.Query("title"))
	c.JSON(http.StatusOK, api.PagedBooks{Items: items, HasMore: hasMore})
}

// GET /api/books/:id
func (s *Server) getBook(c *gin.Context) {
	book, err := s.store.getBook(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, book)
}

// GET /api/books/author/:authorId?offset&limit&orderBy
func (s *Server) listBooksByAuthor(c *gin.Context) {
	offset, limit, orderBy := listQuery(c)
	items, hasMore := s.store.listBooksByAuthor(c.Param("authorId"), offset, limit, orderBy)
	c.JSON(http.StatusOK, api.PagedBooks{Items: items, HasMore: hasMore})
}

// POST /api/books
func (s *Server) createBook(c *gin.Context) {
	var in api.Book
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if in.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}
	c.JSON(http.StatusCreated, s.store.createBook(in))
}

// PUT /api/books/:id
func (s *Server) updateBook(c *gin.Context) {
	var in api.Book
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	book, err := s.store.updateBook(c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, book)
}

// DELETE /api/books/:id
func (s *Server) deleteBook(c *gin.Context) {
	if err := s.store.deleteBook(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- authors ---------- */

// GET /api/authors?offset&limit&orderBy&name
func (s *Server) listAuthors(c *gin.Context) {
	offset, limit, orderBy := listQuery(c)
	items, hasMore := s.store.listAuthors(offset, limit, orderBy, c.Query("name"))
	c.JSON(http.StatusOK, api.PagedAuthors{Items: items, HasMore: hasMore})
}

// GET /api/authors/:id
func (s *Server) getAuthor(c *gin.Context) {
	author, err := s.store.getAuthor(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, author)
}

// POST /api/authors
func (s *Server) createAuthor(c *gin.Context) {
	var in api.Author
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if in.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "fullName is required"})
		return
	}
	c.JSON(http.StatusCreated, s.store.createAuthor(in))
}

// PUT /api/authors/:id
func (s *Server) updateAuthor(c *gin.Context) {
	var in api.Author
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	author, err := s.store.updateAuthor(c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, author)
}

// DELETE /api/authors/:id
func (s *Server) deleteAuthor(c *gin.Context) {
	if err := s.store.deleteAuthor(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- ratings ---------- */

// POST /api/ratings — add-or-replace the caller's reflection for a book.
func (s *Server) upsertRating(c *gin.Context) {
	var in api.Review
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	// The session owner writes, whatever userId the payload claims.
	in.UserID = c.GetString("userID")
	if in.Review == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "review text is required"})
		return
	}
	saved, err := s.store.upsertRating(in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GET /api/ratings/book/:bookId
func (s *Server) listRatingsByBook(c *gin.Context) {
	c.JSON(http.StatusOK, api.ReviewList{Items: s.store.ratingsByBook(c.Param("bookId"))})
}

// GET /api/ratings/user/:userId
func (s *Server) listRatingsByUser(c *gin.Context) {
	c.JSON(http.StatusOK, api.ReviewList{Items: s.store.ratingsByUser(c.Param("userId"))})
}

// GET /api/ratings/book/:bookId/average
func (s *Server) averageRating(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.averageRating(c.Param("bookId")))
}

/* ---------- account ---------- */

type registerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Nationality string `json:"nationality"`
}

// POST /api/auth/register
func (s *Server) register(c *gin.Context) {
	var in registerRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not hash password"})
		return
	}
	u, err := s.store.createUser(in.Name, in.Email, in.Nationality, hash, "USER")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u.User)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// sessionPayload is what the client persists as its session blob.
type sessionPayload struct {
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Nationality string `json:"nationality,omitempty"`
}

// POST /api/auth/login
func (s *Server) login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	u, err := s.store.userByEmail(in.Email)
	if err != nil || !checkPassword(u.PasswordHash, in.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}
	token, err := s.issueToken(u.UserID, u.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, sessionPayload{
		Token:       token,
		UserID:      u.UserID,
		Role:        u.Role,
		Name:        u.Name,
		Email:       u.Email,
		Nationality: u.Nationality,
	})
}

/* ---------- users ---------- */

// GET /api/users/:id
func (s *Server) getUser(c *gin.Context) {
	id := c.Param("id")
	if id != c.GetString("userID") && c.GetString("userRole") != "ADMIN" {
		c.JSON(http.StatusForbidden, gin.H{"message": "cannot read another user's profile"})
		return
	}
	u, err := s.store.getUser(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u.User)
}

// PUT /api/users/:id
func (s *Server) updateUser(c *gin.Context) {
	id := c.Param("id")
	if id != c.GetString("userID") && c.GetString("userRole") != "ADMIN" {
		c.JSON(http.StatusForbidden, gin.H{"message": "cannot edit another user's profile"})
		return
	}
	var in api.User
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	u, err := s.store.updateUser(id, in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u.User)
}
