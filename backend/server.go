package backend

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type messageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type faqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// NewRouter returns a gin engine with request logging, panic recovery and
// the backend routes mounted under /api.
func NewRouter(b Backend) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	Register(r.Group("/api"), b)
	return r
}

// Register mounts the backend routes on rg:
//
//	POST /messages        submit a contact message
//	GET  /messages        list messages
//	GET  /faq             list FAQ entries
//	POST /faq             add an entry
//	POST /faq/seed        install the built-in entries
//	GET  /faq/answer?q=   keyword lookup
//	GET  /visitors        read the visitor counter
//	POST /visitors        increment it
func Register(rg gin.IRoutes, b Backend) {
	rg.POST("/messages", func(c *gin.Context) {
		var req messageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		if err := b.SubmitMessage(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": "ok"})
	})

	rg.GET("/messages", func(c *gin.Context) {
		msgs, err := b.GetMessages(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, msgs)
	})

	rg.GET("/faq", func(c *gin.Context) {
		entries, err := b.GetAllFAQEntries(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	})

	rg.POST("/faq", func(c *gin.Context) {
		var req faqRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question and answer are required"})
			return
		}
		if err := b.AddFAQEntry(c.Request.Context(), req.Question, req.Answer); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": "ok"})
	})

	rg.POST("/faq/seed", func(c *gin.Context) {
		if err := b.AddInitialFAQEntries(c.Request.Context()); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rg.GET("/faq/answer", func(c *gin.Context) {
		answer, ok, err := b.GetFAQAnswer(c.Request.Context(), c.Query("q"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no matching entry"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"answer": answer})
	})

	rg.GET("/visitors", func(c *gin.Context) {
		n, err := b.GetVisitorCount(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": n})
	})

	rg.POST("/visitors", func(c *gin.Context) {
		n, err := b.IncrementVisitorCount(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": n})
	})
}

// fail maps a backend error onto a JSON error response.
func fail(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidMessage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("backend: %s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
