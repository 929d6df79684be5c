package http

import (
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookcatalog/internal/bookstore"
	"bookcatalog/internal/stockmanager"
	"bookcatalog/internal/transport/http/adminauth"
	"bookcatalog/pkg/jwt"
)

// NewRouter wires the full HTTP surface: a public customer group over
// store, and an operator group over manager gated by adminauth.
func NewRouter(store *bookstore.BookStore, manager *stockmanager.StockManager, tokens *jwt.Manager) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(), RequestID(), Logger())

	bookstoreHandler := NewBookstoreHandler(store)
	stockManagerHandler := NewStockManagerHandler(manager)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler())

		books := v1.Group("/books")
		{
			books.GET("", bookstoreHandler.GetBooks)
			books.GET("/editor-picks", bookstoreHandler.GetEditorPicks)
			books.GET("/top-rated", bookstoreHandler.GetTopRatedBooks)
		}

		v1.POST("/purchases", bookstoreHandler.BuyBooks)
		v1.POST("/ratings", bookstoreHandler.RateBooks)

		admin := v1.Group("/admin/books")
		admin.Use(adminauth.RequireOperator(tokens))
		{
			admin.POST("", stockManagerHandler.AddBooks)
			admin.POST("/copies", stockManagerHandler.AddCopies)
			admin.GET("", stockManagerHandler.GetAllBooks)
			admin.GET("/lookup", stockManagerHandler.GetBooksByISBN)
			admin.PUT("/editor-picks", stockManagerHandler.UpdateEditorPicks)
			admin.DELETE("", stockManagerHandler.RemoveBooks)
			admin.DELETE("/all", stockManagerHandler.RemoveAllBooks)
			admin.GET("/in-demand", stockManagerHandler.GetBooksInDemand)
		}
	}

	return router
}

func healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
