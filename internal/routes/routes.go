package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"toy-marketplace/internal/cache"
	"toy-marketplace/internal/handlers"
	"toy-marketplace/internal/logger"
	"toy-marketplace/internal/payments"
	"toy-marketplace/internal/repository"
)

// RegisterRoutes wires collections to repositories to handlers. The db
// handle and the payment client come in from main; nothing here holds
// global state.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, intents payments.IntentCreator, log *logger.Logger) {
	store := cache.New(5 * time.Minute)

	toys := handlers.NewToyHandler(repository.NewToyRepository(db.Collection("toys")), store, log)
	subcategories := handlers.NewSubcategoryHandler(repository.NewSubcategoryRepository(db.Collection("subcategories")), store, log)
	users := handlers.NewUserHandler(repository.NewUserRepository(db.Collection("users")), log)
	collection := handlers.NewCollectionHandler(repository.NewCollectionRepository(db.Collection("mycollection")), log)
	paymentsHandler := handlers.NewPaymentHandler(repository.NewPaymentRepository(db.Collection("payments")), intents, log)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Toy Marketplace Server Is Running")
	})

	router.GET("/subcategories", subcategories.ListSubcategories)

	router.GET("/toys", toys.ListToys)
	router.GET("/toys/search", toys.SearchToys)
	router.GET("/toys/subcategory/:name", toys.ListBySubcategory)
	router.GET("/toys/:id", toys.GetToy)
	router.POST("/toys", toys.CreateToy)
	router.PATCH("/toys/:id", toys.UpdateToy)
	router.PATCH("/toys/:id/decrement", toys.DecrementToy)
	router.DELETE("/toys/:id", toys.DeleteToy)

	router.GET("/mytoys", toys.ListMyToys)
	router.GET("/mytoys/sort", toys.SortMyToys)

	router.GET("/users/:email", users.GetUser)
	router.GET("/users/:email/owner", users.CheckOwner)
	router.POST("/users", users.CreateUser)

	router.GET("/mycollection", collection.ListMyCollection)
	router.GET("/mycollection/sort", collection.SortMyCollection)
	router.POST("/mycollection", collection.AddToCollection)

	router.POST("/payments/create-intent", paymentsHandler.CreateIntent)
	router.POST("/payments", paymentsHandler.RecordPayment)
}
