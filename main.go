package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jubleh/storefront-core/cart"
	"github.com/jubleh/storefront-core/checkout"
	"github.com/jubleh/storefront-core/clients"
	"github.com/jubleh/storefront-core/controllers"
	"github.com/jubleh/storefront-core/gateway"
	"github.com/jubleh/storefront-core/initializers"
	"github.com/jubleh/storefront-core/middlewares"
	"github.com/jubleh/storefront-core/models"
	"github.com/jubleh/storefront-core/pricing"
	"github.com/jubleh/storefront-core/routes"
	"github.com/jubleh/storefront-core/storage"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	cartStorage, err := storage.NewGormStorage(initializers.DB)
	if err != nil {
		log.Fatal(err)
	}

	catalog := clients.NewCatalogClient(initializers.CatalogAPIBaseURL())
	orders := clients.NewOrderAPIClient(initializers.OrderAPIBaseURL())
	paystack := gateway.NewPaystackGateway(initializers.PaystackSecretKey())
	pricingEngine := pricing.NewEngine(initializers.ShippingFee(), initializers.FreeShippingThreshold())
	manualChannel := &checkout.EmailOrderChannel{
		Recipient:    os.Getenv("MANUAL_ORDER_EMAIL"),
		TemplatePath: os.Getenv("MANUAL_ORDER_TEMPLATE"),
	}

	sessions := middlewares.NewSessionManager(func(sessionID string) *middlewares.Session {
		cartStore := cart.NewStoreWithKey(cartStorage, models.CartStorageKey+":"+sessionID)
		return &middlewares.Session{
			ID:   sessionID,
			Cart: cartStore,
			Checkout: checkout.NewOrchestrator(
				cartStore,
				pricingEngine,
				orders,
				paystack,
				manualChannel,
				initializers.PaystackPublicKey(),
				initializers.Currency(),
			),
		}
	})

	handler := controllers.NewHandler(catalog, pricingEngine)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://www.jubleh.store"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(sessions.BindSession())

	routes.DefaultRoutes(server, handler)
	routes.ProductRoutes(server, handler)
	routes.CartRoutes(server, handler)
	routes.CheckoutRoutes(server, handler)
	server.Run()
}
