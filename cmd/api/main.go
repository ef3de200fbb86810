package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"extremefit-api/internal/config"
	"extremefit-api/internal/handler"
	"extremefit-api/internal/middleware"
	"extremefit-api/internal/model"
	"extremefit-api/internal/payment"
	"extremefit-api/internal/repository"
	"extremefit-api/internal/service"
	"extremefit-api/internal/ws"
	"extremefit-api/pkg/database"
	"extremefit-api/pkg/webhooksig"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to parse config: ", err)
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a separate migration tool in production)
	db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Product{},
		&model.CartItem{}, &model.WishlistItem{}, &model.Address{},
		&model.Order{}, &model.OrderItem{}, &model.WebhookEvent{},
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	cartRepo := repository.NewCartRepo(db)
	wishlistRepo := repository.NewWishlistRepo(db)
	addressRepo := repository.NewAddressRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	eventRepo := repository.NewWebhookEventRepo(db)

	paypalClient := payment.NewPaypalClient(&cfg.Paypal)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	cartService := service.NewCartService(cartRepo, productRepo, db)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)
	addressService := service.NewAddressService(addressRepo, db)
	orderService := service.NewOrderService(orderRepo, cartRepo, addressRepo, db, wsHub)
	webhookService := service.NewWebhookService(userRepo, eventRepo)
	paypalService := service.NewPaypalService(paypalClient, orderRepo, eventRepo, wsHub, cfg.Paypal.Simulated)

	var verifier *webhooksig.Verifier
	if cfg.Clerk.WebhookSecret != "" {
		verifier, err = webhooksig.NewVerifier(cfg.Clerk.WebhookSecret)
		if err != nil {
			log.Fatal("Invalid CLERK_WEBHOOK_SECRET: ", err)
		}
	} else {
		log.Println("Warning: CLERK_WEBHOOK_SECRET not set, webhook signatures are NOT verified")
	}

	if cfg.Paypal.WebhookID == "" && !cfg.Paypal.Simulated {
		log.Println("Warning: PAYPAL_WEBHOOK_ID not set, PayPal webhook deliveries will be rejected")
	}

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	addressHandler := handler.NewAddressHandler(addressService)
	orderHandler := handler.NewOrderHandler(orderService)
	webhookHandler := handler.NewWebhookHandler(webhookService, verifier)
	paypalHandler := handler.NewPaypalHandler(paypalService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Extreme Fit API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// Webhooks (signature-verified, not token-authed)
	api.Post("/webhooks/clerk", webhookHandler.HandleClerk)
	api.Post("/paypal/webhook", paypalHandler.HandleWebhook)
	api.Get("/paypal/success", paypalHandler.HandleSuccess)

	// Catalog browsing
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/search", productHandler.SearchProducts)
	api.Get("/products/genders", productHandler.GetGenders)
	api.Get("/products/category/:categoryId", productHandler.GetProductsByCategory)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/categories", categoryHandler.GetCategories)
	api.Get("/categories/:gender", categoryHandler.GetCategoriesByGender)

	// ============ PROTECTED ROUTES ============
	// Storefront routes take a customer token; admin routes take a
	// backoffice token (per-route, the paths interleave)
	userAuth := middleware.RequireUser(userRepo)
	adminAuth := middleware.RequireAdmin(userRepo)

	api.Get("/users/me", userAuth, userHandler.Me)
	api.Get("/users", adminAuth, userHandler.GetUsers)
	api.Get("/users/:id", adminAuth, userHandler.GetUser)
	api.Post("/users", adminAuth, userHandler.CreateUser)
	api.Put("/users/:id", adminAuth, userHandler.UpdateUser)
	api.Delete("/users/:id", adminAuth, userHandler.DeleteUser)

	api.Get("/cart/:userId", userAuth, cartHandler.GetCart)
	api.Post("/cart/add", userAuth, cartHandler.AddToCart)
	api.Put("/cart/update", userAuth, cartHandler.UpdateCartItem)
	api.Delete("/cart/remove", userAuth, cartHandler.RemoveFromCart)
	api.Delete("/cart/clear/:userId", userAuth, cartHandler.ClearCart)

	api.Get("/wishlist/:userId", userAuth, wishlistHandler.GetWishlist)
	api.Get("/wishlist/:userId/:productId", userAuth, wishlistHandler.GetWishlistItem)
	api.Post("/wishlist/add", userAuth, wishlistHandler.AddToWishlist)
	api.Delete("/wishlist/remove", userAuth, wishlistHandler.RemoveFromWishlist)

	api.Get("/addresses/user/:userId", userAuth, addressHandler.GetAddresses)
	api.Post("/addresses/user/:userId", userAuth, addressHandler.CreateAddress)
	api.Put("/addresses/:addressId", userAuth, addressHandler.UpdateAddress)
	api.Delete("/addresses/:addressId", userAuth, addressHandler.DeleteAddress)

	api.Get("/orders", adminAuth, orderHandler.GetOrders)
	api.Get("/orders/user/:userId", userAuth, orderHandler.GetOrdersByUser)
	api.Get("/orders/:id/details", userAuth, orderHandler.GetOrderDetails)
	api.Get("/orders/:id/items", userAuth, orderHandler.GetOrderItems)
	api.Post("/orders/:id/items", userAuth, orderHandler.CreateOrderItem)
	api.Get("/orders/:id", userAuth, orderHandler.GetOrder)
	api.Post("/orders", userAuth, orderHandler.CreateOrder)
	api.Post("/checkout", userAuth, orderHandler.Checkout)
	api.Post("/paypal/pay", userAuth, paypalHandler.Pay)

	api.Post("/products", adminAuth, productHandler.CreateProduct)
	api.Put("/products/:id", adminAuth, productHandler.UpdateProduct)
	api.Delete("/products/:id", adminAuth, productHandler.DeleteProduct)

	// WebSocket Route (live order feed)
	app.Use("/ws/orders", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws/orders", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default backoffice account if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@extremefit.dev"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:     email,
		FirstName: "Store",
		LastName:  "Administrator",
		IsAdmin:   true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", email)
	}
}
