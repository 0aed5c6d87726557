package http

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"modakart.com/app/internal/config"
	"modakart.com/app/internal/http/cartcookie"
	"modakart.com/app/internal/http/handlers"
	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/mailer"
	"modakart.com/app/internal/modules/cart"
	"modakart.com/app/internal/modules/catalog"
	"modakart.com/app/internal/modules/categories"
	"modakart.com/app/internal/modules/email"
	"modakart.com/app/internal/modules/favorites"
	"modakart.com/app/internal/modules/orders"
	"modakart.com/app/internal/modules/users"
	"modakart.com/app/internal/storage"
)

type RouterDeps struct {
	Cfg     config.Config
	Logger  *slog.Logger
	DB      *gorm.DB
	Redis   *redis.Client
	Storage storage.Storage
	Mailer  mailer.Service
}

func NewRouter(d RouterDeps) *gin.Engine {
	if !d.Cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	secure := !d.Cfg.IsDev()

	catalogRepo := catalog.NewRepo(d.DB)
	categoriesRepo := categories.NewRepo(d.DB)
	usersRepo := users.NewRepo(d.DB)
	usersSvc := users.NewService(usersRepo)
	ordersRepo := orders.NewRepo(d.DB)
	ordersSvc := orders.NewService(ordersRepo)

	issuer := users.NewTokenIssuer(d.Cfg.JWTSecret, d.Cfg.JWTTTL)
	cookie := cartcookie.New(d.Cfg.CartSecret, "mk_cart", secure)

	carts := cart.NewManager(cart.NewRedisPersister(d.Redis), d.Logger)
	favs := favorites.NewManager(favorites.NewRedisPersister(d.Redis), d.Logger)
	notify := email.NewNotifier(d.Mailer, d.Cfg.MailFrom, d.Cfg.MailFromName, d.Logger)

	usersH := handlers.NewUsersHandler(usersSvc, usersRepo, issuer, notify, d.Cfg.CookName, secure)
	productsH := handlers.NewProductsHandler(catalogRepo, usersRepo)
	shopH := handlers.NewShopHandler(catalogRepo, d.Logger)
	categoriesH := handlers.NewCategoriesHandler(categoriesRepo)
	cartH := handlers.NewCartHandler(carts, catalogRepo, cookie)
	checkoutH := handlers.NewCheckoutHandler(ordersSvc, carts, cookie, usersRepo, notify)
	ordersH := handlers.NewOrdersHandler(ordersRepo)
	favoritesH := handlers.NewFavoritesHandler(favs, catalogRepo, cookie)
	uploadsH := handlers.NewUploadsHandler(d.Storage)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	// ErrorHandler wraps Recovery so a recovered panic still gets a JSON body
	r.Use(middleware.ErrorHandler(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Authenticate(issuer, d.Cfg.CookName))

	api := r.Group("/api")

	u := api.Group("/users")
	{
		u.POST("", usersH.Register)
		u.POST("/auth", usersH.Login)
		u.POST("/logout", usersH.Logout)
		u.GET("/profile", middleware.RequireAuth(), usersH.Profile)
		u.PUT("/profile", middleware.RequireAuth(), usersH.UpdateProfile)

		u.GET("", middleware.RequireAdmin(), usersH.List)
		u.GET("/:id", middleware.RequireAdmin(), usersH.Get)
		u.PUT("/:id", middleware.RequireAdmin(), usersH.Update)
		u.DELETE("/:id", middleware.RequireAdmin(), usersH.Delete)
	}

	cat := api.Group("/category")
	{
		cat.GET("", categoriesH.List)
		cat.GET("/:id", categoriesH.Get)
		cat.POST("", middleware.RequireAdmin(), categoriesH.Create)
		cat.PUT("/:id", middleware.RequireAdmin(), categoriesH.Update)
		cat.DELETE("/:id", middleware.RequireAdmin(), categoriesH.Delete)
	}

	p := api.Group("/products")
	{
		p.GET("", productsH.List)
		p.GET("/top", productsH.TopRated)
		p.GET("/new", productsH.NewArrivals)
		p.GET("/slug/:slug", productsH.GetBySlug)
		p.GET("/:id", productsH.Get)
		p.POST("/filtered", shopH.Filtered)
		p.POST("/:id/reviews", middleware.RequireAuth(), productsH.AddReview)
		p.POST("", middleware.RequireAdmin(), productsH.Create)
		p.PUT("/:id", middleware.RequireAdmin(), productsH.Update)
		p.DELETE("/:id", middleware.RequireAdmin(), productsH.Delete)
	}

	ct := api.Group("/cart")
	{
		ct.GET("", cartH.Show)
		ct.POST("", cartH.Add)
		ct.PUT("/:productId", cartH.UpdateQty)
		ct.DELETE("/:productId", cartH.Remove)
		ct.DELETE("", cartH.Clear)
	}

	co := api.Group("/checkout")
	{
		co.GET("", checkoutH.Show)
		co.POST("/shipping", checkoutH.SubmitShipping)
		co.POST("/payment", checkoutH.ConfirmPayment)
		co.POST("/place-order", middleware.RequireAuth(), checkoutH.PlaceOrder)
		co.POST("/reset", checkoutH.Reset)
	}

	o := api.Group("/orders")
	{
		o.GET("/mine", middleware.RequireAuth(), ordersH.Mine)
		o.GET("/:id", middleware.RequireAuth(), ordersH.Get)
		o.GET("", middleware.RequireAdmin(), ordersH.List)
		o.PUT("/:id/pay", middleware.RequireAdmin(), ordersH.MarkPaid)
		o.PUT("/:id/deliver", middleware.RequireAdmin(), ordersH.MarkDelivered)
	}

	f := api.Group("/favorites")
	{
		f.GET("", favoritesH.List)
		f.POST("", favoritesH.Add)
		f.DELETE("/:productId", favoritesH.Remove)
	}

	up := api.Group("/upload", middleware.RequireAdmin())
	{
		up.POST("", uploadsH.Upload)
		up.DELETE("/*key", uploadsH.Delete)
	}

	return r
}
