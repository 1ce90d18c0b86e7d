package router

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/dtroode/storefront/internal/api/http/handler"
	"github.com/dtroode/storefront/internal/api/http/middleware"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// Services are the application services the routes are backed by. Media is
// optional and its routes are mounted only when it is set.
type Services struct {
	Auth        handler.AuthService
	Session     handler.SessionService
	Brand       handler.BrandService
	DeviceModel handler.DeviceModelService
	Product     handler.ProductService
	User        handler.UserService
	Profile     handler.ProfileService
	Catalog     handler.CatalogService
	Media       handler.MediaService
}

// Options tune the HTTP surface.
type Options struct {
	// CSRFKey enables CSRF protection when it is 32 bytes long.
	CSRFKey []byte
	// FlashKey signs the flash message cookie.
	FlashKey []byte
	// SecureCookies marks every cookie Secure.
	SecureCookies bool
	// PlaintextHTTP tells the CSRF layer the server is not behind TLS.
	PlaintextHTTP  bool
	TrustedOrigins []string
	MaxUploadSize  int64
}

// Router wires handlers and middlewares into one http.Handler.
type Router struct {
	services       Services
	contextManager model.ContextManager
	webFS          fs.FS
	opts           Options
	logger         *logger.Logger
}

// New creates new HTTP Router instance. webFS must hold templates/ and static/.
func New(
	services Services,
	contextManager model.ContextManager,
	webFS fs.FS,
	opts Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		webFS:          webFS,
		opts:           opts,
		logger:         logger,
	}
}

// Register builds the engine and wraps it, outermost first, with request
// logging, security headers, the access gate and CSRF protection.
func (r *Router) Register() (http.Handler, error) {
	templates, err := handler.NewTemplateCache(r.webFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	static, err := fs.Sub(r.webFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.StaticFS("/static", http.FS(static))
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "route not found"})
	})

	cookie := handler.SessionCookie{Secure: r.opts.SecureCookies}

	r.registerAuthRoutes(engine, cookie)
	r.registerCatalogRoutes(engine)
	r.registerUserRoutes(engine)
	r.registerMediaRoutes(engine)
	r.registerPageRoutes(engine, templates, cookie)

	logging := middleware.NewLogging(r.logger)
	gate := middleware.NewGate(r.services.Session, r.contextManager, r.logger)

	var h http.Handler = engine
	if len(r.opts.CSRFKey) > 0 {
		h = r.protect(h)
	}
	h = gate.Handle(h)
	h = middleware.SecurityHeaders(h)
	h = logging.Handle(h)

	return h, nil
}

func (r *Router) protect(next http.Handler) http.Handler {
	protected := csrf.Protect(
		r.opts.CSRFKey,
		csrf.Secure(r.opts.SecureCookies),
		csrf.Path("/"),
		csrf.TrustedOrigins(r.opts.TrustedOrigins),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			r.logger.Info("CSRF check failed",
				"path", req.URL.Path,
				"reason", csrf.FailureReason(req).Error())
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"invalid csrf token"}`))
		})),
	)(next)

	if !r.opts.PlaintextHTTP {
		return protected
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(req))
	})
}

func (r *Router) registerAuthRoutes(engine *gin.Engine, cookie handler.SessionCookie) {
	auth := handler.NewAuth(r.services.Auth, r.services.Session, cookie, r.contextManager, r.logger)

	group := engine.Group("/api/auth")
	group.POST("/register", auth.Register)
	group.GET("/session", auth.Session)
	group.GET("/providers", auth.Providers)
	group.GET("/csrf", auth.CSRF)
	group.POST("/callback/credentials", auth.Credentials)
	group.POST("/signout", auth.SignOut)
}

func (r *Router) registerCatalogRoutes(engine *gin.Engine) {
	brand := handler.NewBrand(r.services.Brand, r.contextManager, r.logger)
	models := handler.NewDeviceModel(r.services.DeviceModel, r.contextManager, r.logger)
	product := handler.NewProduct(r.services.Product, r.contextManager, r.logger)

	brands := engine.Group("/api/brands")
	brands.GET("", brand.List)
	brands.POST("", brand.Create)
	brands.GET("/:id", brand.Get)
	brands.PUT("/:id", brand.Update)
	brands.DELETE("/:id", brand.Delete)
	brands.GET("/:id/models", models.ListForBrand)
	brands.POST("/:id/models", models.CreateForBrand)

	modelGroup := engine.Group("/api/models")
	modelGroup.GET("", models.List)
	modelGroup.POST("", models.Create)
	modelGroup.GET("/:id", models.Get)
	modelGroup.PUT("/:id", models.Update)
	modelGroup.DELETE("/:id", models.Delete)

	products := engine.Group("/api/products")
	products.GET("", product.List)
	products.POST("", product.Create)
	products.GET("/:id", product.Get)
	products.PUT("/:id", product.Update)
	products.DELETE("/:id", product.Delete)
}

func (r *Router) registerUserRoutes(engine *gin.Engine) {
	user := handler.NewUser(r.services.User, r.contextManager, r.logger)
	profile := handler.NewProfile(r.services.Profile, r.contextManager, r.logger)

	users := engine.Group("/api/users")
	users.GET("", user.List)
	users.POST("", user.Create)
	users.GET("/:id", user.Get)
	users.PUT("/:id", user.Update)
	users.DELETE("/:id", user.Delete)

	engine.GET("/api/profile", profile.Get)
	engine.PUT("/api/profile", profile.Update)
}

func (r *Router) registerMediaRoutes(engine *gin.Engine) {
	if r.services.Media == nil {
		return
	}
	media := handler.NewMedia(r.services.Media, r.opts.MaxUploadSize, r.contextManager, r.logger)

	engine.POST("/api/products/:id/image", media.UploadProductImage)
	engine.POST("/api/brands/:id/logo", media.UploadBrandLogo)
	engine.GET("/media/*key", media.Serve)
}

func (r *Router) registerPageRoutes(engine *gin.Engine, templates *handler.TemplateCache, cookie handler.SessionCookie) {
	store := sessions.NewCookieStore(r.opts.FlashKey)
	store.Options.Secure = r.opts.SecureCookies
	store.Options.SameSite = http.SameSiteLaxMode

	pages := handler.NewPages(handler.PagesDeps{
		Catalog:        r.services.Catalog,
		Auth:           r.services.Auth,
		Sessions:       r.services.Session,
		Profile:        r.services.Profile,
		Templates:      templates,
		Flash:          handler.NewFlash(store, r.logger),
		Cookie:         cookie,
		ContextManager: r.contextManager,
		Logger:         r.logger,
	})

	engine.GET("/", pages.Home)
	engine.GET("/products", pages.Brands)
	engine.GET("/products/:brandSlug", pages.Brand)
	engine.GET("/products/:brandSlug/:modelSlug", pages.Model)
	engine.GET("/product/:id", pages.Product)
	engine.GET("/auth/login", pages.LoginForm)
	engine.POST("/auth/login", pages.Login)
	engine.GET("/auth/register", pages.RegisterForm)
	engine.POST("/auth/register", pages.Register)
	engine.POST("/auth/logout", pages.Logout)
	engine.GET("/admin", pages.Admin)
	engine.GET("/profile", pages.Profile)
	engine.POST("/profile", pages.UpdateProfile)

	r.registerAdminPageRoutes(engine, pages)
}

// registerAdminPageRoutes mounts the back-office forms. Browsers only submit
// GET and POST, so updates post to the entity URL and deletes to /delete.
func (r *Router) registerAdminPageRoutes(engine *gin.Engine, pages *handler.Pages) {
	admin := handler.NewAdminPages(pages, handler.AdminPagesDeps{
		Brands:   r.services.Brand,
		Models:   r.services.DeviceModel,
		Products: r.services.Product,
		Users:    r.services.User,
	})

	brands := engine.Group("/admin/brands")
	brands.GET("", admin.Brands)
	brands.GET("/new", admin.NewBrand)
	brands.POST("", admin.CreateBrand)
	brands.GET("/:id/edit", admin.EditBrand)
	brands.POST("/:id", admin.UpdateBrand)
	brands.POST("/:id/delete", admin.DeleteBrand)

	models := engine.Group("/admin/models")
	models.GET("", admin.Models)
	models.GET("/new", admin.NewModel)
	models.POST("", admin.CreateModel)
	models.GET("/:id/edit", admin.EditModel)
	models.POST("/:id", admin.UpdateModel)
	models.POST("/:id/delete", admin.DeleteModel)

	products := engine.Group("/admin/products")
	products.GET("", admin.Products)
	products.GET("/new", admin.NewProduct)
	products.POST("", admin.CreateProduct)
	products.GET("/:id/edit", admin.EditProduct)
	products.POST("/:id", admin.UpdateProduct)
	products.POST("/:id/delete", admin.DeleteProduct)

	users := engine.Group("/admin/users")
	users.GET("", admin.Users)
	users.GET("/new", admin.NewUser)
	users.POST("", admin.CreateUser)
	users.GET("/:id/edit", admin.EditUser)
	users.POST("/:id", admin.UpdateUser)
	users.POST("/:id/delete", admin.DeleteUser)
}
