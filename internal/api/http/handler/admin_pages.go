package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/model"
)

// AdminPages renders the back-office screens that list, create, edit and
// delete catalog entities and user accounts. Forms post through the same
// services as the JSON API and report back with flash messages.
type AdminPages struct {
	pages    *Pages
	brands   BrandService
	models   DeviceModelService
	products ProductService
	users    UserService
}

// AdminPagesDeps groups the services behind the admin screens.
type AdminPagesDeps struct {
	Brands   BrandService
	Models   DeviceModelService
	Products ProductService
	Users    UserService
}

// NewAdminPages creates the admin screens on top of pages, whose templates,
// flash store and session guard they share.
func NewAdminPages(pages *Pages, deps AdminPagesDeps) *AdminPages {
	return &AdminPages{
		pages:    pages,
		brands:   deps.Brands,
		models:   deps.Models,
		products: deps.Products,
		users:    deps.Users,
	}
}

// admin lets admins through and sends everybody else home.
func (h *AdminPages) admin(c *gin.Context) (model.SessionClaim, bool) {
	claim, err := h.pages.guard.admin(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return model.SessionClaim{}, false
	}
	return claim, true
}

// entityID parses the :id parameter. A malformed id renders the not found page.
func (h *AdminPages) entityID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.pages.fail(c, apierror.NewErrNotFound(entity))
		return uuid.Nil, false
	}
	return id, true
}

// done flashes the outcome of a form and redirects: to next on success and
// back to retry on failure.
func (h *AdminPages) done(c *gin.Context, err error, success, next, retry string) {
	if err != nil {
		h.pages.flash.add(c.Writer, c.Request, "error", h.pages.messageFor(err))
		c.Redirect(http.StatusSeeOther, retry)
		return
	}
	h.pages.flash.add(c.Writer, c.Request, "success", success)
	c.Redirect(http.StatusSeeOther, next)
}

func (h *AdminPages) Brands(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}

	brands, err := h.brands.List(c.Request.Context())
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_brands", gin.H{"Brands": brands})
}

func (h *AdminPages) NewBrand(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	h.pages.render(c, http.StatusOK, "admin_brand_form", gin.H{
		"Brand":   model.Brand{},
		"Editing": false,
		"Action":  "/admin/brands",
	})
}

func (h *AdminPages) EditBrand(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "brand")
	if !ok {
		return
	}

	brand, err := h.brands.Get(c.Request.Context(), id)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_brand_form", gin.H{
		"Brand":   brand,
		"Editing": true,
		"Action":  "/admin/brands/" + id.String(),
	})
}

func (h *AdminPages) CreateBrand(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	_, err := h.brands.Create(c.Request.Context(), brandForm(c))
	h.done(c, err, "brand created successfully", "/admin/brands", "/admin/brands/new")
}

func (h *AdminPages) UpdateBrand(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "brand")
	if !ok {
		return
	}
	_, err := h.brands.Update(c.Request.Context(), id, brandForm(c))
	h.done(c, err, "brand updated successfully", "/admin/brands", "/admin/brands/"+id.String()+"/edit")
}

func (h *AdminPages) DeleteBrand(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "brand")
	if !ok {
		return
	}
	err := h.brands.Delete(c.Request.Context(), id)
	h.done(c, err, "brand deleted successfully", "/admin/brands", "/admin/brands")
}

func brandForm(c *gin.Context) model.BrandInput {
	in := model.BrandInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}
	if logo := strings.TrimSpace(c.PostForm("logo")); logo != "" {
		in.Logo = &logo
	}
	return in
}

func (h *AdminPages) Models(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}

	// An unparsable filter lists every model.
	brandID, _ := optionalID(c.Query("brandId"), "brand")

	ctx := c.Request.Context()
	models, err := h.models.List(ctx, brandID)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	brands, err := h.brands.List(ctx)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_models", gin.H{
		"Models":  models,
		"Brands":  brands,
		"BrandID": brandID.String(),
	})
}

func (h *AdminPages) NewModel(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	h.modelForm(c, model.DeviceModel{}, false, "/admin/models")
}

func (h *AdminPages) EditModel(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "model")
	if !ok {
		return
	}

	m, err := h.models.Get(c.Request.Context(), id)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.modelForm(c, m, true, "/admin/models/"+id.String())
}

func (h *AdminPages) modelForm(c *gin.Context, m model.DeviceModel, editing bool, action string) {
	brands, err := h.brands.List(c.Request.Context())
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_model_form", gin.H{
		"Model":   m,
		"Brands":  brands,
		"Editing": editing,
		"Action":  action,
	})
}

func (h *AdminPages) CreateModel(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	in, err := modelForm(c)
	if err == nil {
		_, err = h.models.Create(c.Request.Context(), in)
	}
	h.done(c, err, "model created successfully", "/admin/models", "/admin/models/new")
}

func (h *AdminPages) UpdateModel(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "model")
	if !ok {
		return
	}
	in, err := modelForm(c)
	if err == nil {
		_, err = h.models.Update(c.Request.Context(), id, in)
	}
	h.done(c, err, "model updated successfully", "/admin/models", "/admin/models/"+id.String()+"/edit")
}

func (h *AdminPages) DeleteModel(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "model")
	if !ok {
		return
	}
	err := h.models.Delete(c.Request.Context(), id)
	h.done(c, err, "model deleted successfully", "/admin/models", "/admin/models")
}

func modelForm(c *gin.Context) (model.DeviceModelInput, error) {
	brandID, err := optionalID(c.PostForm("brandId"), "brand")
	if err != nil {
		return model.DeviceModelInput{}, err
	}
	return model.DeviceModelInput{
		Name:        c.PostForm("name"),
		BrandID:     brandID,
		Description: c.PostForm("description"),
	}, nil
}

func (h *AdminPages) Products(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}

	products, err := h.products.List(c.Request.Context(), model.ProductFilter{})
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_products", gin.H{"Products": products})
}

func (h *AdminPages) NewProduct(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	h.productForm(c, model.Product{}, false, "/admin/products")
}

func (h *AdminPages) EditProduct(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "product")
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.productForm(c, product, true, "/admin/products/"+id.String())
}

func (h *AdminPages) productForm(c *gin.Context, p model.Product, editing bool, action string) {
	ctx := c.Request.Context()
	brands, err := h.brands.List(ctx)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	models, err := h.models.List(ctx, uuid.Nil)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_product_form", gin.H{
		"Product":  p,
		"Features": formatFeatures(p.Features),
		"Brands":   brands,
		"Models":   models,
		"Editing":  editing,
		"Action":   action,
	})
}

func (h *AdminPages) CreateProduct(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	in, err := productForm(c)
	if err == nil {
		_, err = h.products.Create(c.Request.Context(), in)
	}
	h.done(c, err, "product created successfully", "/admin/products", "/admin/products/new")
}

func (h *AdminPages) UpdateProduct(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "product")
	if !ok {
		return
	}
	in, err := productForm(c)
	if err == nil {
		_, err = h.products.Update(c.Request.Context(), id, in)
	}
	h.done(c, err, "product updated successfully", "/admin/products", "/admin/products/"+id.String()+"/edit")
}

func (h *AdminPages) DeleteProduct(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "product")
	if !ok {
		return
	}
	err := h.products.Delete(c.Request.Context(), id)
	h.done(c, err, "product deleted successfully", "/admin/products", "/admin/products")
}

// productForm reads the product form. Empty price or stock stay nil so the
// service reports them as missing.
func productForm(c *gin.Context) (model.ProductInput, error) {
	brandID, err := optionalID(c.PostForm("brandId"), "brand")
	if err != nil {
		return model.ProductInput{}, err
	}
	modelID, err := optionalID(c.PostForm("modelId"), "model")
	if err != nil {
		return model.ProductInput{}, err
	}

	in := model.ProductInput{
		Name:        c.PostForm("name"),
		BrandID:     brandID,
		ModelID:     modelID,
		Description: c.PostForm("description"),
	}

	if raw := strings.TrimSpace(c.PostForm("price")); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.ProductInput{}, apierror.NewErrValidation("price must be a number")
		}
		in.Price = &price
	}
	if raw := strings.TrimSpace(c.PostForm("stock")); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return model.ProductInput{}, apierror.NewErrValidation("stock must be a whole number")
		}
		in.Stock = &stock
	}
	if image := strings.TrimSpace(c.PostForm("image")); image != "" {
		in.Image = &image
	}

	in.Features, err = parseFeatures(c.PostForm("features"))
	if err != nil {
		return model.ProductInput{}, err
	}
	return in, nil
}

// parseFeatures reads one "key: value" pair per line. Blank lines are skipped.
func parseFeatures(raw string) (model.Features, error) {
	features := model.Features{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, apierror.NewErrValidation("features must be written as key: value, one per line")
		}
		features[key] = strings.TrimSpace(value)
	}
	return features, nil
}

func formatFeatures(features model.Features) string {
	keys := make([]string, 0, len(features))
	for k := range features {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, features[k])
	}
	return b.String()
}

func (h *AdminPages) Users(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}

	search := c.Query("search")
	users, err := h.users.List(c.Request.Context(), search)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_users", gin.H{
		"Users":  users,
		"Search": search,
	})
}

func (h *AdminPages) NewUser(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	h.pages.render(c, http.StatusOK, "admin_user_form", gin.H{
		"User":    model.User{Role: model.RoleUser},
		"Editing": false,
		"Action":  "/admin/users",
	})
}

func (h *AdminPages) EditUser(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "user")
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.pages.render(c, http.StatusOK, "admin_user_form", gin.H{
		"User":    user,
		"Editing": true,
		"Action":  "/admin/users/" + id.String(),
	})
}

func (h *AdminPages) CreateUser(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	_, err := h.users.Create(c.Request.Context(), userForm(c))
	h.done(c, err, "user created successfully", "/admin/users", "/admin/users/new")
}

func (h *AdminPages) UpdateUser(c *gin.Context) {
	if _, ok := h.admin(c); !ok {
		return
	}
	id, ok := h.entityID(c, "user")
	if !ok {
		return
	}
	_, err := h.users.Update(c.Request.Context(), id, userForm(c))
	h.done(c, err, "user updated successfully", "/admin/users", "/admin/users/"+id.String()+"/edit")
}

func (h *AdminPages) DeleteUser(c *gin.Context) {
	claim, ok := h.admin(c)
	if !ok {
		return
	}
	id, ok := h.entityID(c, "user")
	if !ok {
		return
	}
	err := h.users.Delete(c.Request.Context(), claim.UserID, id)
	h.done(c, err, "user deleted successfully", "/admin/users", "/admin/users")
}

func userForm(c *gin.Context) model.UserInput {
	return model.UserInput{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Role:     c.PostForm("role"),
	}
}
