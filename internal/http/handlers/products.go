package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/render"
	"modakart.com/app/internal/modules/catalog"
	"modakart.com/app/internal/modules/users"
	"modakart.com/app/internal/shared/apperr"
	"modakart.com/app/internal/shared/slug"
	"modakart.com/app/pkg/view"
)

type ProductsHandler struct {
	repo  *catalog.Repo
	users *users.Repo
}

func NewProductsHandler(repo *catalog.Repo, usersRepo *users.Repo) *ProductsHandler {
	return &ProductsHandler{repo: repo, users: usersRepo}
}

func (h *ProductsHandler) List(c *gin.Context) {
	limit := queryInt(c, "limit", 24)
	if limit < 1 || limit > 100 {
		limit = 24
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	prods, err := h.repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, view.FromProducts(prods))
}

func (h *ProductsHandler) Get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, view.FromProduct(p))
}

func (h *ProductsHandler) GetBySlug(c *gin.Context) {
	p, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if isNotFound(err) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, view.FromProduct(p))
}

func (h *ProductsHandler) TopRated(c *gin.Context) {
	prods, err := h.repo.TopRated(c.Request.Context(), 4)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, view.FromProducts(prods))
}

func (h *ProductsHandler) NewArrivals(c *gin.Context) {
	prods, err := h.repo.NewArrivals(c.Request.Context(), 8)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, view.FromProducts(prods))
}

type productReq struct {
	Name         string `json:"name" binding:"required,max=255"`
	Slug         string `json:"slug" binding:"omitempty,max=255"`
	Brand        string `json:"brand" binding:"required,max=100"`
	Description  string `json:"description"`
	ImageURL     string `json:"image"`
	CategoryID   string `json:"category" binding:"required"`
	PriceCents   int64  `json:"priceCents" binding:"required,gt=0"`
	CountInStock int    `json:"countInStock" binding:"gte=0"`
}

func (r productReq) toInput() catalog.ProductInput {
	s := r.Slug
	if s == "" {
		s = slug.FromName(r.Name)
	}
	return catalog.ProductInput{
		Name:         r.Name,
		Slug:         s,
		Brand:        r.Brand,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		CategoryID:   r.CategoryID,
		PriceCents:   r.PriceCents,
		CountInStock: r.CountInStock,
	}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req productReq
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.repo.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, catalog.ErrSlugTaken) {
			middleware.Fail(c, apperr.ConflictErr("A product with this slug already exists."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.Created(c, view.FromProduct(p))
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var req productReq
	if !bindJSON(c, &req) {
		return
	}

	id := c.Param("id")
	err := h.repo.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSlugTaken):
			middleware.Fail(c, apperr.ConflictErr("A product with this slug already exists."))
		case isNotFound(err):
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, view.FromProduct(p))
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.Message(c, "Product deleted.")
}

type reviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}

func (h *ProductsHandler) AddReview(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	var req reviewReq
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.ByID(c.Request.Context(), cu.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	err = h.repo.AddReview(c.Request.Context(), c.Param("id"), cu.ID, u.Username, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAlreadyReviewed):
			middleware.Fail(c, apperr.ConflictErr("You have already reviewed this product."))
		case isNotFound(err):
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}
	render.Message(c, "Review added.")
}
