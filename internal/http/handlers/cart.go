package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/http/cartcookie"
	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/render"
	"modakart.com/app/internal/modules/cart"
	"modakart.com/app/internal/modules/catalog"
	"modakart.com/app/internal/shared/apperr"
	"modakart.com/app/pkg/view"
)

type CartHandler struct {
	carts   *cart.Manager
	catalog *catalog.Repo
	cookie  *cartcookie.Codec
}

func NewCartHandler(carts *cart.Manager, catalogRepo *catalog.Repo, cookie *cartcookie.Codec) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalogRepo, cookie: cookie}
}

func (h *CartHandler) session(c *gin.Context) *cart.Store {
	id := h.cookie.CartID(c)
	return h.carts.Session(c.Request.Context(), id)
}

func (h *CartHandler) Show(c *gin.Context) {
	render.OK(c, view.FromCart(h.session(c).Snapshot()))
}

type addToCartReq struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty" binding:"required,min=1"`
}

func (h *CartHandler) Add(c *gin.Context) {
	var req addToCartReq
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.catalog.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		if isNotFound(err) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if p.CountInStock < req.Qty {
		middleware.Fail(c, apperr.InvalidErr("Not enough stock for this product.", nil))
		return
	}

	st := h.session(c)
	if err := st.Add(c.Request.Context(), cart.ItemFromProduct(p, req.Qty)); err != nil {
		if errors.Is(err, cart.ErrDuplicateItem) {
			middleware.Fail(c, apperr.ConflictErr("This product is already in your cart."))
			return
		}
		middleware.Fail(c, apperr.InvalidErr("Invalid quantity.", nil))
		return
	}
	render.OK(c, view.FromCart(st.Snapshot()))
}

type updateQtyReq struct {
	Qty int `json:"qty" binding:"required,min=1"`
}

func (h *CartHandler) UpdateQty(c *gin.Context) {
	var req updateQtyReq
	if !bindJSON(c, &req) {
		return
	}

	st := h.session(c)
	if err := st.UpdateQty(c.Request.Context(), c.Param("productId"), req.Qty); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("This product is not in your cart."))
			return
		}
		middleware.Fail(c, apperr.InvalidErr("Invalid quantity.", nil))
		return
	}
	render.OK(c, view.FromCart(st.Snapshot()))
}

func (h *CartHandler) Remove(c *gin.Context) {
	st := h.session(c)
	st.Remove(c.Request.Context(), c.Param("productId"))
	render.OK(c, view.FromCart(st.Snapshot()))
}

func (h *CartHandler) Clear(c *gin.Context) {
	st := h.session(c)
	st.Clear(c.Request.Context())
	render.OK(c, view.FromCart(st.Snapshot()))
}
