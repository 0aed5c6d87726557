package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/render"
	"modakart.com/app/internal/modules/orders"
	"modakart.com/app/internal/shared/apperr"
	"modakart.com/app/pkg/view"
)

type OrdersHandler struct {
	repo *orders.Repo
}

func NewOrdersHandler(repo *orders.Repo) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

func (h *OrdersHandler) Mine(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	list, err := h.repo.ListByUser(c.Request.Context(), cu.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, view.FromOrders(list))
}

func (h *OrdersHandler) Get(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	o, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if o.UserID != cu.ID && !cu.IsAdmin {
		middleware.Fail(c, apperr.ForbiddenErr("This order belongs to another account."))
		return
	}
	render.OK(c, view.FromOrder(o))
}

func (h *OrdersHandler) List(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	list, err := h.repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, view.FromOrders(list))
}

func (h *OrdersHandler) MarkPaid(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.MarkPaid(c.Request.Context(), id); err != nil {
		h.failOrder(c, err)
		return
	}
	h.respondWith(c, id)
}

func (h *OrdersHandler) MarkDelivered(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.MarkDelivered(c.Request.Context(), id); err != nil {
		h.failOrder(c, err)
		return
	}
	h.respondWith(c, id)
}

func (h *OrdersHandler) respondWith(c *gin.Context, id string) {
	o, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, view.FromOrder(o))
}

func (h *OrdersHandler) failOrder(c *gin.Context, err error) {
	switch {
	case isNotFound(err):
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
	case errors.Is(err, orders.ErrAlreadyPaid):
		middleware.Fail(c, apperr.ConflictErr("Order is already marked as paid."))
	case errors.Is(err, orders.ErrNotPaid):
		middleware.Fail(c, apperr.ConflictErr("Order has not been paid yet."))
	case errors.Is(err, orders.ErrAlreadyShipped):
		middleware.Fail(c, apperr.ConflictErr("Order is already marked as delivered."))
	default:
		middleware.Fail(c, apperr.Wrap(err))
	}
}
