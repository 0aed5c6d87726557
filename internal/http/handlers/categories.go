package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/render"
	"modakart.com/app/internal/modules/categories"
	"modakart.com/app/internal/shared/apperr"
)

type CategoriesHandler struct {
	repo *categories.Repo
}

func NewCategoriesHandler(repo *categories.Repo) *CategoriesHandler {
	return &CategoriesHandler{repo: repo}
}

type categoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *CategoriesHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	out := make([]categoryView, 0, len(list))
	for _, cat := range list {
		out = append(out, categoryView{ID: cat.ID, Name: cat.Name})
	}
	render.OK(c, out)
}

func (h *CategoriesHandler) Get(c *gin.Context) {
	cat, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			middleware.Fail(c, apperr.NotFoundErr("Category not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, categoryView{ID: cat.ID, Name: cat.Name})
}

type categoryReq struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (h *CategoriesHandler) Create(c *gin.Context) {
	var req categoryReq
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.repo.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.failCategory(c, err)
		return
	}
	render.Created(c, categoryView{ID: cat.ID, Name: cat.Name})
}

func (h *CategoriesHandler) Update(c *gin.Context) {
	var req categoryReq
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		h.failCategory(c, err)
		return
	}
	render.OK(c, categoryView{ID: cat.ID, Name: cat.Name})
}

func (h *CategoriesHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.Message(c, "Category deleted.")
}

func (h *CategoriesHandler) failCategory(c *gin.Context, err error) {
	switch {
	case errors.Is(err, categories.ErrNameTaken):
		middleware.Fail(c, apperr.ConflictErr("A category with this name already exists."))
	case errors.Is(err, categories.ErrEmptyName):
		middleware.Fail(c, apperr.InvalidErr("Category name cannot be empty.", nil))
	case isNotFound(err):
		middleware.Fail(c, apperr.NotFoundErr("Category not found."))
	default:
		middleware.Fail(c, apperr.Wrap(err))
	}
}
