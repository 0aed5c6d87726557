package handlers

import (
	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/http/cartcookie"
	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/render"
	"modakart.com/app/internal/modules/catalog"
	"modakart.com/app/internal/modules/favorites"
	"modakart.com/app/internal/shared/apperr"
	"modakart.com/app/pkg/view"
)

type FavoritesHandler struct {
	favs    *favorites.Manager
	catalog *catalog.Repo
	cookie  *cartcookie.Codec
}

func NewFavoritesHandler(favs *favorites.Manager, catalogRepo *catalog.Repo, cookie *cartcookie.Codec) *FavoritesHandler {
	return &FavoritesHandler{favs: favs, catalog: catalogRepo, cookie: cookie}
}

// ownerID prefers the signed-in user so favorites follow the account; guests
// fall back to the cart session.
func (h *FavoritesHandler) ownerID(c *gin.Context) string {
	if cu, ok := middleware.CurrentUser(c); ok {
		return cu.ID
	}
	return h.cookie.CartID(c)
}

type favoriteView struct {
	ProductID  string `json:"product"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Brand      string `json:"brand"`
	ImageURL   string `json:"image"`
	PriceCents int64  `json:"priceCents"`
	Price      string `json:"price"`
}

func toFavoriteViews(items []favorites.Item) []favoriteView {
	out := make([]favoriteView, 0, len(items))
	for _, it := range items {
		out = append(out, favoriteView{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Slug:       it.Slug,
			Brand:      it.Brand,
			ImageURL:   it.ImageURL,
			PriceCents: it.PriceCents,
			Price:      view.MoneyFromCents(it.PriceCents, "USD"),
		})
	}
	return out
}

func (h *FavoritesHandler) List(c *gin.Context) {
	st := h.favs.Session(c.Request.Context(), h.ownerID(c))
	render.OK(c, favoritesPayload(st))
}

type addFavoriteReq struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *FavoritesHandler) Add(c *gin.Context) {
	var req addFavoriteReq
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

	st := h.favs.Session(c.Request.Context(), h.ownerID(c))
	st.Add(c.Request.Context(), favorites.ItemFromProduct(p))
	render.OK(c, favoritesPayload(st))
}

func (h *FavoritesHandler) Remove(c *gin.Context) {
	st := h.favs.Session(c.Request.Context(), h.ownerID(c))
	st.Remove(c.Request.Context(), c.Param("productId"))
	render.OK(c, favoritesPayload(st))
}

type favoritesView struct {
	Favorites []favoriteView `json:"favorites"`
	Count     int            `json:"count"`
}

func favoritesPayload(st *favorites.Store) favoritesView {
	return favoritesView{Favorites: toFavoriteViews(st.List()), Count: st.Count()}
}
