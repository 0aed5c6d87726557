package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/render"
	"modakart.com/app/internal/modules/catalog"
	"modakart.com/app/internal/modules/shop"
	"modakart.com/app/internal/shared/apperr"
	"modakart.com/app/pkg/paginate"
	"modakart.com/app/pkg/view"
)

// ShopHandler serves the filtered shop listing. Each request builds a fresh
// shop.Store from the posted scope and refinement, so the reply reflects
// exactly the inputs sent.
type ShopHandler struct {
	repo *catalog.Repo
	log  *slog.Logger
}

func NewShopHandler(repo *catalog.Repo, log *slog.Logger) *ShopHandler {
	return &ShopHandler{repo: repo, log: log}
}

type filteredReq struct {
	// server-side scope
	Checked  []string `json:"checked"`
	MinPrice int64    `json:"minPriceCents"`
	MaxPrice int64    `json:"maxPriceCents"`

	// client-side refinement
	Brands      []string `json:"brands"`
	MaxPriceRaw string   `json:"maxPrice"`

	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}

func (h *ShopHandler) Filtered(c *gin.Context) {
	var req filteredReq
	if !bindJSON(c, &req) {
		return
	}

	st := shop.NewStore(h.repo, h.log)
	st.Reload(c.Request.Context(), catalog.FilteredParams{
		CategoryIDs:   req.Checked,
		MinPriceCents: req.MinPrice,
		MaxPriceCents: req.MaxPrice,
	})
	for _, b := range req.Brands {
		st.ToggleBrand(b)
	}
	if req.MaxPriceRaw != "" {
		st.SetMaxPrice(req.MaxPriceRaw)
	}
	snap := st.Snapshot()
	if snap.LoadErr {
		middleware.Fail(c, apperr.UnavailableErr(snap.ErrorMsg, nil))
		return
	}

	perPage := req.PerPage
	if perPage == 0 {
		perPage = paginate.DefaultPerPage
	}
	p := paginate.New(paginate.DefaultPerPage)
	if err := p.SetPerPage(perPage); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Unsupported page size.", nil))
		return
	}
	p.SetTotal(len(snap.Displayed))
	if req.Page > 0 {
		p.GoToPage(req.Page)
	}

	render.OK(c, view.FromShopState(snap, p))
}
