package view

import (
	"modakart.com/app/internal/modules/shop"
	"modakart.com/app/pkg/paginate"
)

type Pagination struct {
	Page        int   `json:"page"`
	PerPage     int   `json:"perPage"`
	Total       int   `json:"total"`
	TotalPages  int   `json:"totalPages"`
	Window      []int `json:"window"`
	LeadingGap  bool  `json:"leadingGap"`
	TrailingGap bool  `json:"trailingGap"`
}

func FromPager(p *paginate.Pager) Pagination {
	w := p.Window()
	return Pagination{
		Page:        p.Current(),
		PerPage:     p.PerPage(),
		Total:       p.Total(),
		TotalPages:  p.TotalPages(),
		Window:      w.Pages,
		LeadingGap:  w.LeadingGap,
		TrailingGap: w.TrailingGap,
	}
}

type ShopFilter struct {
	Categories []string `json:"checked"`
	Brands     []string `json:"brands"`
	MaxPrice   string   `json:"maxPrice,omitempty"`
}

// ShopPage is the listing payload: the visible page of products plus
// everything the filter sidebar and pager need to draw themselves.
type ShopPage struct {
	Products   []Product  `json:"products"`
	Brands     []string   `json:"allBrands"`
	Filter     ShopFilter `json:"filter"`
	PriceError string     `json:"priceError,omitempty"`
	LoadError  string     `json:"loadError,omitempty"`
	Pagination Pagination `json:"pagination"`
}

func FromShopState(st shop.State, p *paginate.Pager) ShopPage {
	lo, hi := p.PageOf(p.Current())
	maxPrice := ""
	if st.Filter.MaxPriceCents > 0 {
		maxPrice = MoneyFromCents(st.Filter.MaxPriceCents, "USD")
	}
	return ShopPage{
		Products: FromProducts(st.Displayed[lo:hi]),
		Brands:   st.Brands,
		Filter: ShopFilter{
			Categories: st.Scope.CategoryIDs,
			Brands:     st.Filter.SelectedBrands,
			MaxPrice:   maxPrice,
		},
		PriceError: st.PriceError,
		LoadError:  st.ErrorMsg,
		Pagination: FromPager(p),
	}
}
