package controllers

import (
	"net/http"

	"github.com/angelmondragon/skb-upsell-backend/api/responses"
	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/quotes"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
)

type tvEntry struct {
	catalog.TvPlan
	SecondaryPrice int `json:"secondary_price"`
}

type familyCatalog struct {
	Family       enums.Family        `json:"family"`
	TvPlans      []tvEntry           `json:"tv_plans"`
	StbOptions   []catalog.StbOption `json:"stb_options"`
	DefaultTvID  string              `json:"default_tv_id"`
	DefaultStbID string              `json:"default_stb_id"`
}

type secondaryStb struct {
	DisplayName string `json:"display_name"`
	Price       int    `json:"price"`
}

type discountLabel struct {
	Kind  enums.DiscountKind `json:"kind"`
	Label string             `json:"label"`
}

type catalogResponse struct {
	InternetPlans     []catalog.InternetPlan `json:"internet_plans"`
	AddOns            []catalog.AddOn        `json:"add_ons"`
	Families          []familyCatalog        `json:"families"`
	DefaultInternetID string                 `json:"default_internet_id"`
	SecondaryStb      secondaryStb           `json:"secondary_stb"`
	PrepaidOptions    []int                  `json:"prepaid_options"`
	Discounts         []discountLabel        `json:"discounts"`
}

// Catalog returns every purchasable item of both families.
func Catalog(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}
		responses.WriteSuccess(w, newCatalogResponse(svc.Catalog()))
	}
}

func newCatalogResponse(c *catalog.Catalog) catalogResponse {
	resp := catalogResponse{
		InternetPlans:     c.InternetPlans(),
		AddOns:            c.AddOns(),
		DefaultInternetID: c.DefaultInternetID(),
		SecondaryStb: secondaryStb{
			DisplayName: c.SecondaryStbName(),
			Price:       c.SecondaryStbPrice(),
		},
		PrepaidOptions: catalog.PrepaidOptions(),
	}

	for _, family := range enums.Families() {
		defaultTv, defaultStb := c.Defaults(family)
		plans := c.TvPlans(family)
		tvs := make([]tvEntry, 0, len(plans))
		for _, plan := range plans {
			tvs = append(tvs, tvEntry{TvPlan: plan, SecondaryPrice: c.SecondaryTvPrice(plan.ID, family)})
		}
		resp.Families = append(resp.Families, familyCatalog{
			Family:       family,
			TvPlans:      tvs,
			StbOptions:   c.StbOptions(family),
			DefaultTvID:  defaultTv,
			DefaultStbID: defaultStb,
		})
	}

	for _, kind := range enums.DiscountKinds() {
		resp.Discounts = append(resp.Discounts, discountLabel{Kind: kind, Label: kind.Label()})
	}
	return resp
}
