package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
	"github.com/majidkambarath/restaurant-pos/internal/domain/repository"
)

// defaultPageSize mirrors the backend's expected limit parameter
const defaultPageSize = 100

type wireItem struct {
	ItemID   flexString      `json:"ItemId"`
	ItemCode string          `json:"ItemCode"`
	ItemName string          `json:"ItemName"`
	Rate     decimal.Decimal `json:"Rate"`
	GrpID    flexString      `json:"GrpId"`
}

type wireCategory struct {
	Code    flexString `json:"Code"`
	GrpName string     `json:"GrpName"`
}

// Items fetches menu items, optionally narrowed by search text or group
func (c *Client) Items(ctx context.Context, q repository.ItemQuery) ([]entity.CatalogItem, error) {
	params := url.Values{}
	params.Set("search", q.Search)
	params.Set("limit", strconv.Itoa(defaultPageSize))
	params.Set("offset", "0")
	if q.GroupID != "" {
		params.Set("grpId", q.GroupID)
	}

	var raw []wireItem
	if err := c.get(ctx, "/items", params, &raw); err != nil {
		return nil, err
	}

	items := make([]entity.CatalogItem, 0, len(raw))
	for _, w := range raw {
		items = append(items, entity.CatalogItem{
			ID:      w.ItemID.String(),
			Code:    w.ItemCode,
			Name:    w.ItemName,
			Rate:    w.Rate,
			GroupID: w.GrpID.String(),
		})
	}
	return items, nil
}

// Categories fetches the menu groups
func (c *Client) Categories(ctx context.Context) ([]entity.Category, error) {
	var raw []wireCategory
	if err := c.get(ctx, "/categories", nil, &raw); err != nil {
		return nil, err
	}

	cats := make([]entity.Category, 0, len(raw))
	for _, w := range raw {
		cats = append(cats, entity.Category{
			ID:   w.Code.String(),
			Name: w.GrpName,
		})
	}
	return cats, nil
}
