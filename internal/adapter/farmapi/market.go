package farmapi

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

func (c *Client) SeedCatalog(ctx context.Context) ([]farm.MarketSeed, error) {
	body, err := c.get(ctx, "/api/market/seeds")
	if err != nil {
		return nil, err
	}
	return parseSeedCatalog(body), nil
}

func (c *Client) BuySeed(ctx context.Context, cropID int64, amount int) (farm.PurchaseResult, error) {
	body, err := c.postJSON(ctx, "/api/market/buy", map[string]any{
		"cropId": cropID,
		"amount": amount,
	})
	if err != nil {
		return farm.PurchaseResult{}, err
	}
	root := gjson.ParseBytes(body)
	return farm.PurchaseResult{
		OK:   root.Get("success").Bool(),
		Cost: root.Get("cost").Float(),
	}, nil
}

// SellProduct sells amount units, or the full stock when amount is not
// positive.
func (c *Client) SellProduct(ctx context.Context, productID int64, amount int) (farm.SellResult, error) {
	payload := map[string]any{"productId": productID}
	if amount > 0 {
		payload["amount"] = amount
	} else {
		payload["all"] = true
	}
	body, err := c.postJSON(ctx, "/api/silo/sell", payload)
	if err != nil {
		return farm.SellResult{}, err
	}
	root := gjson.ParseBytes(body)
	return farm.SellResult{
		OK:         root.Get("success").Bool(),
		AmountSold: int(root.Get("sold").Int()),
		Income:     root.Get("income").Float(),
		Remaining:  int(root.Get("remaining").Int()),
	}, nil
}

func parseSeedCatalog(body []byte) []farm.MarketSeed {
	var out []farm.MarketSeed
	for _, seedNode := range gjson.GetBytes(body, "seeds").Array() {
		out = append(out, farm.MarketSeed{
			CropID:     seedNode.Get("cropId").Int(),
			Name:       seedNode.Get("name").String(),
			Unlocked:   seedNode.Get("unlocked").Bool(),
			Affordable: seedNode.Get("affordable").Bool(),
			MassPerHa:  seedNode.Get("massPerHa").Float(),
			UnitCost:   seedNode.Get("unitCost").Float(),
		})
	}
	return out
}
