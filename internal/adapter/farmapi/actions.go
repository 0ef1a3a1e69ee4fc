package farmapi

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

func (c *Client) Dispatch(ctx context.Context, action farm.FieldAction) (farm.ActionResult, error) {
	payload := map[string]any{
		"operation": string(action.Op),
		"farmId":    action.FarmID,
		"plotId":    action.PlotID,
		"tractorId": action.TractorID,
	}
	if action.ImplementID != 0 {
		payload["implementId"] = action.ImplementID
	}
	if action.CropID != 0 {
		payload["cropId"] = action.CropID
	}

	body, err := c.postJSON(ctx, "/api/fields/action", payload)
	if err != nil {
		return farm.ActionResult{}, err
	}
	root := gjson.ParseBytes(body)
	return farm.ActionResult{
		OK:      root.Get("success").Bool(),
		Message: root.Get("message").String(),
	}, nil
}
