package farmapi

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

func (c *Client) PlotDetail(ctx context.Context, farmID, plotID int64) (farm.PlotDetail, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/fields/%d/%d", farmID, plotID))
	if err != nil {
		return farm.PlotDetail{}, err
	}
	return parsePlotDetail(body), nil
}

func parsePlotDetail(body []byte) farm.PlotDetail {
	root := gjson.ParseBytes(body)
	detail := farm.PlotDetail{Equipment: farm.EquipmentOptions{}}

	for _, scoreNode := range root.Get("scores").Array() {
		detail.Scores = append(detail.Scores, farm.CropScore{
			CropID: scoreNode.Get("cropId").Int(),
			Name:   scoreNode.Get("name").String(),
			Score:  scoreNode.Get("score").Float(),
		})
	}

	root.Get("equipment").ForEach(func(key, value gjson.Result) bool {
		group := farm.EquipmentGroup{Available: int(value.Get("available").Int())}
		for _, unitNode := range value.Get("units").Array() {
			group.Units = append(group.Units, farm.EquipmentUnit{
				TractorID:   unitNode.Get("tractorId").Int(),
				ImplementID: unitNode.Get("implementId").Int(),
			})
		}
		detail.Equipment[farm.OperationKind(key.String())] = group
		return true
	})
	return detail
}
