package view

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/generated/v2.34.0/graph_objects"
	"github.com/MetalBlueberry/go-plotly/pkg/types"

	"github.com/triplinehq/tripline/cost"
)

// plotlyChart is a figure serialized for embedding in the rendered page.
type plotlyChart struct {
	GraphID    string
	B64Content string
}

// costChart builds the paid-versus-share bar chart for the trip's members.
// Returns nil when there is nothing costed to plot.
func costChart(breakdown *cost.Breakdown) (*plotlyChart, error) {
	if breakdown == nil || breakdown.Total == 0 || len(breakdown.Members) == 0 {
		return nil, nil
	}

	var (
		members = make([]string, len(breakdown.Members))
		paid    = make([]float64, len(breakdown.Members))
		share   = make([]float64, len(breakdown.Members))
	)
	for i, mt := range breakdown.Members {
		members[i] = mt.Member
		paid[i] = mt.Paid
		share[i] = mt.Share
	}

	fig := &grob.Fig{
		Data: []types.Trace{
			&grob.Bar{
				X:    types.DataArray(members),
				Y:    types.DataArray(paid),
				Name: types.StringType("Paid"),
			},
			&grob.Bar{
				X:    types.DataArray(members),
				Y:    types.DataArray(share),
				Name: types.StringType("Share"),
			},
		},
		Layout: &grob.Layout{
			Title: &grob.LayoutTitle{
				Text: "Who paid vs. who owes",
			},
			Barmode: grob.BarBarmodeGroup,
		},
	}

	return buildPlotlyChart(fig, "cost_breakdown")
}

func buildPlotlyChart(fig types.Fig, graphID string) (*plotlyChart, error) {
	figBytes, err := json.Marshal(fig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plotly fig: %w", err)
	}
	return &plotlyChart{
		GraphID:    graphID,
		B64Content: base64.StdEncoding.EncodeToString(figBytes),
	}, nil
}
