// package view turns a trip's computed timeline into a self-contained HTML
// document: day columns with pixel-positioned entry blocks, an all-day
// banner lane, hour gridlines, and an embedded cost chart.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/triplinehq/tripline/cost"
	"github.com/triplinehq/tripline/plan"
	"github.com/triplinehq/tripline/timeline"
)

const (
	// OutputDir is where rendered trip documents land by default.
	OutputDir = "trip_output"

	defaultTemplatesDir = "view/templates"
)

// Option mutates how trips are rendered.
type Option func(*options)

type options struct {
	outputDir    string
	templatesDir string
}

func defaultOptions() *options {
	return &options{
		outputDir:    OutputDir,
		templatesDir: defaultTemplatesDir,
	}
}

// WithOutputDir writes rendered documents to a custom directory.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		o.outputDir = dir
	}
}

// WithTemplatesDir reads templates from a custom directory. Useful when the
// binary does not run from the repository root.
func WithTemplatesDir(dir string) Option {
	return func(o *options) {
		o.templatesDir = dir
	}
}

// tripView is the template payload for one rendered trip.
type tripView struct {
	Trip       *plan.Trip
	Range      timeline.Range
	Days       []dayView
	HourLabels []timeline.HourLabel
	GridHeight float64
	CostChart  *plotlyChart
	Generated  string
}

// dayView is one day column.
type dayView struct {
	Label  string
	AllDay []bannerBlock
	Blocks []itemBlock
}

// bannerBlock is one stacked all-day banner.
type bannerBlock struct {
	Name     string
	Category timeline.Category
	OffsetPx float64
}

// itemBlock is one timed entry block, absolutely positioned inside its day
// column.
type itemBlock struct {
	Name      string
	Category  timeline.Category
	TimeLabel string
	TopPx     float64
	HeightPx  float64
	LeftPct   float64
	WidthPct  float64
	Point     bool
}

// Trip renders one trip to an HTML file and returns its path.
func Trip(log zerolog.Logger, trip *plan.Trip, entries plan.Entries, opts ...Option) (string, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	tl := timeline.Build(trip.Window, entries)
	breakdown := cost.Compute(trip, entries)

	chart, err := costChart(breakdown)
	if err != nil {
		return "", fmt.Errorf("failed to build cost chart: %w", err)
	}

	data := &tripView{
		Trip:       trip,
		Range:      tl.Range,
		HourLabels: tl.HourLabels,
		GridHeight: 24 * timeline.PixelsPerHour,
		CostChart:  chart,
		Generated:  time.Now().Format("2006-01-02 15:04"),
	}
	for _, d := range tl.Days {
		data.Days = append(data.Days, buildDayView(tl.Items, d))
	}

	tmpl, err := template.ParseFiles(filepath.Join(options.templatesDir, "trip.html"))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	outputFile := filepath.Join(options.outputDir, fmt.Sprintf("%s.html", trip.ID))
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputFile, rendered.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write html file: %w", err)
	}

	log.Info().
		Str("trip_id", trip.ID).
		Str("output_file", outputFile).
		Int("days", len(data.Days)).
		Msg("Rendered trip timeline")
	return outputFile, nil
}

func buildDayView(items []timeline.Item, d timeline.Day) dayView {
	dayEnd := d.Start.Add(24 * time.Hour)
	dv := dayView{Label: d.Start.Format("Mon Jan 2")}

	for _, item := range items {
		if !item.AllDay {
			continue
		}
		if !item.Start.Before(dayEnd) || !item.End.After(d.Start) {
			continue
		}
		dv.AllDay = append(dv.AllDay, bannerBlock{
			Name:     item.Name,
			Category: item.Category,
			OffsetPx: timeline.AllDayLaneOffset(len(dv.AllDay)),
		})
	}

	for _, item := range items {
		placement, ok := d.Layout[item.ID]
		if !ok {
			continue
		}
		width := 100.0 / float64(placement.TotalColumns)
		dv.Blocks = append(dv.Blocks, itemBlock{
			Name:      item.Name,
			Category:  item.Category,
			TimeLabel: item.Start.Format("15:04"),
			TopPx:     timeline.DayPixelTop(item, d.Start),
			HeightPx:  timeline.DayPixelHeight(item, d.Start),
			LeftPct:   float64(placement.Column) * width,
			WidthPct:  width,
			Point:     item.Point,
		})
	}

	return dv
}
