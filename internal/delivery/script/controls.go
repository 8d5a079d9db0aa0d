package script

import (
	"overlap/config"
	"overlap/internal/domain/entity"
	domainerrors "overlap/internal/domain/errors"

	"github.com/pkg/errors"
)

// Controls resolves the widget's named checkboxes and bounds its radius sliders.
type Controls struct {
	ratings   []config.RatingCheckbox
	prices    []config.PriceCheckbox
	sliderMin float64
	sliderMax float64
}

// NewControls builds the control surface from configuration
func NewControls(cfg *config.Config) *Controls {
	c := &Controls{
		ratings:   config.DefaultRatingCheckboxes(),
		prices:    config.DefaultPriceCheckboxes(),
		sliderMin: 10,
		sliderMax: 300,
	}

	if cfg.Controls == nil {
		return c
	}
	if len(cfg.Controls.Ratings) > 0 {
		c.ratings = cfg.Controls.Ratings
	}
	if len(cfg.Controls.Prices) > 0 {
		c.prices = cfg.Controls.Prices
	}
	if cfg.Controls.Slider.Max > 0 {
		c.sliderMin, c.sliderMax = cfg.Controls.Slider.Min, cfg.Controls.Slider.Max
	}

	return c
}

// Selection snapshots the checked boxes. Bands and tiers follow checkbox order.
func (c *Controls) Selection(checked []string) (entity.FilterSelection, error) {
	set := make(map[string]bool, len(checked))
	for _, name := range checked {
		if !c.known(name) {
			return entity.FilterSelection{}, errors.WithStack(domainerrors.ErrUnknownCheckbox.WithDetails(name))
		}
		set[name] = true
	}

	var selection entity.FilterSelection
	for _, r := range c.ratings {
		if set[r.Name] {
			selection.RatingBands = append(selection.RatingBands, entity.RatingBand{Name: r.Name, Min: r.Min, Max: r.Max})
		}
	}
	for _, p := range c.prices {
		if set[p.Name] {
			selection.PriceTiers = append(selection.PriceTiers, entity.PriceTier(p.Tier))
		}
	}

	return selection, nil
}

// ClampRadius bounds a slider value to the slider range.
func (c *Controls) ClampRadius(v float64) float64 {
	return min(max(v, c.sliderMin), c.sliderMax)
}

func (c *Controls) known(name string) bool {
	for _, r := range c.ratings {
		if r.Name == name {
			return true
		}
	}
	for _, p := range c.prices {
		if p.Name == name {
			return true
		}
	}

	return false
}
