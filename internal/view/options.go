package view

import (
	"strings"

	"sienna-watch/internal/model"
)

// optionRule maps an option code to its display label, badge, and the weight
// it contributes to the desirability score.
type optionRule struct {
	label  string
	badge  string
	weight int
}

// notableOptions are the option codes called out individually in the view.
var notableOptions = map[string]optionRule{
	"AC": {label: "1500W Inverter", badge: "🔌"},
	"EY": {label: "Rear Entertainment", badge: "📺", weight: 1},
	"DH": {label: "Tow Hitch", badge: "🔗", weight: 1},
	"XL": {label: "XLE+ Package", badge: "➕"},
	"XS": {label: "XSE+ Package", badge: "➕"},
	"ST": {label: "Spare Tire", badge: "🛞", weight: 1},
	"RR": {label: "Roof Rails"},
}

// suppressedOptions are administrative codes kept out of the other-options
// list entirely.
var suppressedOptions = map[string]bool{
	"FE": true, // 50 State Emissions
	"DK": true, // Owner's Portfolio
}

// decodedOptions is the result of walking a listing's option codes.
type decodedOptions struct {
	notable      []string
	other        []string
	badges       string
	desirability int
}

func decodeOptions(options []model.Option) decodedOptions {
	var d decodedOptions
	var badges strings.Builder
	for _, opt := range options {
		if rule, ok := notableOptions[opt.OptionCd]; ok {
			d.notable = append(d.notable, rule.label)
			badges.WriteString(rule.badge)
			d.desirability += rule.weight
			continue
		}
		if suppressedOptions[opt.OptionCd] {
			continue
		}
		if opt.MarketingName != "" {
			d.other = append(d.other, strings.ReplaceAll(opt.MarketingName, "[installed_msrp]", ""))
		}
	}
	d.badges = badges.String()
	return d
}
