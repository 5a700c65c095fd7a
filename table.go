package seometa

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingRoot is returned by Validate when the table has no "/" entry,
// which the resolver needs as its fallback.
var ErrMissingRoot = errors.New("seometa: table has no \"/\" entry")

// Table maps exact URL paths to page metadata.
type Table map[string]PageMetadata

// DefaultTable returns a fresh copy of the storefront's page table.
func DefaultTable() Table {
	return Table{
		"/": {
			Title:       "Cart Battery Depot - Golf Cart Batteries | LSV, NEV & MSV Battery Experts",
			Description: "Cart Battery Depot specializes in Golf Cart Batteries, Low Speed Vehicle (LSV) Batteries, Neighborhood Electric Vehicle (NEV) Batteries, and Medium Speed Vehicle (MSV) Batteries. Over 10,000 satisfied customers nationwide. Call 1-844-888-7732",
			URL:         "https://cartbatterydepot.com",
			Type:        TypeWebsite,
			Keywords:    "golf cart batteries, LSV batteries, NEV batteries, MSV batteries, electric vehicle batteries, cart battery depot",
		},
		"/products": {
			Title:       "Battery Products - Golf Cart, LSV, NEV & MSV Batteries | Cart Battery Depot",
			Description: "Browse our complete lineup of 96+ Golf Cart Batteries, LSV, NEV & MSV battery configurations. Choose from Flooded, AGM, Gel, and Lithium technologies. Expert support available.",
			URL:         "https://cartbatterydepot.com/products",
			Type:        TypeWebsite,
			Keywords:    "battery products, golf cart batteries, 6V batteries, 8V batteries, 12V batteries, lithium batteries",
		},
		"/products/golf-cart": {
			Title:       "Golf Cart Batteries - 6V, 8V & 12V Options | Cart Battery Depot",
			Description: "Premium Golf Cart Batteries in 6V, 8V, and 12V configurations. Choose from Flooded Lead-Acid, AGM, Gel, and Lithium technologies. Expert advice: 1-844-888-7732",
			URL:         "https://cartbatterydepot.com/products/golf-cart",
			Type:        TypeWebsite,
			Keywords:    "golf cart batteries, 6V golf cart battery, 8V golf cart battery, 12V golf cart battery",
		},
		"/products/lsv": {
			Title:       "LSV Batteries - Low Speed Vehicle Power Solutions | Cart Battery Depot",
			Description: "Low Speed Vehicle (LSV) Batteries designed for optimal performance. Available in multiple voltages and technologies. Trusted by thousands nationwide.",
			URL:         "https://cartbatterydepot.com/products/lsv",
			Type:        TypeWebsite,
			Keywords:    "LSV batteries, low speed vehicle batteries, electric vehicle batteries",
		},
		"/products/nev": {
			Title:       "NEV Batteries - Neighborhood Electric Vehicle Solutions | Cart Battery Depot",
			Description: "Neighborhood Electric Vehicle (NEV) Batteries for reliable performance. Multiple voltage systems and battery technologies available.",
			URL:         "https://cartbatterydepot.com/products/nev",
			Type:        TypeWebsite,
			Keywords:    "NEV batteries, neighborhood electric vehicle batteries, electric cart batteries",
		},
		"/products/msv": {
			Title:       "MSV Batteries - Medium Speed Vehicle Power | Cart Battery Depot",
			Description: "Medium Speed Vehicle (MSV) Batteries for enhanced performance. Professional-grade power solutions for demanding applications.",
			URL:         "https://cartbatterydepot.com/products/msv",
			Type:        TypeWebsite,
			Keywords:    "MSV batteries, medium speed vehicle batteries, high performance batteries",
		},
		"/battery-guide": {
			Title:       "Battery Guide - Complete Golf Cart & EV Battery Information | Cart Battery Depot",
			Description: "Expert guide to Golf Cart Batteries, LSV, NEV & MSV power systems. Learn about battery technologies, maintenance, and selection. Call 1-844-888-7732",
			URL:         "https://cartbatterydepot.com/battery-guide",
			Type:        TypeArticle,
			Keywords:    "battery guide, golf cart battery guide, battery maintenance, battery selection",
		},
		"/battery-selector": {
			Title:       "Battery Selector Tool - Find Your Perfect Battery Match | Cart Battery Depot",
			Description: "Use our Battery Selector Quiz to find the optimal battery from our complete lineup of 96+ Golf Cart, LSV, NEV & MSV battery configurations.",
			URL:         "https://cartbatterydepot.com/battery-selector",
			Type:        TypeWebsite,
			Keywords:    "battery selector, battery finder, golf cart battery selector",
		},
		"/contact": {
			Title:       "Contact Cart Battery Depot - Expert Battery Support | Call 1-844-888-7732",
			Description: "Contact Cart Battery Depot for expert advice on Golf Cart Batteries, LSV, NEV & MSV solutions. Call 1-844-888-7732 or request a quote online.",
			URL:         "https://cartbatterydepot.com/contact",
			Type:        TypeWebsite,
			Keywords:    "contact cart battery depot, battery experts, golf cart battery support",
		},
		"/cart": {
			Title:       "Shopping Cart - Cart Battery Depot",
			Description: "Review your selected Golf Cart Batteries and complete your purchase. Fast nationwide shipping available.",
			URL:         "https://cartbatterydepot.com/cart",
			Type:        TypeWebsite,
		},
	}
}

// Paths returns the table keys in sorted order.
func (t Table) Paths() []string {
	paths := make([]string, 0, len(t))
	for p := range t {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Validate checks every entry has a title, description and url, that keys are
// absolute paths, that types are known, and that the "/" fallback exists.
func (t Table) Validate() error {
	var errs []error
	if _, ok := t["/"]; !ok {
		errs = append(errs, ErrMissingRoot)
	}
	for _, p := range t.Paths() {
		m := t[p]
		if !strings.HasPrefix(p, "/") {
			errs = append(errs, fmt.Errorf("seometa: path %q must start with \"/\"", p))
		}
		if strings.TrimSpace(m.Title) == "" {
			errs = append(errs, fmt.Errorf("seometa: %s: title is required", p))
		}
		if strings.TrimSpace(m.Description) == "" {
			errs = append(errs, fmt.Errorf("seometa: %s: description is required", p))
		}
		if strings.TrimSpace(m.URL) == "" {
			errs = append(errs, fmt.Errorf("seometa: %s: url is required", p))
		}
		switch m.Type {
		case "", TypeWebsite, TypeArticle:
		default:
			errs = append(errs, fmt.Errorf("seometa: %s: unknown type %q", p, m.Type))
		}
	}
	return errors.Join(errs...)
}

// LoadTable decodes a YAML document mapping paths to page metadata and
// validates the result.
func LoadTable(r io.Reader) (Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("seometa: decode table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTableFile reads a YAML table from path.
func LoadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seometa: open table: %w", err)
	}
	defer f.Close()
	return LoadTable(f)
}
