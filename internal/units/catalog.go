// Package units converts amounts between units of the same measure (length, mass, volume,
// area, temperature, time, speed, digital). Units are resolved by abbreviation or by name.
package units

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/askbot/internal/domain"
	"github.com/kailas-cloud/askbot/internal/domain/unit"
)

type system string

const (
	metric   system = "metric"
	imperial system = "imperial"
)

// definition places a unit relative to its system's anchor unit.
type definition struct {
	unit        unit.Unit
	system      system
	toAnchor    float64
	anchorShift float64
}

// bridge converts an anchor value of one system into the anchor of the other.
type bridge struct {
	ratio     float64
	transform func(float64) float64
}

type measure struct {
	name    string
	units   []definition
	bridges map[system]bridge
}

// Catalog resolves and converts units. It is immutable and safe for concurrent use.
type Catalog struct {
	measures map[string]measure
	byAbbr   map[string]definition
	byAlias  map[string]definition
}

// New builds the default catalog.
func New() *Catalog {
	c := &Catalog{
		measures: make(map[string]measure),
		byAbbr:   make(map[string]definition),
		byAlias:  make(map[string]definition),
	}
	for _, m := range defaultMeasures() {
		c.measures[m.name] = m
		for _, d := range m.units {
			d.unit.Measure = m.name
			c.byAbbr[d.unit.Abbr] = d
			for _, alias := range []string{d.unit.Abbr, d.unit.Singular, d.unit.Plural} {
				key := strings.ToLower(alias)
				if _, taken := c.byAlias[key]; !taken {
					c.byAlias[key] = d
				}
			}
		}
	}
	return c
}

// Lookup resolves a unit by exact abbreviation first, then case-insensitively by
// abbreviation, singular or plural name.
func (c *Catalog) Lookup(name string) (unit.Unit, bool) {
	d, ok := c.resolve(name)
	return d.unit, ok
}

func (c *Catalog) resolve(name string) (definition, bool) {
	name = strings.TrimSpace(name)
	if d, ok := c.byAbbr[name]; ok {
		return d, true
	}
	d, ok := c.byAlias[strings.ToLower(name)]
	return d, ok
}

// Convert converts amount from one unit to another of the same measure.
func (c *Catalog) Convert(amount float64, from, to string) (unit.Conversion, error) {
	src, ok := c.resolve(from)
	if !ok {
		return unit.Conversion{}, fmt.Errorf("%w: %w %q", domain.ErrConversion, domain.ErrUnknownUnit, from)
	}
	dst, ok := c.resolve(to)
	if !ok {
		return unit.Conversion{}, fmt.Errorf("%w: %w %q", domain.ErrConversion, domain.ErrUnknownUnit, to)
	}
	if src.unit.Measure != dst.unit.Measure {
		return unit.Conversion{}, fmt.Errorf("%w: %w: %s is %s, %s is %s",
			domain.ErrConversion, domain.ErrIncompatibleUnits,
			src.unit.Abbr, src.unit.Measure, dst.unit.Abbr, dst.unit.Measure)
	}

	v := amount*src.toAnchor - src.anchorShift
	if src.system != dst.system {
		b := c.measures[src.unit.Measure].bridges[src.system]
		if b.transform != nil {
			v = b.transform(v)
		} else {
			v *= b.ratio
		}
	}
	v = (v + dst.anchorShift) / dst.toAnchor

	return unit.Conversion{From: src.unit, To: dst.unit, Value: v}, nil
}
