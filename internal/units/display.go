package units

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Promotion promotes a displayed total to a larger unit once it
// reaches Min. Whether "3 tsp" reads better as "1 tbsp" is a matter of
// taste, so the thresholds are policy, not constants.
type Promotion struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Min  float64 `yaml:"min"`
}

// DisplayPolicy is an ordered promotion table. Promotions chain: with
// the defaults, 15 tsp displays as 5 tbsp, and 16 tbsp as 1 cup.
type DisplayPolicy []Promotion

// DefaultDisplayPolicy returns the built-in promotion thresholds.
func DefaultDisplayPolicy() DisplayPolicy {
	return DisplayPolicy{
		{From: "tsp", To: "tbsp", Min: 3},
		{From: "tbsp", To: "cup", Min: 8}, // 8 tbsp = ½ cup

		{From: "oz", To: "lb", Min: 16},
		{From: "g", To: "kg", Min: 1000},
		{From: "ml", To: "l", Min: 1000},
	}
}

// LoadDisplayPolicy reads a promotion table from a YAML file. The file
// replaces the defaults entirely.
func LoadDisplayPolicy(path string) (DisplayPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "units: read display policy %s", path)
	}

	var wrapper struct {
		Promotions []Promotion `yaml:"promotions"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "units: parse display policy")
	}

	for _, p := range wrapper.Promotions {
		if !Compatible(p.From, p.To) {
			return nil, eris.Errorf("units: display policy promotes %s to incompatible %s", p.From, p.To)
		}
		if p.Min <= 0 {
			return nil, eris.Errorf("units: display policy %s -> %s has non-positive threshold", p.From, p.To)
		}
	}
	return DisplayPolicy(wrapper.Promotions), nil
}

// ChooseDisplayUnit re-expresses a merged total in the unit the policy
// considers most readable, chaining promotions until none applies. An
// acyclic table needs at most one hop per entry, so chaining stops
// after len(p) promotions; a cyclic table from a bad policy file
// terminates instead of hanging every request.
func (p DisplayPolicy) ChooseDisplayUnit(v float64, code string) (float64, string) {
	for range p {
		promoted := false
		for _, promo := range p {
			if promo.From != code || v < promo.Min {
				continue
			}
			converted, err := Convert(v, promo.From, promo.To)
			if err != nil {
				continue
			}
			v, code = converted, promo.To
			promoted = true
			break
		}
		if !promoted {
			break
		}
	}
	return v, code
}
