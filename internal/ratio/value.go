package ratio

import (
	"github.com/phambaophuc/paddington/internal/models"
	"github.com/spf13/pflag"
)

// Value adapts a models.Ratio to pflag.Value.
type Value struct {
	Target *models.Ratio
}

var _ pflag.Value = (*Value)(nil)

// Set parses s into Target, leaving it untouched on error.
func (v *Value) Set(s string) error {
	r, err := Parse(s)
	if err != nil {
		return err
	}
	*v.Target = r
	return nil
}

func (v *Value) String() string {
	if v == nil || v.Target == nil {
		return ""
	}
	return v.Target.String()
}

// Type names the value in usage output.
func (v *Value) Type() string {
	return "w:h"
}
