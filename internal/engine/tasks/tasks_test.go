package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/herd/internal/engine/tasks"
)

func TestNewRegistry_Signatures(t *testing.T) {
	want := map[string]string{
		"birth":           "birth(name string, [size int], [wait bool], [no_profile bool])",
		"bootstrap":       "bootstrap([master bool], [shell bool])",
		"boxen":           "boxen",
		"brand":           "brand([aliases list])",
		"cattle":          "cattle(conf_path string)",
		"connect":         "connect(user string)",
		"euthanise":       "euthanise([wait bool])",
		"graze":           "graze(name string, [dev string], [mkfs bool])",
		"herd":            "herd(name string, [newborn bool])",
		"make_saltmaster": "make_saltmaster",
		"pasture":         "pasture(name string, size int, medium string)",
		"season":          "season",
		"shell":           "shell",
	}

	specs := tasks.NewRegistry().Specs()
	got := make(map[string]string, len(specs))
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		got[spec.Name] = spec.Signature()
		names = append(names, spec.Name)
		assert.NotEmpty(t, spec.Summary, spec.Name)
	}

	assert.Equal(t, want, got)
	assert.IsIncreasing(t, names)
}
