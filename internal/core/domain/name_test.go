package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pipbridge/internal/core/domain"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Flask", want: "flask"},
		{in: "my_package", want: "my-package"},
		{in: "requests", want: "requests"},
		{in: "Jinja2", want: "jinja2"},
		{in: "zope.interface", want: "zope-interface"},
		{in: "Foo__Bar-.baz", want: "foo-bar-baz"},
		{in: "  spaced  ", want: "spaced"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeName(tt.in))
		})
	}
}
