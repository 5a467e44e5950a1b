package wizard

import (
	"slices"
	"testing"
)

func TestFrameworkOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "configured framework is supported",
			opts: Options{DefaultFramework: "netcoreapp3.1", Frameworks: []string{"netcoreapp3.1"}},
			want: []string{"netcoreapp3.1"},
		},
		{
			name: "configured framework listed first",
			opts: Options{DefaultFramework: "net6.0", Frameworks: []string{"netcoreapp3.1"}},
			want: []string{"net6.0", "netcoreapp3.1"},
		},
		{
			name: "no configured framework",
			opts: Options{Frameworks: []string{"netcoreapp3.1"}},
			want: []string{"netcoreapp3.1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := frameworkOptions(tt.opts); !slices.Equal(got, tt.want) {
				t.Errorf("frameworkOptions() = %v, want %v", got, tt.want)
			}
		})
	}
}
