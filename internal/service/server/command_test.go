package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolveListenAddress covers override, port extraction and error cases.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		configAddr string
		override   string
		want       string
		wantErr    error
	}{
		{
			name:       "override wins",
			configAddr: "daemon.local:8080",
			override:   ":9090",
			want:       ":9090",
		},
		{
			name:       "port extracted from config",
			configAddr: "daemon.local:8080",
			want:       ":8080",
		},
		{
			name:    "no address configured",
			wantErr: ErrNoServerAddress,
		},
		{
			name:       "malformed config address",
			configAddr: "daemon.local",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveListenAddress(tc.configAddr, tc.override)

			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.want == "":
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.want, got)
			}
		})
	}
}
